package content

import (
	"strings"
)

const (
	// Focus is a render-only tag applied to the focused command link.
	Focus Tag = "focus"

	ruleWidth = 40
)

// Styler paints a fragment of text for a tag. It returns false when it has
// no opinion, in which case the next enclosing tag is asked.
type Styler interface {
	Paint(tag Tag, text string) (string, bool)
}

type plain struct{}

func (plain) Paint(Tag, string) (string, bool) {
	return "", false
}

var Plain Styler = plain{}

type Options struct {
	Styler Styler
	// Focused is the document-order index of the highlighted command link,
	// or -1 for none.
	Focused int
	// Hrefs appends external link targets after the link text.
	Hrefs bool
}

type linePrefix struct {
	first string
	rest  string
	used  bool
}

func (it *linePrefix) take() string {
	if it.used {
		return it.rest
	}
	it.used = true
	return it.first
}

type layout struct {
	options  Options
	out      strings.Builder
	line     strings.Builder
	open     bool
	prefixes []*linePrefix
	tags     []Tag
	links    int
}

// Render lays node out as lines of text. Block tags start on a new line,
// inline tags flow within the current one.
func Render(node Node, options Options) string {
	if options.Styler == nil {
		options.Styler = Plain
	}
	it := &layout{options: options}
	it.node(node)
	it.finish()
	return strings.TrimRight(it.out.String(), "\n")
}

func RenderPlain(node Node) string {
	return Render(node, Options{Styler: Plain, Focused: -1, Hrefs: true})
}

func (it *layout) node(node Node) {
	switch value := node.(type) {
	case Text:
		it.text(string(value))
	case Sequence:
		for _, child := range value {
			it.node(child)
		}
	case Wrapper:
		it.wrapper(value)
	}
}

func (it *layout) wrapper(node Wrapper) {
	tags := 1
	it.tags = append(it.tags, node.Tag)
	if len(node.Command) > 0 {
		if it.links == it.options.Focused {
			it.tags = append(it.tags, Focus)
			tags++
		}
		it.links++
	}
	defer func() {
		it.tags = it.tags[:len(it.tags)-tags]
	}()

	if !node.Tag.Block() {
		it.node(node.Child)
		if it.options.Hrefs && len(node.Href) > 0 && node.Href != PlainText(node.Child) {
			it.tags = append(it.tags, Muted)
			it.text(" <" + node.Href + ">")
			it.tags = it.tags[:len(it.tags)-1]
		}
		return
	}

	it.breakLine()
	mark := it.out.Len()
	switch node.Tag {
	case Item:
		it.push("• ", "  ")
	case Quote:
		it.push("│ ", "│ ")
	case Indent, CodeBlock:
		it.push("  ", "  ")
	default:
		it.push("", "")
	}
	if node.Tag == Rule {
		it.text(strings.Repeat("─", ruleWidth))
	}
	it.node(node.Child)
	wrote := it.open || it.out.Len() > mark
	it.breakLine()
	it.prefixes = it.prefixes[:len(it.prefixes)-1]
	if !wrote && node.Tag == Line {
		it.out.WriteString("\n")
	}
}

func (it *layout) push(first, rest string) {
	it.prefixes = append(it.prefixes, &linePrefix{first: first, rest: rest})
}

func (it *layout) text(text string) {
	for at, part := range strings.Split(text, "\n") {
		if at > 0 {
			it.newline()
		}
		if len(part) == 0 {
			continue
		}
		if !it.open {
			it.begin()
		}
		it.line.WriteString(it.paint(part))
	}
}

func (it *layout) begin() {
	for _, prefix := range it.prefixes {
		it.line.WriteString(prefix.take())
	}
	it.open = true
}

func (it *layout) paint(text string) string {
	for at := len(it.tags) - 1; at >= 0; at-- {
		painted, ok := it.options.Styler.Paint(it.tags[at], text)
		if ok {
			return painted
		}
	}
	return text
}

func (it *layout) newline() {
	it.out.WriteString(it.line.String())
	it.out.WriteString("\n")
	it.line.Reset()
	it.open = false
}

func (it *layout) breakLine() {
	if it.open {
		it.newline()
	}
}

func (it *layout) finish() {
	it.breakLine()
}
