package blog

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/master-bogdan/termfolio/content"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts markdown source into a content tree. Raw HTML is
// dropped.
func Markdown(source []byte) content.Node {
	document := markdown.Parser().Parse(text.NewReader(source))
	converter := &converter{source: source}
	return converter.blocks(document, true)
}

type converter struct {
	source []byte
}

func (it *converter) blocks(parent ast.Node, spaced bool) content.Sequence {
	result := content.Sequence{}
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		node := it.block(child)
		if node == nil {
			continue
		}
		if spaced && len(result) > 0 {
			result = append(result, content.Wrap(content.Line))
		}
		result = append(result, node)
	}
	return result
}

func (it *converter) block(node ast.Node) content.Node {
	switch value := node.(type) {
	case *ast.Heading:
		tag := content.Subheading
		if value.Level == 1 {
			tag = content.Heading
		}
		return content.Wrapper{Tag: tag, Child: it.inlines(value)}
	case *ast.Paragraph:
		return content.Wrapper{Tag: content.Line, Child: it.inlines(value)}
	case *ast.TextBlock:
		return content.Wrapper{Tag: content.Line, Child: it.inlines(value)}
	case *ast.List:
		return it.list(value)
	case *ast.Blockquote:
		return content.Wrapper{Tag: content.Quote, Child: it.blocks(value, false)}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return content.Wrap(content.CodeBlock, content.Text(it.lines(node)))
	case *ast.ThematicBreak:
		return content.Wrap(content.Rule)
	case *ast.HTMLBlock:
		return nil
	case *east.Table:
		return it.table(value)
	}
	if node.Type() == ast.TypeInline {
		return content.Wrapper{Tag: content.Line, Child: it.inline(node)}
	}
	return content.Wrapper{Tag: content.Box, Child: it.blocks(node, false)}
}

func (it *converter) list(list *ast.List) content.Node {
	items := content.Sequence{}
	number := list.Start
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		body := it.blocks(child, !list.IsTight)
		if list.IsOrdered() {
			items = append(items, content.Wrapper{Tag: content.Indent, Child: numbered(number, body)})
			number++
			continue
		}
		items = append(items, content.Wrapper{Tag: content.Item, Child: body})
	}
	return content.Wrapper{Tag: content.List, Child: items}
}

// numbered puts the item number on the first line of body.
func numbered(number int, body content.Sequence) content.Sequence {
	marker := content.Textf("%d. ", number)
	if len(body) > 0 {
		if first, ok := body[0].(content.Wrapper); ok && first.Tag == content.Line {
			first.Child = content.Seq(marker, first.Child)
			return append(content.Sequence{first}, body[1:]...)
		}
	}
	return append(content.Sequence{content.Wrap(content.Line, marker)}, body...)
}

func (it *converter) table(table *east.Table) content.Node {
	rows := content.Sequence{}
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		cells := content.Sequence{}
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if len(cells) > 0 {
				cells = append(cells, content.Wrap(content.Muted, content.Text(" │ ")))
			}
			cells = append(cells, it.inlines(cell))
		}
		if _, header := row.(*east.TableHeader); header {
			rows = append(rows, content.Wrap(content.Line, content.Wrapper{Tag: content.Strong, Child: cells}))
			continue
		}
		rows = append(rows, content.Wrapper{Tag: content.Line, Child: cells})
	}
	return content.Wrapper{Tag: content.Box, Child: rows}
}

func (it *converter) lines(node ast.Node) string {
	var builder strings.Builder
	lines := node.Lines()
	for at := 0; at < lines.Len(); at++ {
		segment := lines.At(at)
		builder.Write(segment.Value(it.source))
	}
	return strings.TrimRight(builder.String(), "\n")
}

func (it *converter) inlines(parent ast.Node) content.Sequence {
	result := content.Sequence{}
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		node := it.inline(child)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

func (it *converter) inline(node ast.Node) content.Node {
	switch value := node.(type) {
	case *ast.Text:
		segment := string(value.Segment.Value(it.source))
		switch {
		case value.HardLineBreak():
			segment += "\n"
		case value.SoftLineBreak():
			segment += " "
		}
		return content.Text(segment)
	case *ast.String:
		return content.Text(string(value.Value))
	case *ast.CodeSpan:
		return content.Wrapper{Tag: content.Code, Child: it.inlines(value)}
	case *ast.Emphasis:
		tag := content.Emphasis
		if value.Level > 1 {
			tag = content.Strong
		}
		return content.Wrapper{Tag: tag, Child: it.inlines(value)}
	case *ast.Link:
		return content.Wrapper{Tag: content.Link, Child: it.inlines(value), Href: string(value.Destination)}
	case *ast.AutoLink:
		return content.Href(string(value.URL(it.source)), content.Text(string(value.Label(it.source))))
	case *ast.Image:
		alt := strings.TrimSpace(content.PlainText(it.inlines(value)))
		return content.Wrap(content.Muted, content.Text(fmt.Sprintf("[image: %s]", alt)))
	case *ast.RawHTML:
		return nil
	case *east.TaskCheckBox:
		if value.IsChecked {
			return content.Text("[x] ")
		}
		return content.Text("[ ] ")
	case *east.Strikethrough:
		return content.Wrapper{Tag: content.Muted, Child: it.inlines(value)}
	}
	return it.inlines(node)
}
