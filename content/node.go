// Package content holds the renderable tree produced by terminal commands.
//
// A tree is built from four variants: Text leaves, Empty, ordered Sequence
// values and labeled Wrapper containers. Every operation walks the tree in
// document order, depth first and left to right.
package content

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Tag string

const (
	Box        Tag = "box"
	Line       Tag = "line"
	Heading    Tag = "heading"
	Subheading Tag = "subheading"
	Pre        Tag = "pre"
	CodeBlock  Tag = "code-block"
	List       Tag = "list"
	Item       Tag = "item"
	Quote      Tag = "quote"
	Indent     Tag = "indent"
	Rule       Tag = "rule"

	Span     Tag = "span"
	Accent   Tag = "accent"
	Success  Tag = "success"
	Muted    Tag = "muted"
	Error    Tag = "error"
	Secret   Tag = "secret"
	Link     Tag = "link"
	Code     Tag = "code"
	Strong   Tag = "strong"
	Emphasis Tag = "emphasis"
)

var blockTags = map[Tag]bool{
	Box:        true,
	Line:       true,
	Heading:    true,
	Subheading: true,
	Pre:        true,
	CodeBlock:  true,
	List:       true,
	Item:       true,
	Quote:      true,
	Indent:     true,
	Rule:       true,
}

func (it Tag) Block() bool {
	return blockTags[it]
}

func (it Tag) Known() bool {
	switch it {
	case Span, Accent, Success, Muted, Error, Secret, Link, Code, Strong, Emphasis:
		return true
	}
	return it.Block()
}

// Node is one of Text, Empty, Sequence or Wrapper. A nil Node is treated
// as Empty everywhere.
type Node interface {
	node()
}

type (
	Text     string
	Empty    struct{}
	Sequence []Node
	Wrapper  struct {
		Tag     Tag
		Child   Node
		Href    string
		Command string
	}
)

func (Text) node()     {}
func (Empty) node()    {}
func (Sequence) node() {}
func (Wrapper) node()  {}

func Textf(format string, details ...interface{}) Text {
	return Text(fmt.Sprintf(format, details...))
}

func Seq(children ...Node) Sequence {
	return Sequence(children)
}

func Wrap(tag Tag, children ...Node) Wrapper {
	return Wrapper{Tag: tag, Child: collapse(children)}
}

func Lines(texts ...string) Sequence {
	result := make(Sequence, 0, len(texts))
	for _, text := range texts {
		result = append(result, Wrap(Line, Text(text)))
	}
	return result
}

// Href wraps children in an external link.
func Href(href string, children ...Node) Wrapper {
	return Wrapper{Tag: Link, Child: collapse(children), Href: href}
}

// CommandLink wraps children in a link that runs command when activated.
func CommandLink(command string, children ...Node) Wrapper {
	return Wrapper{Tag: Link, Child: collapse(children), Command: command}
}

func collapse(children []Node) Node {
	switch len(children) {
	case 0:
		return Empty{}
	case 1:
		return children[0]
	}
	return Sequence(children)
}

// Count is the number of characters (runes) of leaf text under node.
func Count(node Node) int {
	switch it := node.(type) {
	case Text:
		return utf8.RuneCountInString(string(it))
	case Sequence:
		total := 0
		for _, child := range it {
			total += Count(child)
		}
		return total
	case Wrapper:
		return Count(it.Child)
	}
	return 0
}

// Slice keeps the first budget characters of node in document order and
// returns what is left of the budget. Wrappers on the path to kept text are
// preserved; anything reached with no budget left is dropped. A nil result
// means nothing of node was kept.
func Slice(node Node, budget int) (Node, int) {
	if budget <= 0 || node == nil {
		return nil, budget
	}
	switch it := node.(type) {
	case Text:
		runes := utf8.RuneCountInString(string(it))
		if runes <= budget {
			return it, budget - runes
		}
		return Text(prefix(string(it), budget)), 0
	case Sequence:
		result := make(Sequence, 0, len(it))
		remaining := budget
		for _, child := range it {
			if remaining <= 0 {
				break
			}
			var kept Node
			kept, remaining = Slice(child, remaining)
			if kept != nil {
				result = append(result, kept)
			}
		}
		return result, remaining
	case Wrapper:
		kept, remaining := Slice(it.Child, budget)
		if kept == nil {
			return nil, remaining
		}
		it.Child = kept
		return it, remaining
	}
	return node, budget
}

func prefix(text string, runes int) string {
	seen := 0
	for index := range text {
		if seen == runes {
			return text[:index]
		}
		seen++
	}
	return text
}

// PlainText concatenates leaf text in document order.
func PlainText(node Node) string {
	var builder strings.Builder
	walk(node, func(it Node) {
		if text, ok := it.(Text); ok {
			builder.WriteString(string(text))
		}
	})
	return builder.String()
}

// Commands lists command link targets in document order.
func Commands(node Node) []string {
	result := []string{}
	walk(node, func(it Node) {
		if wrapper, ok := it.(Wrapper); ok && len(wrapper.Command) > 0 {
			result = append(result, wrapper.Command)
		}
	})
	return result
}

func walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	switch it := node.(type) {
	case Sequence:
		for _, child := range it {
			walk(child, visit)
		}
	case Wrapper:
		walk(it.Child, visit)
	}
}
