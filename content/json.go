package content

import (
	"encoding/json"
	"fmt"
)

const (
	textType     = "text"
	emptyType    = "empty"
	sequenceType = "sequence"
	wrapperType  = "wrapper"
)

// Document is the JSON shape of a Node.
type Document struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Tag      Tag         `json:"tag,omitempty"`
	Href     string      `json:"href,omitempty"`
	Command  string      `json:"command,omitempty"`
	Child    *Document   `json:"child,omitempty"`
	Children []*Document `json:"children,omitempty"`
}

func Encode(node Node) *Document {
	switch it := node.(type) {
	case Text:
		return &Document{Type: textType, Text: string(it)}
	case Sequence:
		children := make([]*Document, 0, len(it))
		for _, child := range it {
			children = append(children, Encode(child))
		}
		return &Document{Type: sequenceType, Children: children}
	case Wrapper:
		return &Document{
			Type:    wrapperType,
			Tag:     it.Tag,
			Href:    it.Href,
			Command: it.Command,
			Child:   Encode(it.Child),
		}
	}
	return &Document{Type: emptyType}
}

func (it *Document) Decode() (Node, error) {
	if it == nil {
		return Empty{}, nil
	}
	switch it.Type {
	case textType:
		return Text(it.Text), nil
	case emptyType:
		return Empty{}, nil
	case sequenceType:
		result := make(Sequence, 0, len(it.Children))
		for at, child := range it.Children {
			node, err := child.Decode()
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", at, err)
			}
			result = append(result, node)
		}
		return result, nil
	case wrapperType:
		if !it.Tag.Known() {
			return nil, fmt.Errorf("unknown tag %q", it.Tag)
		}
		child, err := it.Child.Decode()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", it.Tag, err)
		}
		return Wrapper{Tag: it.Tag, Child: child, Href: it.Href, Command: it.Command}, nil
	}
	return nil, fmt.Errorf("unknown node type %q", it.Type)
}

func Unmarshal(blob []byte) (Node, error) {
	document := &Document{}
	err := json.Unmarshal(blob, document)
	if err != nil {
		return nil, err
	}
	return document.Decode()
}

func (it Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(it))
}

func (it Empty) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(it))
}

func (it Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(it))
}

func (it Wrapper) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(it))
}
