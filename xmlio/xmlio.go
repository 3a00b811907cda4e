// Package xmlio loads source and target trees from XML markup and
// serializes result trees back to it. Parsing and writing are delegated to
// etree; the matcher packages only ever see already-validated tree.Node
// structures.
package xmlio

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/briantilley/xmlgrep/tree"
)

// ErrNoRoot reports a well-formed document with no root element.
var ErrNoRoot = errors.New("xmlio: document has no root element")

// Load resolves a command-line argument into a parsed tree. An argument
// containing a dot is taken to be a file path; anything else is parsed as
// inline markup.
func Load(arg string) (*tree.Node, error) {
	if strings.Contains(arg, ".") {
		return ParseFile(arg)
	}
	return ParseString(arg)
}

// ParseFile reads and parses one XML document from a file.
func ParseFile(path string) (*tree.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("xmlio: reading %s: %w", path, err)
	}
	return fromDocument(doc)
}

// ParseString parses one XML document from inline markup.
func ParseString(markup string) (*tree.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("xmlio: parsing markup: %w", err)
	}
	return fromDocument(doc)
}

// Parse parses one XML document from r.
func Parse(r io.Reader) (*tree.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xmlio: parsing stream: %w", err)
	}
	return fromDocument(doc)
}

// Marshal returns a compact, round-trippable serialization of n.
func Marshal(n *tree.Node) (string, error) {
	s, err := toDocument(n).WriteToString()
	if err != nil {
		return "", fmt.Errorf("xmlio: writing <%s>: %w", n.Tag, err)
	}
	return s, nil
}

// MarshalIndent returns a pretty-printed serialization of n with the given
// number of spaces per nesting level.
func MarshalIndent(n *tree.Node, indent int) (string, error) {
	doc := toDocument(n)
	doc.Indent(indent)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("xmlio: writing <%s>: %w", n.Tag, err)
	}
	return s, nil
}

func fromDocument(doc *etree.Document) (*tree.Node, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *tree.Node {
	n := &tree.Node{Tag: el.Tag}
	if len(el.Attr) > 0 {
		n.Attrs = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			n.Attrs[a.Key] = a.Value
		}
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		n.Text = text
	}
	for _, child := range el.ChildElements() {
		n.Children = append(n.Children, fromElement(child))
	}
	return n
}

func toDocument(n *tree.Node) *etree.Document {
	doc := etree.NewDocument()
	appendElement(&doc.Element, n)
	return doc
}

func appendElement(parent *etree.Element, n *tree.Node) {
	el := parent.CreateElement(n.Tag)

	// Attribute maps have no order; sort keys so output is reproducible.
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.CreateAttr(k, n.Attrs[k])
	}

	if n.Text != "" {
		el.SetText(n.Text)
	}
	for _, c := range n.Children {
		appendElement(el, c)
	}
}
