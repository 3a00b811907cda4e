package tree

import "strings"

// Node is a single vertex of an ordered, labeled, attributed tree.
//
// A Node corresponds to one XML element: a tag name, an unordered set of
// unique attribute keys, and an ordered sequence of child elements. Child
// order is significant and preserved by every operation in this module.
// Text is inline character data carried through copies but never matched on.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// New returns a leaf node with the given tag and no attributes.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// SetAttr sets a single attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds children to the end of n's child list and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Clone returns a deep copy of n. The copy shares no memory with the
// original and may outlive it.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Tag: n.Tag, Text: n.Text}
	if len(n.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Size()
	}
	return total
}

// Depth returns the height of the subtree rooted at n. A leaf has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// TagView renders the subtree as an indented list of tag names, one per
// line, two spaces per level. Attributes and text are omitted; this is a
// quick structural sketch, not a serialization.
func (n *Node) TagView() string {
	var b strings.Builder
	n.tagView(&b, 0)
	return b.String()
}

func (n *Node) tagView(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.tagView(b, depth+1)
	}
}
