package match

import (
	"errors"
	"fmt"

	"github.com/briantilley/xmlgrep/tree"
)

// ErrMismatch reports that Trim was invoked on a node that does not match
// the pattern. Trimming presumes an earlier successful match; hitting this
// error indicates a caller bug, not bad input data.
var ErrMismatch = errors.New("match: node does not match pattern")

// Trim produces a minimal, independently owned copy of n: the node itself
// (tag, attributes and text preserved) plus, for each pattern child in
// order, its friend child recursively trimmed. Every other child of n is
// discarded. Children are only ever removed, never reordered.
func (p *Pattern) Trim(n *tree.Node) (*tree.Node, error) {
	if !p.Match(n) {
		return nil, fmt.Errorf("%w: <%s> against pattern <%s>", ErrMismatch, tagOf(n), p.Tag)
	}
	return p.trim(n), nil
}

// trim assumes p.Match(n) already holds, so the friend scan cannot fail.
func (p *Pattern) trim(n *tree.Node) *tree.Node {
	out := &tree.Node{Tag: n.Tag, Text: n.Text}
	if len(n.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}

	friends, _ := p.assignFriends(n, nil)
	for i, pc := range p.Children {
		out.Children = append(out.Children, pc.trim(n.Children[friends[i]]))
	}
	return out
}

func tagOf(n *tree.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Tag
}
