// Package search applies a compiled pattern across every node of a source
// tree. Two visitation strategies are provided; both test every node exactly
// once, root included, and never mutate the tree. Depth-first and
// breadth-first queries find the same set of nodes, possibly in a different
// order.
package search

import (
	"fmt"
	"strings"

	"github.com/briantilley/xmlgrep/match"
	"github.com/briantilley/xmlgrep/tree"
)

// Strategy selects the order in which source nodes are visited.
type Strategy int

const (
	// DepthFirst visits in pre-order: a node, then its children
	// left-to-right, recursively.
	DepthFirst Strategy = iota
	// BreadthFirst visits in level order, starting at the root.
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a config or flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "dfs", "depth", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth", "breadth-first":
		return BreadthFirst, nil
	default:
		return DepthFirst, fmt.Errorf("search: unknown strategy %q", s)
	}
}

// Exists reports whether any node of root's tree, root included, matches p.
// st may be nil.
func Exists(root *tree.Node, p *match.Pattern, strat Strategy, st *match.Stats) bool {
	return FindFirst(root, p, strat, st) != nil
}

// FindFirst returns the first matching node in the strategy's visitation
// order, or nil. The result is a view into the source tree, not a copy.
func FindFirst(root *tree.Node, p *match.Pattern, strat Strategy, st *match.Stats) *tree.Node {
	if root == nil {
		return nil
	}
	if strat == BreadthFirst {
		for queue := []*tree.Node{root}; len(queue) > 0; queue = nextLevel(queue) {
			for _, n := range queue {
				if p.MatchCounted(n, st) {
					return n
				}
			}
		}
		return nil
	}
	return findFirstDFS(root, p, st)
}

// FindAll returns every matching node in the strategy's visitation order. A
// node and one of its descendants may both appear when each independently
// satisfies the pattern; matches are not deduplicated or nested-suppressed.
func FindAll(root *tree.Node, p *match.Pattern, strat Strategy, st *match.Stats) []*tree.Node {
	if root == nil {
		return nil
	}
	if strat == BreadthFirst {
		var found []*tree.Node
		for queue := []*tree.Node{root}; len(queue) > 0; queue = nextLevel(queue) {
			for _, n := range queue {
				if p.MatchCounted(n, st) {
					found = append(found, n)
				}
			}
		}
		return found
	}
	return findAllDFS(root, p, st, nil)
}

func findFirstDFS(n *tree.Node, p *match.Pattern, st *match.Stats) *tree.Node {
	if p.MatchCounted(n, st) {
		return n
	}
	for _, c := range n.Children {
		if found := findFirstDFS(c, p, st); found != nil {
			return found
		}
	}
	return nil
}

func findAllDFS(n *tree.Node, p *match.Pattern, st *match.Stats, acc []*tree.Node) []*tree.Node {
	if p.MatchCounted(n, st) {
		acc = append(acc, n)
	}
	for _, c := range n.Children {
		acc = findAllDFS(c, p, st, acc)
	}
	return acc
}

// nextLevel gathers the direct children of every node on the current level.
// Parent references are borrowed for the duration of the walk only.
func nextLevel(level []*tree.Node) []*tree.Node {
	var next []*tree.Node
	for _, n := range level {
		next = append(next, n.Children...)
	}
	return next
}
