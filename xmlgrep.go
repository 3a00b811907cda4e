// Package xmlgrep checks whether a small target tree occurs, structurally
// and order-preservingly, inside a larger source XML tree, and can locate,
// enumerate, and trim all such occurrences. It is the high-level entry point
// over the tree, match, and search packages.
package xmlgrep

import (
	"fmt"
	"strings"

	"github.com/briantilley/xmlgrep/match"
	"github.com/briantilley/xmlgrep/search"
	"github.com/briantilley/xmlgrep/tree"
)

// Mode selects how much of the source tree a query inspects.
type Mode int

const (
	// ModeAll collects every matching node.
	ModeAll Mode = iota
	// ModeFirst stops at the first matching node in visitation order.
	ModeFirst
	// ModeExists only answers whether any node matches.
	ModeExists
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeFirst:
		return "first"
	case ModeExists:
		return "exists"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "all":
		return ModeAll, nil
	case "first":
		return ModeFirst, nil
	case "exists":
		return ModeExists, nil
	default:
		return ModeAll, fmt.Errorf("xmlgrep: unknown mode %q", s)
	}
}

// Options configures one query.
type Options struct {
	Strategy search.Strategy
	Mode     Mode
	// Strict trims each match down to the nodes that carried it before the
	// match is returned.
	Strict bool
}

// Result is the outcome of one query. Unless Options.Strict was set,
// Matches are views into the source tree and share its lifetime.
type Result struct {
	Found   bool
	Matches []*tree.Node
	Stats   match.Stats
}

// Grep compiles target and runs a single query over source. Source and
// target are never mutated; in strict mode the returned matches are fresh
// copies.
func Grep(source, target *tree.Node, opts Options) (*Result, error) {
	pat, err := match.Compile(target)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	switch opts.Mode {
	case ModeExists:
		res.Found = search.Exists(source, pat, opts.Strategy, &res.Stats)
	case ModeFirst:
		if m := search.FindFirst(source, pat, opts.Strategy, &res.Stats); m != nil {
			res.Found = true
			res.Matches = []*tree.Node{m}
		}
	default:
		res.Matches = search.FindAll(source, pat, opts.Strategy, &res.Stats)
		res.Found = len(res.Matches) > 0
	}

	if opts.Strict {
		for i, m := range res.Matches {
			trimmed, err := pat.Trim(m)
			if err != nil {
				return nil, err
			}
			res.Matches[i] = trimmed
		}
	}

	return res, nil
}
