package match

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/briantilley/xmlgrep/tree"
)

// attrConstraint is one compiled attribute requirement of a pattern node.
// Exactly one of literal or re is in effect: re is non-nil when the target
// value used the re{...} wrapper.
type attrConstraint struct {
	key     string
	literal string
	re      *regexp.Regexp
}

// Pattern is a target structure compiled for matching. Attribute values are
// parsed once at compile time into literal-vs-regex constraints, so the
// wrapper syntax is never re-examined during a query.
type Pattern struct {
	Tag      string
	Children []*Pattern

	attrs []attrConstraint
}

// Compile translates a target tree into a Pattern. An attribute value whose
// entire string form is re{...} becomes a regular-expression constraint on
// the text between the first '{' and the last '}'; the expression is applied
// with match-at-start semantics (it must match beginning at the first byte of
// the source value, but need not consume all of it). Any other value is an
// exact-equality constraint.
func Compile(target *tree.Node) (*Pattern, error) {
	if target == nil {
		return nil, errors.New("match: nil target")
	}

	p := &Pattern{Tag: target.Tag}

	// Sorted constraint order keeps failure behavior deterministic across
	// runs; map iteration order would not.
	keys := make([]string, 0, len(target.Attrs))
	for k := range target.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := target.Attrs[k]
		if expr, ok := regexValue(v); ok {
			re, err := regexp.Compile(`\A(?:` + expr + `)`)
			if err != nil {
				return nil, fmt.Errorf("match: attribute %s=%q: %w", k, v, err)
			}
			p.attrs = append(p.attrs, attrConstraint{key: k, re: re})
			continue
		}
		p.attrs = append(p.attrs, attrConstraint{key: k, literal: v})
	}

	for _, child := range target.Children {
		cp, err := Compile(child)
		if err != nil {
			return nil, err
		}
		p.Children = append(p.Children, cp)
	}

	return p, nil
}

// regexValue reports whether v uses the re{...} wrapper, and if so returns
// the enclosed expression. The wrapper must span the whole value; "re{x}y"
// is a plain literal.
func regexValue(v string) (string, bool) {
	if len(v) < len("re{}") || !strings.HasPrefix(v, "re{") || !strings.HasSuffix(v, "}") {
		return "", false
	}
	return v[len("re{") : len(v)-1], true
}
