package match

import "github.com/briantilley/xmlgrep/tree"

// Stats accumulates matcher activity over one query. A single Stats value is
// threaded explicitly through the calls that want counting; there is no
// process-wide counter.
type Stats struct {
	// MatchCalls is the number of node-level match tests performed,
	// including the recursive tests made while seeking friends.
	MatchCalls int
}

// Match reports whether n structurally contains p: same tag, attributes
// satisfying every compiled constraint, and an order-preserving subset of
// n's children matching p's children.
func (p *Pattern) Match(n *tree.Node) bool {
	return p.MatchCounted(n, nil)
}

// MatchCounted is Match with an optional caller-supplied Stats; st may be
// nil.
func (p *Pattern) MatchCounted(n *tree.Node, st *Stats) bool {
	if st != nil {
		st.MatchCalls++
	}
	if n == nil || n.Tag != p.Tag {
		return false
	}
	if !p.attrsSatisfiedBy(n) {
		return false
	}
	_, ok := p.assignFriends(n, st)
	return ok
}

// attrsSatisfiedBy applies subset semantics: every constraint key must be
// present in n's attributes with a satisfying value, and attributes of n
// beyond the constrained keys are ignored. A missing key is an ordinary
// match failure, not an error.
func (p *Pattern) attrsSatisfiedBy(n *tree.Node) bool {
	if len(p.attrs) == 0 {
		return true
	}
	if len(n.Attrs) < len(p.attrs) {
		return false
	}
	for _, c := range p.attrs {
		got, ok := n.Attrs[c.key]
		if !ok {
			return false
		}
		if c.re != nil {
			if !c.re.MatchString(got) {
				return false
			}
		} else if got != c.literal {
			return false
		}
	}
	return true
}

// assignFriends performs the greedy leftmost friend scan: for each pattern
// child in order, claim the leftmost not-yet-passed source child that
// matches it. Friends are never reused, and a later pattern child can only
// claim a source child after its predecessor's friend, which is what makes
// the match order-sensitive. The scan never backtracks to revisit an earlier
// friend choice, so some structurally satisfiable inputs are rejected; that
// greedy behavior is deliberate and must be preserved.
//
// On success it returns the friend index (into n.Children) chosen for each
// pattern child.
func (p *Pattern) assignFriends(n *tree.Node, st *Stats) ([]int, bool) {
	targetSize := len(p.Children)
	if targetSize == 0 {
		return nil, true
	}

	sourceSize := len(n.Children)
	if sourceSize < targetSize {
		return nil, false
	}

	friends := make([]int, targetSize)
	j := 0
	for i, pc := range p.Children {
		found := false
		for j < sourceSize {
			if pc.MatchCounted(n.Children[j], st) {
				found = true
				friends[i] = j
				j++
				break
			}
			j++
		}

		// Even after finding a friend, fail early when fewer source
		// children remain than pattern children still unmatched.
		if !found || sourceSize-j < targetSize-(i+1) {
			return nil, false
		}
	}

	return friends, true
}
