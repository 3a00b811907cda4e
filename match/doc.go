/*
Package match decides whether a source tree node structurally contains a
compiled target pattern, and can trim a matched subtree down to the nodes
that carried the match.

# Structural containment

A node matches a pattern when three conditions hold:

 1. The tags are equal (exact, case-sensitive).

 2. The node's attributes satisfy every constraint of the pattern under
    subset semantics: each constrained key must be present with a satisfying
    value; extra attributes on the source node are ignored.

 3. An order-preserving subset of the node's children recursively matches
    the pattern's children.

# Friends

A "friend" is the child of a source node chosen to satisfy one specific
child of the pattern node. Friends are assigned by a single left-to-right
scan: pattern child 0 claims the leftmost matching source child, pattern
child 1 claims the leftmost matching source child after that, and so on.
A friend is never reused, and the scan never backtracks to reconsider an
earlier choice. After each assignment the scan also fails early when fewer
source children remain than pattern children still unmatched.

The greedy scan is a deliberate precision/complexity trade-off: it keeps the
matcher at O(source children) per pattern child with no exponential search,
at the cost of rejecting some inputs that a smarter assignment would accept.
Callers depend on exactly this behavior.

# Attribute regular expressions

A target attribute value of the form re{expr} constrains the source value
with the regular expression expr instead of literal equality. The expression
must match starting at the first byte of the source value but need not
consume all of it:

	<img class="re{product.*}"/>   matches   <img class="product-img"/>
	<img class="re{^banner$}"/>    does not

Values are classified once, at Compile time.

# Trimming

Trim rebuilds a matched subtree keeping only the matched node itself and,
recursively, the friend chosen for each pattern child. Calling Trim on a
node that does not match is a contract violation and yields ErrMismatch.
*/
package match
