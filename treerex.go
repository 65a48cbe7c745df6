package treerex

// --- A general purpose contract for expressions -----------------------------

// OpCode identifies the operation of an interior expression node. We do not
// define any constants here, as it is up to host implementations to define
// them ("+", "sin", "and", …).
type OpCode string

// Expr is the capability contract any tree node type must satisfy for the
// rewriting engine to operate on it. Expressions are immutable values; a
// transformation always produces new instances and never mutates in place.
//
// A node is either a leaf (an atomic value) or an interior node with an
// operation identifier and an ordered sequence of child expressions.
// Operation and Arguments are defined only for interior nodes.
//
// Construct builds a new interior node through the host implementation. The
// host may apply canonicalization on construction (flattening nested
// associative operations, folding constants, …); such auto-simplification is
// a policy of the host and invisible to the matcher.
//
// Equals is structural/value equality. It backs binding consistency for
// repeated pattern variables and convergence checks for fixpoint iteration.
type Expr interface {
	IsLeaf() bool
	Operation() OpCode
	Arguments() []Expr
	Construct(op OpCode, args []Expr) Expr
	Equals(other Expr) bool
}

// NodeCount returns the number of nodes of the tree rooted at e. Threaded
// tree walkers use it to decide whether a subtree is large enough to warrant
// spawning parallel tasks.
func NodeCount(e Expr) int {
	if e == nil {
		return 0
	}
	if e.IsLeaf() {
		return 1
	}
	n := 1
	for _, arg := range e.Arguments() {
		n += NodeCount(arg)
	}
	return n
}
