package algebra

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"math"
	"strconv"

	"github.com/cnf/structhash"
	"github.com/npillmayer/treerex"
)

type termKind int8

const (
	numKind termKind = iota
	symKind
	opKind
)

// Term is a symbolic-math expression node. A term is either a numeric
// leaf, a symbol leaf, or an interior node with an operation code and
// arguments. Terms are immutable; all transformation goes through the
// constructors.
type Term struct {
	kind termKind
	op   treerex.OpCode
	args []treerex.Expr
	num  float64
	sym  string
	hash string // content hash, set once at construction
}

var _ treerex.Expr = (*Term)(nil)

// Num creates a numeric leaf.
func Num(v float64) *Term {
	t := &Term{kind: numKind, num: v}
	t.hash = hashTerm(t)
	return t
}

// Sym creates a symbol leaf.
func Sym(name string) *Term {
	t := &Term{kind: symKind, sym: name}
	t.hash = hashTerm(t)
	return t
}

// New creates an interior node and applies the algebra's normalization:
// nested sums and products are flattened into their parent, one-element
// sums/products collapse to their argument, and nodes whose arguments are
// all numeric are folded to a numeric leaf. Trigonometric functions are
// never folded, so symbolic structure survives.
func New(op treerex.OpCode, args ...treerex.Expr) treerex.Expr {
	return normalize(op, args)
}

// Raw creates an interior node without normalization. Mainly useful for
// tests probing the normalizer itself.
func Raw(op treerex.OpCode, args ...treerex.Expr) *Term {
	t := &Term{kind: opKind, op: op, args: args}
	t.hash = hashTerm(t)
	return t
}

// --- treerex.Expr capability contract --------------------------------------

// IsLeaf returns true for numeric and symbol leaves.
func (t *Term) IsLeaf() bool {
	return t.kind != opKind
}

// Operation returns the operation code of an interior node. It is the empty
// code for leaves.
func (t *Term) Operation() treerex.OpCode {
	return t.op
}

// Arguments returns the ordered child terms of an interior node. Callers
// must not mutate the returned slice.
func (t *Term) Arguments() []treerex.Expr {
	return t.args
}

// Construct builds a new interior node through this algebra, applying its
// normalization policy.
func (t *Term) Construct(op treerex.OpCode, args []treerex.Expr) treerex.Expr {
	return normalize(op, args)
}

// Equals is structural equality. Content hashes make the negative case
// cheap; equal hashes are confirmed by a structural walk.
func (t *Term) Equals(other treerex.Expr) bool {
	if o, ok := other.(*Term); ok {
		if t.hash != o.hash {
			return false
		}
		return structEqual(t, o)
	}
	return foreignEqual(t, other)
}

// IsNum returns true for numeric leaves.
func (t *Term) IsNum() bool {
	return t.kind == numKind
}

// NumValue returns the value of a numeric leaf.
func (t *Term) NumValue() float64 {
	return t.num
}

// IsSym returns true for symbol leaves.
func (t *Term) IsSym() bool {
	return t.kind == symKind
}

// SymName returns the name of a symbol leaf.
func (t *Term) SymName() string {
	return t.sym
}

// String renders a term in Lisp-like prefix notation, e.g. "(+ 1 (sin x))".
func (t *Term) String() string {
	switch t.kind {
	case numKind:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case symKind:
		return t.sym
	}
	var b bytes.Buffer
	b.WriteString("(")
	b.WriteString(string(t.op))
	for _, arg := range t.args {
		b.WriteString(" ")
		if s, ok := arg.(*Term); ok {
			b.WriteString(s.String())
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString(")")
	return b.String()
}

// --- Normalization ---------------------------------------------------------

// normalize is this host's auto-simplification hook, applied on every
// construction. The matcher never sees un-normalized terms.
func normalize(op treerex.OpCode, args []treerex.Expr) treerex.Expr {
	if op == "+" || op == "*" {
		args = flatten(op, args)
		if len(args) == 1 {
			return args[0]
		}
	}
	if folded, ok := fold(op, args); ok {
		return folded
	}
	return Raw(op, args...)
}

// flatten splices arguments carrying the same associative operation into
// their parent's argument list.
func flatten(op treerex.OpCode, args []treerex.Expr) []treerex.Expr {
	flat := make([]treerex.Expr, 0, len(args))
	for _, arg := range args {
		if !arg.IsLeaf() && arg.Operation() == op {
			flat = append(flat, arg.Arguments()...)
		} else {
			flat = append(flat, arg)
		}
	}
	return flat
}

// fold evaluates a node whose arguments are all numeric leaves. Function
// symbols (sin, cos, …) are left alone.
func fold(op treerex.OpCode, args []treerex.Expr) (treerex.Expr, bool) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		t, ok := arg.(*Term)
		if !ok || !t.IsNum() {
			return nil, false
		}
		nums[i] = t.num
	}
	switch op {
	case "+":
		sum := 0.0
		for _, n := range nums {
			sum += n
		}
		return Num(sum), true
	case "*":
		prod := 1.0
		for _, n := range nums {
			prod *= n
		}
		return Num(prod), true
	case "-":
		if len(nums) == 1 {
			return Num(-nums[0]), true
		}
		if len(nums) == 2 {
			return Num(nums[0] - nums[1]), true
		}
	case "/":
		if len(nums) == 2 && nums[1] != 0 {
			return Num(nums[0] / nums[1]), true
		}
	case "^":
		if len(nums) == 2 {
			return Num(math.Pow(nums[0], nums[1])), true
		}
	}
	return nil, false
}

// --- Equality and hashing --------------------------------------------------

func structEqual(a, b *Term) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case numKind:
		return a.num == b.num
	case symKind:
		return a.sym == b.sym
	}
	if a.op != b.op || len(a.args) != len(b.args) {
		return false
	}
	for i := range a.args {
		if !a.args[i].Equals(b.args[i]) {
			return false
		}
	}
	return true
}

// foreignEqual compares a term against an expression from another host
// implementation, using only the capability contract.
func foreignEqual(t *Term, e treerex.Expr) bool {
	if e == nil {
		return false
	}
	if t.IsLeaf() != e.IsLeaf() {
		return false
	}
	if !t.IsLeaf() {
		if t.op != e.Operation() {
			return false
		}
		args := e.Arguments()
		if len(t.args) != len(args) {
			return false
		}
		for i := range args {
			if !t.args[i].Equals(args[i]) {
				return false
			}
		}
		return true
	}
	// Foreign leaves only compare equal through their own Equals.
	return e.Equals(t)
}

// termSig is the hashable shadow of a term. Child terms contribute their
// pre-computed hashes, so hashing stays linear in the node count.
type termSig struct {
	Kind int8
	Op   string
	Num  float64
	Sym  string
	Args []string
}

func hashTerm(t *Term) string {
	sig := termSig{
		Kind: int8(t.kind),
		Op:   string(t.op),
		Num:  t.num,
		Sym:  t.sym,
	}
	for _, arg := range t.args {
		if s, ok := arg.(*Term); ok {
			sig.Args = append(sig.Args, s.hash)
		} else {
			sig.Args = append(sig.Args, "foreign")
		}
	}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("hashing term signature failed: %v", err)
		return ""
	}
	return h
}
