package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/treerex"
)

// Predicate is a guard on a slot variable. It receives the candidate
// sub-expression and decides whether the slot may bind it. Predicates must
// be side-effect free; a panicking predicate propagates to the caller of
// the match.
type Predicate func(treerex.Expr) bool

// SegPredicate is a guard on a segment variable. It receives the whole
// candidate run of sibling sub-expressions.
type SegPredicate func([]treerex.Expr) bool

// Pattern is the compiled, engine-internal form of a rule's left-hand side.
// Clients construct patterns with Lit, Slot, SlotIf, Seg, SegIf and Term,
// and validate them with Compile. The set of implementations is closed.
type Pattern interface {
	fmt.Stringer
	variables(func(name string, hasPred bool)) // visit variable occurrences
}

// --- Pattern node types ----------------------------------------------------

// literal matches a single leaf expression by structural equality.
type literal struct {
	value treerex.Expr
}

// slot matches exactly one sub-expression, optionally guarded.
type slot struct {
	name string
	pred Predicate
}

// segment matches a contiguous run of zero or more siblings, optionally
// guarded by a predicate over the whole run.
type segment struct {
	name string
	pred SegPredicate
}

// term matches an interior node: an operation code plus an ordered list of
// sub-patterns consumable against the node's arguments.
type term struct {
	op   treerex.OpCode
	subs []Pattern
}

// --- Constructors ----------------------------------------------------------

// Lit creates a pattern matching only a leaf structurally equal to v.
func Lit(v treerex.Expr) Pattern {
	return literal{value: v}
}

// Slot creates a slot variable pattern with the given name.
func Slot(name string) Pattern {
	return slot{name: name}
}

// SlotIf creates a slot variable guarded by a predicate.
func SlotIf(name string, pred Predicate) Pattern {
	return slot{name: name, pred: pred}
}

// Seg creates a segment variable pattern with the given name.
func Seg(name string) Pattern {
	return segment{name: name}
}

// SegIf creates a segment variable guarded by a predicate over the matched
// run.
func SegIf(name string, pred SegPredicate) Pattern {
	return segment{name: name, pred: pred}
}

// Term creates a pattern for an interior node with operation code op and the
// given sub-patterns.
func Term(op treerex.OpCode, subs ...Pattern) Pattern {
	return term{op: op, subs: subs}
}

// --- Stringers -------------------------------------------------------------

// Patterns print in a Lisp-like notation: slots as ~x, segments as ~~xs,
// guarded variables with a trailing '?'.

func (l literal) String() string {
	return fmt.Sprintf("%v", l.value)
}

func (s slot) String() string {
	if s.pred != nil {
		return "~" + s.name + "?"
	}
	return "~" + s.name
}

func (s segment) String() string {
	if s.pred != nil {
		return "~~" + s.name + "?"
	}
	return "~~" + s.name
}

func (t term) String() string {
	var b bytes.Buffer
	b.WriteString("(")
	b.WriteString(string(t.op))
	for _, sub := range t.subs {
		b.WriteString(" ")
		b.WriteString(sub.String())
	}
	b.WriteString(")")
	return b.String()
}

// --- Variable visiting -----------------------------------------------------

func (l literal) variables(func(string, bool)) {}

func (s slot) variables(visit func(string, bool)) {
	visit(s.name, s.pred != nil)
}

func (s segment) variables(visit func(string, bool)) {
	visit(s.name, s.pred != nil)
}

func (t term) variables(visit func(string, bool)) {
	for _, sub := range t.subs {
		sub.variables(visit)
	}
}
