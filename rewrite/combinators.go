package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/treerex"
)

// --- Empty -----------------------------------------------------------------

type empty struct{}

// Empty creates a rewriter which never matches.
func Empty() Rewriter {
	return empty{}
}

func (empty) Rewrite(treerex.Expr) (treerex.Expr, bool) {
	return nil, false
}

// --- Chain -----------------------------------------------------------------

type chain []Rewriter

// Chain creates a rewriter folding an expression through the given
// rewriters left to right. A non-matching step keeps the current expression
// and continues; the final expression is always returned, so a chain never
// reports no-match.
func Chain(rewriters ...Rewriter) Rewriter {
	return chain(rewriters)
}

func (c chain) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	cur := e
	for _, r := range c {
		if next, ok := r.Rewrite(cur); ok {
			cur = next
		}
	}
	return cur, true
}

// --- RestartedChain --------------------------------------------------------

type restartedChain []Rewriter

// RestartedChain is like Chain, but whenever a member rewriter matches, the
// scan restarts from the first member against the new expression. The chain
// terminates when one full left-to-right pass produces no match, and always
// returns the final expression. A member that matches every input makes the
// chain diverge; bounding that is the caller's responsibility.
func RestartedChain(rewriters ...Rewriter) Rewriter {
	return restartedChain(rewriters)
}

func (c restartedChain) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	cur := e
restart:
	for {
		for _, r := range c {
			if next, ok := r.Rewrite(cur); ok {
				cur = next
				tracer().Debugf("chain restarts on %v", cur)
				continue restart
			}
		}
		return cur, true
	}
}

// --- IfElse ----------------------------------------------------------------

// Condition guards a conditional rewriter.
type Condition func(treerex.Expr) bool

type ifElse struct {
	cond      Condition
	then      Rewriter
	otherwise Rewriter
}

// IfElse creates a rewriter dispatching on a condition: then-rewriter if
// cond(e) holds, else-rewriter otherwise. The chosen sub-result is
// propagated unchanged, including no-match.
func IfElse(cond Condition, then Rewriter, otherwise Rewriter) Rewriter {
	return ifElse{cond: cond, then: then, otherwise: otherwise}
}

// If creates a one-armed conditional: IfElse(cond, then, Empty()).
func If(cond Condition, then Rewriter) Rewriter {
	return IfElse(cond, then, Empty())
}

func (c ifElse) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	if c.cond(e) {
		return c.then.Rewrite(e)
	}
	return c.otherwise.Rewrite(e)
}

// --- PassThrough -----------------------------------------------------------

type passThrough struct {
	inner Rewriter
}

// PassThrough wraps a rewriter so that no-match becomes the unchanged input
// expression (success-as-identity).
func PassThrough(rw Rewriter) Rewriter {
	return passThrough{inner: rw}
}

func (p passThrough) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	if next, ok := p.inner.Rewrite(e); ok {
		return next, true
	}
	return e, true
}

// --- Fixpoint --------------------------------------------------------------

type fixpoint struct {
	inner Rewriter
}

// Fixpoint applies a rewriter repeatedly until it reports no-match or
// returns an expression structurally equal to its input, and returns the
// last expression reached. There is no iteration cap; termination of a
// non-converging rewriter is the caller's responsibility.
func Fixpoint(rw Rewriter) Rewriter {
	return fixpoint{inner: rw}
}

func (f fixpoint) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	cur := e
	for {
		next, ok := f.inner.Rewrite(cur)
		if !ok || next.Equals(cur) {
			return cur, true
		}
		cur = next
	}
}
