package algebra

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/treerex"
	"github.com/npillmayer/treerex/pattern"
	"github.com/npillmayer/treerex/rewrite"
)

// Demo rule set over the algebra, used by the engine's tests and by the
// trewl sandbox.

// DoubleAngle rewrites sin(2·x) to 2·sin(x)·cos(x).
func DoubleAngle() *rewrite.Rule {
	return rewrite.MustRule("double-angle",
		pattern.Term("sin", pattern.Term("*", pattern.Lit(Num(2)), pattern.Slot("x"))),
		func(b *pattern.Bindings) treerex.Expr {
			x, _ := b.Slot("x")
			return New("*", Num(2), New("sin", x), New("cos", x))
		})
}

// SquareExpand rewrites (x+y)^2 to x^2 + 2·x·y + y^2.
func SquareExpand() *rewrite.Rule {
	return rewrite.MustRule("square-expand",
		pattern.Term("^",
			pattern.Term("+", pattern.Slot("x"), pattern.Slot("y")),
			pattern.Lit(Num(2))),
		func(b *pattern.Bindings) treerex.Expr {
			x, _ := b.Slot("x")
			y, _ := b.Slot("y")
			return New("+",
				New("^", x, Num(2)),
				New("*", Num(2), x, y),
				New("^", y, Num(2)))
		})
}

// Pythagoras rewrites sums containing sin(x)^2 … cos(x)^2 by replacing the
// identity pair with 1. Segment variables absorb the unrelated summands,
// which makes the rule robust against the flattening the algebra applies to
// nested sums.
func Pythagoras() *rewrite.Rule {
	return rewrite.MustRule("pythagoras",
		pattern.Term("+",
			pattern.Seg("pre"),
			pattern.Term("^", pattern.Term("sin", pattern.Slot("x")), pattern.Lit(Num(2))),
			pattern.Seg("mid"),
			pattern.Term("^", pattern.Term("cos", pattern.Slot("x")), pattern.Lit(Num(2))),
			pattern.Seg("post")),
		func(b *pattern.Bindings) treerex.Expr {
			pre, _ := b.Segment("pre")
			mid, _ := b.Segment("mid")
			post, _ := b.Segment("post")
			args := make([]treerex.Expr, 0, len(pre)+len(mid)+len(post)+1)
			args = append(args, pre...)
			args = append(args, Num(1))
			args = append(args, mid...)
			args = append(args, post...)
			return New("+", args...)
		})
}

// StandardRules returns the demo rules in application order.
func StandardRules() []*rewrite.Rule {
	return []*rewrite.Rule{DoubleAngle(), SquareExpand(), Pythagoras()}
}

// Simplifier builds a rewriter applying the standard rules everywhere in a
// term, repeatedly, until the term is stable.
func Simplifier() rewrite.Rewriter {
	rules := StandardRules()
	step := make([]rewrite.Rewriter, len(rules))
	for i, r := range rules {
		step[i] = r
	}
	return rewrite.Fixpoint(
		rewrite.Postwalk(
			rewrite.PassThrough(rewrite.RestartedChain(step...))))
}
