package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/treerex"
)

// Match attempts to bind a pattern against a concrete expression. On
// success it returns the resulting bindings with ok=true; on mismatch it
// returns (nil, false). A mismatch is an ordinary outcome and is distinct
// from any valid expression, including one structurally identical to the
// input.
//
// Match is purely functional over its inputs and safe for concurrent use
// with stateless predicates.
func Match(p Pattern, e treerex.Expr) (*Bindings, bool) {
	if p == nil || e == nil {
		return nil, false
	}
	b := newBindings()
	if !match(p, e, b) {
		return nil, false
	}
	tracer().Debugf("match %s  ⇒  %s", p, b)
	return b, true
}

// match dispatches on the pattern node kind. A bare segment variable at the
// top level is treated as a run of length one.
func match(p Pattern, e treerex.Expr, b *Bindings) bool {
	switch pat := p.(type) {
	case literal:
		return e.IsLeaf() && pat.value.Equals(e)
	case slot:
		return matchSlot(pat, e, b)
	case segment:
		return matchSegment(pat, []treerex.Expr{e}, b)
	case term:
		if e.IsLeaf() || e.Operation() != pat.op {
			return false
		}
		return matchSeq(pat.subs, e.Arguments(), b)
	}
	panic("unknown pattern node kind")
}

// matchSlot binds a slot variable or checks consistency with an earlier
// binding of the same name. If this occurrence carries the predicate, the
// predicate is evaluated even for an already-bound name.
func matchSlot(s slot, e treerex.Expr, b *Bindings) bool {
	if prev, ok := b.vars[s.name]; ok {
		if prev.isRun || !prev.expr.Equals(e) {
			return false
		}
		return s.pred == nil || s.pred(e)
	}
	if s.pred != nil && !s.pred(e) {
		return false
	}
	b.bindSlot(s.name, e)
	return true
}

// matchSegment is the run-valued analog of matchSlot. The predicate sees
// the whole candidate run.
func matchSegment(s segment, run []treerex.Expr, b *Bindings) bool {
	if prev, ok := b.vars[s.name]; ok {
		if !prev.isRun || !sameRun(prev.run, run) {
			return false
		}
		return s.pred == nil || s.pred(run)
	}
	if s.pred != nil && !s.pred(run) {
		return false
	}
	b.bindSegment(s.name, run)
	return true
}

// matchSeq consumes a term's arguments left-to-right with a list of
// sub-patterns. Slots and literals consume exactly one argument. A segment
// variable tries runs of increasing length, starting from zero, and commits
// to the first length for which the remaining sub-patterns consume the
// remaining arguments; that split is final and never revisited. This is not
// an exhaustive enumeration of joint splits across several segment
// variables.
func matchSeq(subs []Pattern, args []treerex.Expr, b *Bindings) bool {
	if len(subs) == 0 {
		return len(args) == 0
	}
	if seg, isSegment := subs[0].(segment); isSegment {
		for n := 0; n <= len(args); n++ {
			trial := b.clone()
			if matchSegment(seg, args[:n], trial) && matchSeq(subs[1:], args[n:], trial) {
				*b = *trial
				return true
			}
		}
		return false
	}
	if len(args) == 0 {
		return false
	}
	// Non-segment heads never backtrack, so binding into b directly is
	// safe: resumable choice points all live in segment trials above,
	// which operate on clones.
	if !match(subs[0], args[0], b) {
		return false
	}
	return matchSeq(subs[1:], args[1:], b)
}
