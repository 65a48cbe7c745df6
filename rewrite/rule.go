package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/treerex"
	"github.com/npillmayer/treerex/pattern"
)

// Rewriter is anything that maps an expression to a transformed expression.
// ok=false signals that the rewriter had nothing to do for this input; it is
// the normal "no match" outcome, distinct from any returned expression —
// including one structurally identical to the input.
//
// Rewriters never mutate their input.
type Rewriter interface {
	Rewrite(e treerex.Expr) (treerex.Expr, bool)
}

// RewriterFunc adapts a plain function to the Rewriter interface.
type RewriterFunc func(treerex.Expr) (treerex.Expr, bool)

// Rewrite calls f.
func (f RewriterFunc) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	return f(e)
}

// Consequent builds the replacement expression from the bindings of a
// successful match.
type Consequent func(*pattern.Bindings) treerex.Expr

// Rule is the primitive rewriter: a compiled pattern plus a consequent.
// Rules are immutable once constructed, stateless and safely shareable.
type Rule struct {
	name  string
	pat   pattern.Pattern
	build Consequent
}

var _ Rewriter = (*Rule)(nil)

// NewRule compiles a rule description into a rule. Malformed descriptions
// (a variable name guarded by more than one predicate) fail here, before
// any matching occurs, with a *pattern.ConfigError.
//
// The name is used for tracing only and may be empty.
func NewRule(name string, desc pattern.Pattern, build Consequent) (*Rule, error) {
	p, err := pattern.Compile(desc)
	if err != nil {
		return nil, err
	}
	return &Rule{name: name, pat: p, build: build}, nil
}

// MustRule is like NewRule but panics on a malformed description.
func MustRule(name string, desc pattern.Pattern, build Consequent) *Rule {
	r, err := NewRule(name, desc, build)
	if err != nil {
		panic(err)
	}
	return r
}

// Rewrite matches the rule's pattern against e and, on success, builds the
// replacement from the resulting bindings.
func (r *Rule) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	b, ok := pattern.Match(r.pat, e)
	if !ok {
		return nil, false
	}
	out := r.build(b)
	tracer().Debugf("rule %s: %v ⇒ %v", r.name, e, out)
	return out, true
}

// Pattern returns the rule's compiled pattern.
func (r *Rule) Pattern() pattern.Pattern {
	return r.pat
}

func (r *Rule) String() string {
	if r.name != "" {
		return r.name
	}
	return r.pat.String() + " ⇒ …"
}
