/*
Package rewrite implements rewrite rules and a combinator algebra over
rewriters.

A rewriter maps an expression either to a transformed expression or to a
no-match outcome, reported comma-ok style. The primitive rewriter is a Rule:
a compiled pattern plus a consequent function building the replacement from
the match's bindings. Combinators compose rewriters into larger ones:

	Empty()                   never matches
	Chain(r1, …, rn)          fold left, no-match treated as identity
	RestartedChain(r1, …, rn) like Chain, restarting after every success
	IfElse(cond, a, b), If    conditional dispatch
	PassThrough(rw)           no-match becomes the unchanged input
	Fixpoint(rw)              iterate until no-match or convergence
	Prewalk(rw), Postwalk(rw) apply rw at every node of a tree

All rewriters are immutable, stateless and freely shareable. Tree walkers
can optionally traverse large subtrees in parallel goroutines; the result is
identical to the sequential walk.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treerex.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("treerex.rewrite")
}
