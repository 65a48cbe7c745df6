/*
Package pattern implements structural patterns over expression trees,
together with a compiler for rule descriptions and the matching engine.

Patterns are built from four kinds of nodes: literals (matching a single
structurally-equal leaf), slot variables (matching exactly one
sub-expression), segment variables (matching a contiguous run of zero or
more sibling sub-expressions) and term patterns (matching an interior node
with an equal operation code and a consumable list of sub-patterns).

Slot and segment variables may carry predicates, and variable names may
repeat within one pattern. Repeated occurrences must agree structurally at
match time; at most one occurrence of a name may carry a predicate, which is
validated by Compile before any matching takes place.

Matching is purely functional: a successful match produces Bindings, an
immutable mapping from variable names to matched values. A failed match is
reported through the comma-ok idiom and is an ordinary outcome, never an
error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treerex.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("treerex.pattern")
}
