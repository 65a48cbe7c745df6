/*
Package algebra provides a small symbolic-math term algebra as a demo host
for the rewriting engine.

Terms are immutable: leaves are numbers or symbols, interior nodes carry an
operation code and an ordered argument list. Construction normalizes terms —
nested sums and products are flattened and all-numeric nodes are folded —
which stands in for the auto-simplification a real host algebra would apply.
The rewriting core stays agnostic to this policy.

The package also ships an expression reader (a lexmachine scanner plus a
precedence-climbing parser) for authoring terms from strings, and a demo
rule set (double-angle, square expansion, Pythagorean identity) used by the
engine's tests and the trewl sandbox.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package algebra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treerex.algebra'.
func tracer() tracing.Trace {
	return tracing.Select("treerex.algebra")
}
