/*
Package trewl/main provides an interactive command line tool (T.REWL)
for the treerex rewriting engine. Users enter arithmetic/trig
expressions, which are rewritten with the demo rule set of the algebra
package. T.REWL serves as a sandbox for experiments with rewrite rules
and combinator wiring.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treerex.algebra'
func tracer() tracing.Trace {
	return tracing.Select("treerex.algebra")
}
