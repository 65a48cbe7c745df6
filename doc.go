/*
Package treerex is a term-rewriting toolbox.

TReEx (Tree Rewriting Expressions) matches structural patterns against
tree-shaped symbolic expressions and produces transformed expressions,
composably. It is not tied to one concrete expression type: any tree node
implementation satisfying a small structural capability contract may be
rewritten. Package structure is as follows:

■ pattern: Package pattern implements the pattern representation (slot and
segment variables with optional predicates), the pattern compiler and the
matching engine, producing variable bindings.

■ rewrite: Package rewrite implements rewrite rules and an algebra of
rewriter combinators — sequencing, restarting chains, conditional dispatch,
fixpoint iteration and tree walkers with optional parallel traversal.

■ algebra: Package algebra provides a small symbolic-math term algebra as a
demo host for the engine, together with an expression reader.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treerex
