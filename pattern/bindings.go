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

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/treerex"
)

// bound is the value side of a binding: either a single expression (slot)
// or an ordered run of expressions (segment).
type bound struct {
	expr  treerex.Expr
	run   []treerex.Expr
	isRun bool
}

// Bindings is the mapping produced by a successful match from variable
// names to matched values. Slot variables bind a single expression, segment
// variables an ordered run of expressions. Keys are unique per match.
//
// Bindings are handed to rule consequent functions, which must treat them
// as read-only.
type Bindings struct {
	vars map[string]bound
}

func newBindings() *Bindings {
	return &Bindings{vars: make(map[string]bound)}
}

// Slot returns the expression bound to a slot variable.
func (b *Bindings) Slot(name string) (treerex.Expr, bool) {
	v, ok := b.vars[name]
	if !ok || v.isRun {
		return nil, false
	}
	return v.expr, true
}

// Segment returns the run of expressions bound to a segment variable.
func (b *Bindings) Segment(name string) ([]treerex.Expr, bool) {
	v, ok := b.vars[name]
	if !ok || !v.isRun {
		return nil, false
	}
	return v.run, true
}

// Has returns true if a variable of the given name is bound.
func (b *Bindings) Has(name string) bool {
	_, ok := b.vars[name]
	return ok
}

// Len returns the number of bound variables.
func (b *Bindings) Len() int {
	return len(b.vars)
}

// Names returns the names of all bound variables in lexicographic order.
func (b *Bindings) Names() []string {
	set := treeset.NewWith(utils.StringComparator)
	for name := range b.vars {
		set.Add(name)
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// String returns a dump of the bindings, sorted by variable name.
func (b *Bindings) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, name := range b.Names() {
		if i > 0 {
			buf.WriteString(", ")
		}
		v := b.vars[name]
		if v.isRun {
			fmt.Fprintf(&buf, "~~%s=%v", name, v.run)
		} else {
			fmt.Fprintf(&buf, "~%s=%v", name, v.expr)
		}
	}
	buf.WriteString("}")
	return buf.String()
}

// clone copies the bindings. The matcher clones before trying a segment
// split, so a failed trial can be discarded without unbinding.
func (b *Bindings) clone() *Bindings {
	c := newBindings()
	for name, v := range b.vars {
		c.vars[name] = v
	}
	return c
}

func (b *Bindings) bindSlot(name string, e treerex.Expr) {
	b.vars[name] = bound{expr: e}
}

func (b *Bindings) bindSegment(name string, run []treerex.Expr) {
	b.vars[name] = bound{run: run, isRun: true}
}

func sameRun(a, b []treerex.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
