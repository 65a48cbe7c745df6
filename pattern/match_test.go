package pattern

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treerex"
)

func TestMatchLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Lit(lf("a"))
	if _, ok := Match(p, lf("a")); !ok {
		t.Errorf("literal should match equal leaf")
	}
	if _, ok := Match(p, lf("b")); ok {
		t.Errorf("literal should not match different leaf")
	}
	if _, ok := Match(p, nd("f", lf("a"))); ok {
		t.Errorf("literal should not match interior node")
	}
}

func TestMatchSlot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	b, ok := Match(Slot("x"), nd("f", lf("a")))
	if !ok {
		t.Fatalf("slot should match any expression")
	}
	x, ok := b.Slot("x")
	if !ok || !x.Equals(nd("f", lf("a"))) {
		t.Errorf("slot x should bind f(a), bindings are %s", b)
	}
}

func TestMatchSlotPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	isLeaf := func(e treerex.Expr) bool { return e.IsLeaf() }
	p := Term("f", SlotIf("x", isLeaf))
	if _, ok := Match(p, nd("f", lf("a"))); !ok {
		t.Errorf("guarded slot should accept leaf argument")
	}
	if _, ok := Match(p, nd("f", nd("g", lf("a")))); ok {
		t.Errorf("guarded slot should reject interior argument")
	}
}

func TestRepeatedSlotConsistency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Slot("x"), Slot("x"))
	b, ok := Match(p, nd("f", lf("a"), lf("a")))
	if !ok {
		t.Fatalf("repeated slot should match f(a, a)")
	}
	if x, _ := b.Slot("x"); !x.Equals(lf("a")) {
		t.Errorf("x should bind a, bindings are %s", b)
	}
	if _, ok := Match(p, nd("f", lf("a"), lf("b"))); ok {
		t.Errorf("repeated slot should not match f(a, b)")
	}
}

func TestPredicateOnRepeatedOccurrence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	// predicate sits on the second occurrence; it must still be checked
	rejectAll := func(treerex.Expr) bool { return false }
	p := MustCompile(Term("f", Slot("x"), SlotIf("x", rejectAll)))
	if _, ok := Match(p, nd("f", lf("a"), lf("a"))); ok {
		t.Errorf("predicate on second occurrence should reject the match")
	}
}

func TestSegmentZeroLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Seg("s"), Slot("y"))
	b, ok := Match(p, nd("f", lf("v")))
	if !ok {
		t.Fatalf("segment should match an empty run")
	}
	s, ok := b.Segment("s")
	if !ok || len(s) != 0 {
		t.Errorf("s should bind the empty run, bindings are %s", b)
	}
	if y, _ := b.Slot("y"); !y.Equals(lf("v")) {
		t.Errorf("y should bind v, bindings are %s", b)
	}
}

func TestSegmentSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Seg("s"), Lit(lf("b")), Seg("t"))
	b, ok := Match(p, nd("f", lf("a"), lf("b"), lf("c"), lf("d")))
	if !ok {
		t.Fatalf("segments around a literal should match")
	}
	s, _ := b.Segment("s")
	u, _ := b.Segment("t")
	if len(s) != 1 || !s[0].Equals(lf("a")) {
		t.Errorf("s should bind [a], bindings are %s", b)
	}
	if len(u) != 2 || !u[0].Equals(lf("c")) || !u[1].Equals(lf("d")) {
		t.Errorf("t should bind [c d], bindings are %s", b)
	}
}

func TestSegmentFirstSuccessSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	// two adjacent segments: the first one commits to the shortest split
	p := Term("f", Seg("s"), Seg("t"))
	b, ok := Match(p, nd("f", lf("a"), lf("b")))
	if !ok {
		t.Fatalf("adjacent segments should match")
	}
	s, _ := b.Segment("s")
	u, _ := b.Segment("t")
	if len(s) != 0 {
		t.Errorf("s should commit to the zero-length split, bindings are %s", b)
	}
	if len(u) != 2 {
		t.Errorf("t should absorb all arguments, bindings are %s", b)
	}
}

func TestRepeatedSegmentConsistency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Seg("s"), Lit(lf("|")), Seg("s"))
	if _, ok := Match(p, nd("f", lf("a"), lf("b"), lf("|"), lf("a"), lf("b"))); !ok {
		t.Errorf("repeated segment should match equal runs")
	}
	if _, ok := Match(p, nd("f", lf("a"), lf("|"), lf("b"))); ok {
		t.Errorf("repeated segment should not match unequal runs")
	}
}

func TestSegmentPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	atLeastOne := func(run []treerex.Expr) bool { return len(run) >= 1 }
	p := Term("f", SegIf("s", atLeastOne), Slot("y"))
	b, ok := Match(p, nd("f", lf("a"), lf("v")))
	if !ok {
		t.Fatalf("guarded segment should match a one-element run")
	}
	if s, _ := b.Segment("s"); len(s) != 1 {
		t.Errorf("s should bind [a], bindings are %s", b)
	}
	if _, ok := Match(p, nd("f", lf("v"))); ok {
		t.Errorf("guarded segment should reject the empty run")
	}
}

func TestMatchOperationMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Slot("x"))
	if _, ok := Match(p, nd("g", lf("a"))); ok {
		t.Errorf("term pattern should not match different operation")
	}
	if _, ok := Match(p, lf("a")); ok {
		t.Errorf("term pattern should not match a leaf")
	}
}

func TestMatchArityMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Slot("x"), Slot("y"))
	if _, ok := Match(p, nd("f", lf("a"))); ok {
		t.Errorf("two slots should not match one argument")
	}
	if _, ok := Match(p, nd("f", lf("a"), lf("b"), lf("c"))); ok {
		t.Errorf("two slots should not match three arguments")
	}
}

func TestMatchNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Term("g", Slot("x")), Slot("x"))
	b, ok := Match(p, nd("f", nd("g", lf("a")), lf("a")))
	if !ok {
		t.Fatalf("nested term pattern should match f(g(a), a)")
	}
	if x, _ := b.Slot("x"); !x.Equals(lf("a")) {
		t.Errorf("x should bind a, bindings are %s", b)
	}
	if _, ok := Match(p, nd("f", nd("g", lf("a")), lf("b"))); ok {
		t.Errorf("nested repeated slot should enforce consistency")
	}
}

func TestBindingsNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.pattern")
	defer teardown()
	//
	p := Term("f", Slot("y"), Seg("a"), Slot("m"))
	b, ok := Match(p, nd("f", lf("1"), lf("2"), lf("3")))
	if !ok {
		t.Fatalf("pattern should match")
	}
	names := b.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "m" || names[2] != "y" {
		t.Errorf("names should be sorted [a m y], are %v", names)
	}
}

// ---------------------------------------------------------------------------

// texpr is a minimal expression type for matcher tests.
type texpr struct {
	leaf string
	op   treerex.OpCode
	args []treerex.Expr
}

var _ treerex.Expr = (*texpr)(nil)

func lf(s string) *texpr {
	return &texpr{leaf: s}
}

func nd(op treerex.OpCode, args ...treerex.Expr) *texpr {
	return &texpr{op: op, args: args}
}

func (e *texpr) IsLeaf() bool {
	return e.op == ""
}

func (e *texpr) Operation() treerex.OpCode {
	return e.op
}

func (e *texpr) Arguments() []treerex.Expr {
	return e.args
}

func (e *texpr) Construct(op treerex.OpCode, args []treerex.Expr) treerex.Expr {
	return nd(op, args...)
}

func (e *texpr) Equals(other treerex.Expr) bool {
	o, ok := other.(*texpr)
	if !ok {
		return false
	}
	if e.leaf != o.leaf || e.op != o.op || len(e.args) != len(o.args) {
		return false
	}
	for i := range e.args {
		if !e.args[i].Equals(o.args[i]) {
			return false
		}
	}
	return true
}

func (e *texpr) String() string {
	if e.IsLeaf() {
		return e.leaf
	}
	s := "(" + string(e.op)
	for _, arg := range e.args {
		s += " " + arg.(*texpr).String()
	}
	return s + ")"
}
