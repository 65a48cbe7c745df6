package algebra

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeFlattensSums(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	e := New("+", New("+", Sym("a"), Sym("b")), Sym("c"))
	if e.IsLeaf() || len(e.Arguments()) != 3 {
		t.Fatalf("nested sum should flatten to three summands, is %v", e)
	}
	if e.(*Term).String() != "(+ a b c)" {
		t.Errorf("flattened sum should print (+ a b c), prints %v", e)
	}
}

func TestNormalizeDoesNotFlattenAcrossOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	e := New("+", New("*", Sym("a"), Sym("b")), Sym("c"))
	if len(e.Arguments()) != 2 {
		t.Errorf("product inside sum must stay nested, is %v", e)
	}
}

func TestNormalizeFoldsNumerics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	cases := []struct {
		got  *Term
		want float64
	}{
		{New("+", Num(1), Num(2)).(*Term), 3},
		{New("*", Num(2), Num(3), Num(4)).(*Term), 24},
		{New("-", Num(5), Num(2)).(*Term), 3},
		{New("-", Num(5)).(*Term), -5},
		{New("/", Num(6), Num(3)).(*Term), 2},
		{New("^", Num(2), Num(3)).(*Term), 8},
	}
	for _, c := range cases {
		if !c.got.IsNum() || c.got.NumValue() != c.want {
			t.Errorf("fold should yield %g, yields %v", c.want, c.got)
		}
	}
}

func TestNormalizeKeepsSymbolicNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	e := New("sin", Num(0))
	if e.IsLeaf() {
		t.Errorf("function terms must not be folded, sin(0) is %v", e)
	}
	e = New("+", Num(1), Sym("x"))
	if e.IsLeaf() {
		t.Errorf("partially symbolic sums must not be folded, is %v", e)
	}
}

func TestSingletonSumCollapses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	e := New("+", Sym("x"))
	if !e.IsLeaf() || !e.Equals(Sym("x")) {
		t.Errorf("one-element sum should collapse to its argument, is %v", e)
	}
}

func TestTermEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	a := New("+", Sym("x"), New("sin", Sym("y")))
	b := New("+", Sym("x"), New("sin", Sym("y")))
	c := New("+", Sym("x"), New("cos", Sym("y")))
	if !a.Equals(b) {
		t.Errorf("structurally equal terms should compare equal")
	}
	if a.Equals(c) {
		t.Errorf("structurally different terms should compare unequal")
	}
	if Num(2).Equals(Num(3)) {
		t.Errorf("different numbers should compare unequal")
	}
}

func TestTermHashesAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treerex.algebra")
	defer teardown()
	//
	a := New("*", Num(2), Sym("x")).(*Term)
	b := New("*", Num(2), Sym("x")).(*Term)
	if a.hash == "" || a.hash != b.hash {
		t.Errorf("equal terms should carry equal content hashes")
	}
}
