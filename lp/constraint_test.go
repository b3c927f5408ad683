package lp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLessEqCanonicalForm(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())
	y := vars.Add(NewVariable())

	// 2x + 1 <= y + 4  ->  2x - y - 3 <= 0
	c := LessEq(Term(x, 2).AddConstant(1), Term(y, 1).AddConstant(4))
	if c.IsEquality {
		t.Fatal("LessEq produced an equality")
	}
	want := map[int]float64{x.Index(): 2, y.Index(): -1}
	if diff := cmp.Diff(want, termsOf(c.Expression)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	if got := c.Expression.Constant(); got != -3 {
		t.Errorf("constant = %v, want -3", got)
	}
}

func TestGreaterEqFlipsSides(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())

	// x >= 2  ->  2 - x <= 0
	c := GreaterEq(Term(x, 1), Constant(2))
	if c.IsEquality {
		t.Fatal("GreaterEq produced an equality")
	}
	if got := c.Expression.Coefficient(x); got != -1 {
		t.Errorf("coefficient = %v, want -1", got)
	}
	if got := c.Expression.Constant(); got != 2 {
		t.Errorf("constant = %v, want 2", got)
	}
}

func TestEqCanonicalForm(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())
	y := vars.Add(NewVariable())

	c := Eq(Sum(x, y), Constant(5))
	if !c.IsEquality {
		t.Fatal("Eq produced an inequality")
	}
	if got := c.Expression.Constant(); got != -5 {
		t.Errorf("constant = %v, want -5", got)
	}
}

func TestConstraintConstructorsDoNotMutateInputs(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())

	lhs := Term(x, 1)
	rhs := Constant(3)
	LessEq(lhs, rhs)

	if got := lhs.Constant(); got != 0 {
		t.Errorf("lhs constant changed to %v", got)
	}
	if got := rhs.Constant(); got != 3 {
		t.Errorf("rhs constant changed to %v", got)
	}
}
