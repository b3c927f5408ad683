package lp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// termsOf snapshots an expression's coefficients keyed by variable index.
func termsOf(e *Expression) map[int]float64 {
	m := make(map[int]float64)
	e.EachTerm(func(v Variable, coef float64) {
		m[v.Index()] = coef
	})
	return m
}

func TestExpressionBuild(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())
	y := vars.Add(NewVariable())

	e := Term(x, 2).AddTerm(y, -1).AddTerm(x, 3).AddConstant(4)

	want := map[int]float64{x.Index(): 5, y.Index(): -1}
	if diff := cmp.Diff(want, termsOf(e)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	if got := e.Constant(); got != 4 {
		t.Errorf("Constant() = %v, want 4", got)
	}
	if got := e.Coefficient(y); got != -1 {
		t.Errorf("Coefficient(y) = %v, want -1", got)
	}
}

func TestExpressionAddSub(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())
	y := vars.Add(NewVariable())
	z := vars.Add(NewVariable())

	a := Term(x, 1).AddTerm(y, 2).AddConstant(1)
	b := Term(y, 2).AddTerm(z, 3).AddConstant(-2)

	got := a.Clone().Add(b)
	want := map[int]float64{x.Index(): 1, y.Index(): 4, z.Index(): 3}
	if diff := cmp.Diff(want, termsOf(got)); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if got.Constant() != -1 {
		t.Errorf("Add constant = %v, want -1", got.Constant())
	}

	got = a.Clone().Sub(b)
	want = map[int]float64{x.Index(): 1, y.Index(): 0, z.Index(): -3}
	if diff := cmp.Diff(want, termsOf(got)); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
	if got.Constant() != 3 {
		t.Errorf("Sub constant = %v, want 3", got.Constant())
	}
}

func TestExpressionScale(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())

	e := Term(x, 3).AddConstant(2).Scale(-2)
	if got := e.Coefficient(x); got != -6 {
		t.Errorf("Coefficient(x) = %v, want -6", got)
	}
	if got := e.Constant(); got != -4 {
		t.Errorf("Constant() = %v, want -4", got)
	}
}

func TestSum(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())
	y := vars.Add(NewVariable())

	e := Sum(x, y, x)
	want := map[int]float64{x.Index(): 2, y.Index(): 1}
	if diff := cmp.Diff(want, termsOf(e)); diff != "" {
		t.Errorf("Sum mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	vars := NewVariables()
	x := vars.Add(NewVariable())

	orig := Term(x, 1)
	clone := orig.Clone().AddTerm(x, 1).AddConstant(5)

	if got := orig.Coefficient(x); got != 1 {
		t.Errorf("original coefficient changed to %v", got)
	}
	if got := orig.Constant(); got != 0 {
		t.Errorf("original constant changed to %v", got)
	}
	if got := clone.Coefficient(x); got != 2 {
		t.Errorf("clone coefficient = %v, want 2", got)
	}
}
