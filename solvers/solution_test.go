package solvers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xalpharush/good-lp/lp"
	"github.com/0xalpharush/good-lp/solvers"
)

func solveStub(t *testing.T, backend *stubBackend) (*solvers.Solution, lp.Variable, lp.Variable, lp.ConstraintReference) {
	t.Helper()

	vars := lp.NewVariables()
	x := vars.Add(lp.NewVariable().WithMin(0))
	y := vars.Add(lp.NewVariable().WithMin(0))
	model := solvers.Build(vars.Minimize(lp.Sum(x, y)), backend)
	ref := model.AddConstraint(lp.Eq(lp.Sum(x, y), lp.Constant(5)))

	solution, err := model.Solve()
	require.NoError(t, err)
	return solution, x, y, ref
}

func TestSolutionValues(t *testing.T) {
	backend := &stubBackend{
		status: solvers.ModelStatusOptimal,
		primal: []float64{2, 3},
	}
	solution, x, y, _ := solveStub(t, backend)

	require.Equal(t, 2.0, solution.Value(x))
	require.Equal(t, 3.0, solution.Value(y))
}

func TestSolutionEval(t *testing.T) {
	backend := &stubBackend{
		status: solvers.ModelStatusOptimal,
		primal: []float64{2, 3},
	}
	solution, x, y, _ := solveStub(t, backend)

	// 4x - y + 1 = 8 - 3 + 1
	expr := lp.Term(x, 4).AddTerm(y, -1).AddConstant(1)
	require.Equal(t, 6.0, solution.Eval(expr))
}

// TestEnsureDualsIdempotent relies on the stub panicking when its duals
// are fetched a second time.
func TestEnsureDualsIdempotent(t *testing.T) {
	backend := &stubBackend{
		status: solvers.ModelStatusOptimal,
		primal: []float64{2, 3},
		duals:  []float64{1.5},
	}
	solution, _, _, ref := solveStub(t, backend)

	require.Equal(t, 1.5, solution.EnsureDuals().Dual(ref))
	require.Equal(t, 1.5, solution.EnsureDuals().Dual(ref))
	require.Equal(t, 1, backend.fetches)
}
