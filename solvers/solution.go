package solvers

import "github.com/0xalpharush/good-lp/lp"

// Solution holds the primal values of a solved model and, once acquired,
// the dual values of its rows. It is read-only apart from the one-time
// dual-cache fill performed by EnsureDuals.
type Solution struct {
	backend  Backend
	columns  []float64
	duals    []float64
	acquired bool
}

// Value returns the primal value of a variable. The variable must belong
// to the problem the model was built from; indices are not re-validated.
func (s *Solution) Value(v lp.Variable) float64 {
	return s.columns[v.Index()]
}

// Eval evaluates an arbitrary expression under the primal values.
func (s *Solution) Eval(e *lp.Expression) float64 {
	total := e.Constant()
	e.EachTerm(func(v lp.Variable, coef float64) {
		total += coef * s.columns[v.Index()]
	})
	return total
}

// Dual returns the dual value of a constraint row. EnsureDuals must have
// been called first.
func (s *Solution) Dual(ref lp.ConstraintReference) float64 {
	return s.duals[ref.Index]
}

// EnsureDuals fetches the backend's row duals on first call and caches
// them; subsequent calls are no-ops returning the same cached data. Dual
// retrieval may be expensive on some backends and many callers never need
// duals, hence the explicit, lazy fill. Returns the solution for chaining.
func (s *Solution) EnsureDuals() *Solution {
	if !s.acquired {
		s.duals = s.backend.DualRows()
		s.acquired = true
	}
	return s
}
