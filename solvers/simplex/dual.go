package simplex

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DualRows returns one dual value per stored row: the rate of change of
// the optimal objective, in the sense the model was solved with, per unit
// increase of the row's bound (the row's shadow price).
//
// The duals are recovered by solving the dual program of the lowered
// general form:
//
//	minimize h^T lam + b^T y  s.t.  G^T lam + A^T y = -c,  lam >= 0
//
// with the free y split into a positive and a negative part. If the dual
// solve fails the duals are reported as zeros; the result is cached either
// way so repeated calls perform no further work.
func (s *Solver) DualRows() []float64 {
	if s.duals != nil {
		return s.duals
	}
	s.duals = make([]float64, len(s.rows))
	if !s.solved {
		return s.duals
	}

	n := len(s.cMin)
	nG, nE := len(s.ineq), len(s.eq)
	nDual := nG + 2*nE
	if nDual < n {
		// Underdetermined dual system; gonum's simplex requires at
		// least as many variables as equality rows.
		s.log.Warn().Msg("dual system underdetermined, reporting zero duals")
		return s.duals
	}

	// One equality row per primal variable: G^T lam + A^T yp - A^T yn = -c.
	aDual := mat.NewDense(n, nDual, nil)
	for i := 0; i < nG; i++ {
		for r := 0; r < n; r++ {
			aDual.Set(r, i, s.ineq[i][r])
		}
	}
	for e := 0; e < nE; e++ {
		for r := 0; r < n; r++ {
			aDual.Set(r, nG+e, s.eq[e][r])
			aDual.Set(r, nG+nE+e, -s.eq[e][r])
		}
	}

	bDual := negated(s.cMin)

	cDual := make([]float64, nDual)
	copy(cDual, s.h)
	copy(cDual[nG:], s.b)
	for e := 0; e < nE; e++ {
		cDual[nG+nE+e] = -s.b[e]
	}

	_, z, err := lp.Simplex(cDual, aDual, bDual, s.tol, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("dual solve failed, reporting zero duals")
		return s.duals
	}

	// For the minimization form the shadow price of an upper-bounded
	// inequality row is -lam, of a lower-bound part +lam, and of an
	// equality row -y. Maximization negates the cost vector, so the
	// stated-sense prices negate once more.
	for i, ref := range s.refs {
		var d float64
		if ref.eq >= 0 {
			d = -(z[nG+ref.eq] - z[nG+nE+ref.eq])
		}
		if ref.up >= 0 {
			d -= z[ref.up]
		}
		if ref.lo >= 0 {
			d += z[ref.lo]
		}
		if s.maximize {
			d = -d
		}
		s.duals[i] = d
	}
	return s.duals
}
