// Package simplex provides a pure-Go solvers.Backend built on gonum's
// dense simplex method (gonum.org/v1/gonum/optimize/convex/lp).
//
// The backend accumulates columns and rows, lowers them into gonum's
// general form (finite column bounds and one- or two-sided rows become
// inequality rows, fixed rows become equalities) and solves the converted
// standard-form program. Row duals are recovered by solving the explicit
// dual program, which is why they are only computed on demand.
package simplex

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/0xalpharush/good-lp/internal/logger"
	"github.com/0xalpharush/good-lp/solvers"
)

const defaultTolerance = 1e-10

// row is one stored constraint row before lowering.
type row struct {
	lower, upper float64
	index        []int
	value        []float64
}

// rowRef records where a stored row landed in the lowered general form:
// positions into the equality block, the upper-bound inequality block and
// the negated lower-bound inequality block. -1 marks an absent part.
type rowRef struct {
	eq, up, lo int
}

// Solver is a solvers.Backend backed by gonum's simplex implementation.
// It is not safe for concurrent use.
type Solver struct {
	cost     []float64
	colLower []float64
	colUpper []float64
	rows     []row

	tol float64
	log zerolog.Logger

	// Populated by Run and consumed by DualRows.
	maximize bool
	cols     []float64
	duals    []float64
	solved   bool
	ineq     [][]float64 // G
	h        []float64
	eq       [][]float64 // A
	b        []float64
	cMin     []float64 // sense-adjusted cost
	refs     []rowRef
}

// Option configures a Solver.
type Option func(*Solver)

// WithTolerance sets the reduced-cost tolerance passed to the simplex.
func WithTolerance(tol float64) Option {
	return func(s *Solver) {
		s.tol = tol
	}
}

// WithLogger overrides the solver's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Solver) {
		s.log = log
	}
}

// New returns an empty solver.
func New(opts ...Option) *Solver {
	s := &Solver{tol: defaultTolerance, log: logger.Logger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ solvers.Backend = (*Solver)(nil)

// AddColumn appends a variable column.
func (s *Solver) AddColumn(cost, lower, upper float64) {
	s.cost = append(s.cost, cost)
	s.colLower = append(s.colLower, lower)
	s.colUpper = append(s.colUpper, upper)
}

// AddRow appends a constraint row. Duplicate column indices accumulate.
func (s *Solver) AddRow(lower, upper float64, index []int, value []float64) {
	r := row{
		lower: lower,
		upper: upper,
		index: append([]int(nil), index...),
		value: append([]float64(nil), value...),
	}
	s.rows = append(s.rows, r)
}

// NumColumns returns the number of columns added so far.
func (s *Solver) NumColumns() int {
	return len(s.cost)
}

// NumRows returns the number of rows added so far.
func (s *Solver) NumRows() int {
	return len(s.rows)
}

// dense expands a stored row into a dense coefficient vector.
func (s *Solver) dense(r row) []float64 {
	coeffs := make([]float64, len(s.cost))
	for i, col := range r.index {
		coeffs[col] += r.value[i]
	}
	return coeffs
}

func negated(coeffs []float64) []float64 {
	out := make([]float64, len(coeffs))
	for i, v := range coeffs {
		out[i] = -v
	}
	return out
}

func unit(n, j, sign int) []float64 {
	coeffs := make([]float64, n)
	coeffs[j] = float64(sign)
	return coeffs
}

// lower translates the stored columns and rows into gonum's general form:
//
//	minimize cMin^T x  s.t.  G x <= h,  A x = b
//
// Constraint rows come first within each block, in insertion order, so
// that refs stays valid for dual extraction; bound rows follow.
func (s *Solver) lower(sense solvers.Sense) {
	n := len(s.cost)

	s.maximize = sense == solvers.SenseMaximize
	s.cMin = append([]float64(nil), s.cost...)
	if s.maximize {
		s.cMin = negated(s.cMin)
	}

	s.ineq, s.h = nil, nil
	s.eq, s.b = nil, nil
	s.refs = make([]rowRef, 0, len(s.rows))

	for _, r := range s.rows {
		coeffs := s.dense(r)
		ref := rowRef{eq: -1, up: -1, lo: -1}
		switch {
		case !math.IsInf(r.lower, -1) && r.lower == r.upper:
			ref.eq = len(s.eq)
			s.eq = append(s.eq, coeffs)
			s.b = append(s.b, r.upper)
		default:
			if !math.IsInf(r.upper, 1) {
				ref.up = len(s.ineq)
				s.ineq = append(s.ineq, coeffs)
				s.h = append(s.h, r.upper)
			}
			if !math.IsInf(r.lower, -1) {
				ref.lo = len(s.ineq)
				s.ineq = append(s.ineq, negated(coeffs))
				s.h = append(s.h, -r.lower)
			}
		}
		s.refs = append(s.refs, ref)
	}

	for j := 0; j < n; j++ {
		l, u := s.colLower[j], s.colUpper[j]
		if !math.IsInf(l, -1) && l == u {
			s.eq = append(s.eq, unit(n, j, 1))
			s.b = append(s.b, l)
			continue
		}
		if !math.IsInf(l, -1) {
			s.ineq = append(s.ineq, unit(n, j, -1))
			s.h = append(s.h, -l)
		}
		if !math.IsInf(u, 1) {
			s.ineq = append(s.ineq, unit(n, j, 1))
			s.h = append(s.h, u)
		}
	}
}

// Run lowers and solves the model, returning the termination status.
func (s *Solver) Run(sense solvers.Sense) solvers.ModelStatus {
	n := len(s.cost)
	if n == 0 {
		return solvers.ModelStatusModelEmpty
	}

	s.lower(sense)
	s.cols, s.duals, s.solved = nil, nil, false

	if len(s.ineq) == 0 && len(s.eq) == 0 {
		// All variables are free and nothing constrains them.
		for _, c := range s.cMin {
			if c != 0 {
				return solvers.ModelStatusUnbounded
			}
		}
		s.cols = make([]float64, n)
		s.solved = true
		return solvers.ModelStatusOptimal
	}

	if len(s.eq) > 2*n {
		// Conversion to standard form would yield more equality rows
		// than variables, which the simplex rejects.
		s.log.Warn().Int("equalities", len(s.eq)).
			Msg("too many equality rows for the converted program")
		return solvers.ModelStatusModelError
	}

	var g, a mat.Matrix
	if len(s.ineq) > 0 {
		g = mat.NewDense(len(s.ineq), n, flatten(s.ineq))
	}
	if len(s.eq) > 0 {
		a = mat.NewDense(len(s.eq), n, flatten(s.eq))
	}

	s.log.Debug().Int("columns", n).Int("inequalities", len(s.ineq)).
		Int("equalities", len(s.eq)).Msg("running simplex")

	cNew, aNew, bNew := lp.Convert(s.cMin, g, s.h, a, s.b)
	_, x, err := lp.Simplex(cNew, aNew, bNew, s.tol, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return solvers.ModelStatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return solvers.ModelStatusUnbounded
	default:
		s.log.Warn().Err(err).Msg("simplex failed")
		return solvers.ModelStatusSolveError
	}

	// Convert splits each variable into a positive and a negative part.
	s.cols = make([]float64, n)
	for j := 0; j < n; j++ {
		s.cols[j] = x[j] - x[n+j]
	}
	s.solved = true
	return solvers.ModelStatusOptimal
}

// Columns returns the primal solution values. Only valid after a
// successful Run.
func (s *Solver) Columns() []float64 {
	return s.cols
}

func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return flat
}
