package solvers

import (
	"math"

	"github.com/0xalpharush/good-lp/internal/logger"
	"github.com/0xalpharush/good-lp/lp"
)

// Model is a problem lowered into a backend's column/row representation.
// Columns are fixed when the model is built; rows are appended one at a
// time as constraints are added. A Model is exclusively owned by one
// goroutine and is consumed by Solve.
type Model struct {
	backend Backend
	sense   Sense
	cols    int
	rows    int
}

// Build lowers a problem onto a backend: one column per variable, in
// declaration order, carrying the variable's bounds and its coefficient in
// the objective. The column index equals the variable index; that
// correspondence is the only addressing scheme used to read back primal
// values later.
func Build(problem lp.Problem, backend Backend) *Model {
	m := &Model{backend: backend, sense: senseOf(problem.Direction)}
	problem.EachVariable(func(v lp.Variable, def lp.VariableDefinition) {
		backend.AddColumn(problem.Objective.Coefficient(v), def.Min, def.Max)
		m.cols++
	})
	return m
}

func senseOf(dir lp.ObjectiveDirection) Sense {
	if dir == lp.Maximize {
		return SenseMaximize
	}
	return SenseMinimize
}

// NumColumns returns the number of columns in the model.
func (m *Model) NumColumns() int {
	return m.cols
}

// NumConstraints returns the number of rows added so far.
func (m *Model) NumConstraints() int {
	return m.rows
}

// AddConstraint appends one row encoding the constraint and returns a
// reference carrying the row index. For an expression sum(c_i*x_i) + k the
// row bound is -k: an equality becomes a fixed row [-k, -k], an inequality
// becomes a row with upper bound -k and no lower bound. Only variables
// with a stored coefficient contribute row entries, so the cost is
// proportional to the number of nonzeros. Existing rows are never
// renumbered.
func (m *Model) AddConstraint(constraint lp.Constraint) lp.ConstraintReference {
	bound := -constraint.Expression.Constant()
	index := make([]int, 0, constraint.Expression.NumTerms())
	value := make([]float64, 0, constraint.Expression.NumTerms())
	constraint.Expression.EachTerm(func(v lp.Variable, coef float64) {
		index = append(index, v.Index())
		value = append(value, coef)
	})

	lower := math.Inf(-1)
	if constraint.IsEquality {
		lower = bound
	}
	m.backend.AddRow(lower, bound, index, value)

	ref := lp.ConstraintReference{Index: m.rows}
	m.rows++
	return ref
}

// Solve runs the backend and classifies its termination status. It either
// returns a Solution or one of ErrInfeasible, ErrUnbounded and
// *StatusError; there is no partial-success state. The call blocks until
// the backend finishes and the model must not be used again afterwards.
func (m *Model) Solve() (*Solution, error) {
	log := logger.Logger()
	log.Debug().Int("columns", m.cols).Int("rows", m.rows).
		Stringer("sense", m.sense).Msg("solving model")

	status := m.backend.Run(m.sense)
	log.Debug().Stringer("status", status).Msg("solver finished")

	switch {
	case status == ModelStatusInfeasible:
		return nil, ErrInfeasible
	case status == ModelStatusUnbounded:
		return nil, ErrUnbounded
	case status.HasSolution():
		return &Solution{backend: m.backend, columns: m.backend.Columns()}, nil
	default:
		// Covers every setup/solve/postsolve failure, the empty and
		// "not run" statuses, and any status value this package does
		// not know about.
		return nil, &StatusError{Status: status}
	}
}
