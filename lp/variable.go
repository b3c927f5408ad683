// Package lp provides the abstract model of a linear program: variables
// with bounds, a linear objective, and linear constraints.
//
// A model is built in two steps. First declare variables in a
// ProblemVariables arena, then finalize the objective with Maximize or
// Minimize. The resulting Problem is read-only and is handed to a solver
// via the solvers package:
//
//	vars := lp.NewVariables()
//	x := vars.Add(lp.NewVariable().WithMin(0).WithMax(10))
//	y := vars.Add(lp.NewVariable().WithMin(0))
//	problem := vars.Maximize(lp.Sum(x, y))
package lp

import "math"

// Variable is an opaque handle to a declared variable. Its index is
// dense, zero-based and assigned in declaration order; the same index
// addresses the variable's column in a solver model.
type Variable struct {
	index int
}

// Index returns the variable's zero-based declaration index.
func (v Variable) Index() int {
	return v.index
}

// VariableDefinition holds the bounds (and optional name) of a variable
// before it is added to a ProblemVariables arena.
type VariableDefinition struct {
	Min  float64
	Max  float64
	Name string
}

// NewVariable returns a definition for an unbounded continuous variable.
func NewVariable() VariableDefinition {
	return VariableDefinition{Min: math.Inf(-1), Max: math.Inf(1)}
}

// WithMin sets the lower bound.
func (d VariableDefinition) WithMin(min float64) VariableDefinition {
	d.Min = min
	return d
}

// WithMax sets the upper bound.
func (d VariableDefinition) WithMax(max float64) VariableDefinition {
	d.Max = max
	return d
}

// WithBounds sets both bounds at once.
func (d VariableDefinition) WithBounds(min, max float64) VariableDefinition {
	d.Min = min
	d.Max = max
	return d
}

// Named sets an informational name. Names are not used for addressing.
func (d VariableDefinition) Named(name string) VariableDefinition {
	d.Name = name
	return d
}

// ProblemVariables is an arena of variable definitions. Definitions and
// the Variable handles addressing them share the same dense indices.
type ProblemVariables struct {
	defs []VariableDefinition
}

// NewVariables returns an empty arena.
func NewVariables() *ProblemVariables {
	return &ProblemVariables{}
}

// Add appends a definition and returns its handle. Indices are contiguous
// and strictly increasing with declaration order.
func (pv *ProblemVariables) Add(def VariableDefinition) Variable {
	v := Variable{index: len(pv.defs)}
	pv.defs = append(pv.defs, def)
	return v
}

// AddVector adds n variables sharing the same definition.
func (pv *ProblemVariables) AddVector(def VariableDefinition, n int) []Variable {
	vs := make([]Variable, n)
	for i := range vs {
		vs[i] = pv.Add(def)
	}
	return vs
}

// Len returns the number of declared variables.
func (pv *ProblemVariables) Len() int {
	return len(pv.defs)
}

// Maximize finalizes the arena into a Problem maximizing the objective.
// A nil objective is treated as the zero expression.
func (pv *ProblemVariables) Maximize(objective *Expression) Problem {
	return pv.optimize(Maximize, objective)
}

// Minimize finalizes the arena into a Problem minimizing the objective.
// A nil objective is treated as the zero expression.
func (pv *ProblemVariables) Minimize(objective *Expression) Problem {
	return pv.optimize(Minimize, objective)
}

func (pv *ProblemVariables) optimize(dir ObjectiveDirection, objective *Expression) Problem {
	if objective == nil {
		objective = NewExpression()
	}
	return Problem{Direction: dir, Objective: objective, defs: pv.defs}
}
