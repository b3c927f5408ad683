package lp

// ObjectiveDirection is the optimization direction of a problem.
type ObjectiveDirection int

const (
	// Minimize searches for the smallest objective value.
	Minimize ObjectiveDirection = iota
	// Maximize searches for the largest objective value.
	Maximize
)

// String returns a human-readable representation of the direction.
func (d ObjectiveDirection) String() string {
	switch d {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// Problem is a finalized abstract model: declared variables, an objective
// expression and a direction. It is read-only input for solver models;
// constraints are submitted separately, one at a time.
type Problem struct {
	Direction ObjectiveDirection
	Objective *Expression

	defs []VariableDefinition
}

// NumVariables returns the number of declared variables.
func (p Problem) NumVariables() int {
	return len(p.defs)
}

// EachVariable calls fn for every variable in declaration order, together
// with its definition.
func (p Problem) EachVariable(fn func(v Variable, def VariableDefinition)) {
	for i, def := range p.defs {
		fn(Variable{index: i}, def)
	}
}
