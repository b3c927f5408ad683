package lp

// Constraint is a linear constraint in canonical form: Expression <= 0
// when IsEquality is false, Expression = 0 otherwise. The constructors
// below move both sides onto the left, so the constant term already
// carries the right-hand side.
type Constraint struct {
	Expression *Expression
	IsEquality bool
}

// LessEq returns the constraint lhs <= rhs.
func LessEq(lhs, rhs *Expression) Constraint {
	return Constraint{Expression: lhs.Clone().Sub(rhs)}
}

// GreaterEq returns the constraint lhs >= rhs.
func GreaterEq(lhs, rhs *Expression) Constraint {
	return Constraint{Expression: rhs.Clone().Sub(lhs)}
}

// Eq returns the constraint lhs = rhs.
func Eq(lhs, rhs *Expression) Constraint {
	return Constraint{Expression: lhs.Clone().Sub(rhs), IsEquality: true}
}

// ConstraintReference identifies a constraint added to a solver model.
// Index is zero-based and equals the constraint's insertion order; it is
// never reused or reordered and addresses the constraint's row when
// reading dual values.
type ConstraintReference struct {
	Index int
}
