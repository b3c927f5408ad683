package lp

// Expression is a linear expression: a sparse mapping from variables to
// coefficients plus a scalar constant term. Variables that were never
// given a coefficient have coefficient 0.
type Expression struct {
	terms    map[Variable]float64
	constant float64
}

// NewExpression returns the zero expression.
func NewExpression() *Expression {
	return &Expression{terms: make(map[Variable]float64)}
}

// Term returns the expression coef*v.
func Term(v Variable, coef float64) *Expression {
	return NewExpression().AddTerm(v, coef)
}

// Constant returns the expression with constant term k and no variables.
func Constant(k float64) *Expression {
	return NewExpression().AddConstant(k)
}

// Sum returns the expression v0 + v1 + ... for the given variables.
func Sum(vs ...Variable) *Expression {
	e := NewExpression()
	for _, v := range vs {
		e.AddTerm(v, 1)
	}
	return e
}

// AddTerm adds coef*v to the expression and returns it.
func (e *Expression) AddTerm(v Variable, coef float64) *Expression {
	e.terms[v] += coef
	return e
}

// AddConstant adds a scalar to the constant term and returns the expression.
func (e *Expression) AddConstant(k float64) *Expression {
	e.constant += k
	return e
}

// Add adds another expression term-wise and returns the receiver.
func (e *Expression) Add(other *Expression) *Expression {
	for v, coef := range other.terms {
		e.terms[v] += coef
	}
	e.constant += other.constant
	return e
}

// Sub subtracts another expression term-wise and returns the receiver.
func (e *Expression) Sub(other *Expression) *Expression {
	for v, coef := range other.terms {
		e.terms[v] -= coef
	}
	e.constant -= other.constant
	return e
}

// Scale multiplies every coefficient and the constant by k.
func (e *Expression) Scale(k float64) *Expression {
	for v := range e.terms {
		e.terms[v] *= k
	}
	e.constant *= k
	return e
}

// Coefficient returns the coefficient of v, 0 if absent.
func (e *Expression) Coefficient(v Variable) float64 {
	return e.terms[v]
}

// Constant returns the scalar constant term.
func (e *Expression) Constant() float64 {
	return e.constant
}

// NumTerms returns the number of variables with a stored coefficient.
func (e *Expression) NumTerms() int {
	return len(e.terms)
}

// EachTerm calls fn for every stored (variable, coefficient) pair. The
// visit order is unspecified; callers that need a deterministic order must
// sort by Variable.Index themselves.
func (e *Expression) EachTerm(fn func(v Variable, coef float64)) {
	for v, coef := range e.terms {
		fn(v, coef)
	}
}

// Clone returns an independent copy of the expression.
func (e *Expression) Clone() *Expression {
	c := &Expression{terms: make(map[Variable]float64, len(e.terms)), constant: e.constant}
	for v, coef := range e.terms {
		c.terms[v] = coef
	}
	return c
}
