// Package solvers lowers an abstract lp.Problem into the row-oriented
// column/row representation a numerical solver expects, runs the solver,
// and maps its termination status onto a small error taxonomy.
//
// The solver itself sits behind the Backend interface and is treated as a
// black box: this package only guarantees that column indices match
// variable declaration order, that row indices match constraint insertion
// order, and that every backend status lands in exactly one of
// {Solution, ErrInfeasible, ErrUnbounded, StatusError}.
//
//	model := solvers.Build(problem, simplex.New())
//	ref := model.AddConstraint(lp.LessEq(lp.Sum(x, y), lp.Term(z, 2)))
//	solution, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solution.Value(x), solution.EnsureDuals().Dual(ref))
package solvers

// Sense is the optimization direction passed to a backend.
type Sense int

const (
	// SenseMinimize minimizes the objective.
	SenseMinimize Sense = iota
	// SenseMaximize maximizes the objective.
	SenseMaximize
)

// String returns a human-readable representation of the sense.
func (s Sense) String() string {
	switch s {
	case SenseMinimize:
		return "Minimize"
	case SenseMaximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// Backend is the row-oriented solver behind a Model.
//
// Columns and rows are addressed by dense zero-based indices in the order
// they were added. Run is synchronous and may take arbitrarily long; no
// cancellation hook is exposed at this layer. Columns is only meaningful
// after Run reported a status with a solution; DualRows may perform
// non-trivial work and is therefore only called on demand.
type Backend interface {
	// AddColumn appends a variable column with the given objective
	// coefficient and bounds.
	AddColumn(cost, lower, upper float64)

	// AddRow appends a constraint row with the given bounds and sparse
	// coefficients. index holds column indices, value the matching
	// coefficients.
	AddRow(lower, upper float64, index []int, value []float64)

	// Run solves the model in the given sense and returns the
	// termination status.
	Run(sense Sense) ModelStatus

	// Columns returns the primal solution, one value per column.
	Columns() []float64

	// DualRows returns the dual values, one per row.
	DualRows() []float64
}
