package main

import (
	"fmt"
	"log"

	"github.com/0xalpharush/good-lp/lp"
	"github.com/0xalpharush/good-lp/solvers"
	"github.com/0xalpharush/good-lp/solvers/simplex"
)

func main() {
	// Maximize: x + 2y
	// Subject to: x + y <= 10, 0 <= x,y
	vars := lp.NewVariables()
	x := vars.Add(lp.NewVariable().WithMin(0).Named("x"))
	y := vars.Add(lp.NewVariable().WithMin(0).Named("y"))

	objective := lp.Term(x, 1).AddTerm(y, 2)
	model := solvers.Build(vars.Maximize(objective), simplex.New())
	budget := model.AddConstraint(lp.LessEq(lp.Sum(x, y), lp.Constant(10)))

	solution, err := model.Solve()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("x = %.2f, y = %.2f\n", solution.Value(x), solution.Value(y))
	fmt.Printf("objective = %.2f\n", solution.Eval(objective))
	fmt.Printf("budget shadow price = %.2f\n", solution.EnsureDuals().Dual(budget))
}
