package solvers

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned by Solve when no assignment satisfies all
// constraints. It is never retried or recovered at this layer.
var ErrInfeasible = errors.New("solvers: problem is infeasible")

// ErrUnbounded is returned by Solve when the objective can be improved
// without limit.
var ErrUnbounded = errors.New("solvers: problem is unbounded")

// StatusError is returned by Solve for every non-success backend status
// that is neither infeasibility nor unboundedness: setup, solve or
// postsolve failures, an empty model, or a status the solver never set.
type StatusError struct {
	Status ModelStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("solvers: solve failed: %s", e.Status)
}

// Reason returns the short stable tag identifying the failure family.
func (e *StatusError) Reason() string {
	return e.Status.String()
}
