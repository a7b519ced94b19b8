package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrData indicates insufficient or invalid input: fewer than two valid
	// periods, mismatched slice lengths, non-positive duration or steps.
	ErrData = errors.New("dynamo: invalid input data")

	// ErrNumericalDivergence indicates the integration produced a NaN or Inf.
	ErrNumericalDivergence = errors.New("dynamo: numerical divergence (non-finite state)")
)

// DivergenceError records where an integration stopped producing finite
// values.
type DivergenceError struct {
	Step int
	Time float64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s at step %d (t=%.4f)", ErrNumericalDivergence.Error(), e.Step, e.Time)
}

func (e *DivergenceError) Unwrap() error {
	return ErrNumericalDivergence
}

// Invalid wraps ErrData with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrData, fmt.Sprintf(format, args...))
}
