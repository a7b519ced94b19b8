package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"finite", State{1, 2, 3}, true},
		{"empty", State{}, true},
		{"nan", State{1, math.NaN()}, false},
		{"inf", State{math.Inf(-1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := State{1, 2}
	c := s.Clone()
	c[0] = 9
	if s[0] != 1 {
		t.Errorf("clone aliases original: %v", s)
	}
}

func TestStateSubNorm(t *testing.T) {
	d := State{3, 4}.Sub(State{0, 0})
	if d.Norm() != 5 {
		t.Errorf("expected norm 5, got %f", d.Norm())
	}
}

func TestDivergenceErrorUnwraps(t *testing.T) {
	var err error = &DivergenceError{Step: 12, Time: 1.5}
	if !errors.Is(err, ErrNumericalDivergence) {
		t.Error("DivergenceError should unwrap to ErrNumericalDivergence")
	}
	if errors.Is(err, ErrData) {
		t.Error("DivergenceError must not match ErrData")
	}

	var de *DivergenceError
	if !errors.As(err, &de) || de.Step != 12 {
		t.Errorf("errors.As failed or lost step: %+v", de)
	}
}

func TestInvalidWrapsErrData(t *testing.T) {
	err := Invalid("got %d planets", 1)
	if !errors.Is(err, ErrData) {
		t.Fatal("Invalid should wrap ErrData")
	}
	if err.Error() != "dynamo: invalid input data: got 1 planets" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
