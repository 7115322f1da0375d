package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig reports an unusable size, precision, or angular cutoff.
	ErrConfig = errors.New("basis: invalid configuration")
	// ErrShape reports an input whose length does not match the basis.
	ErrShape = errors.New("basis: shape mismatch")
	// ErrConvergence reports a least-squares solve that ran out of iterations.
	ErrConvergence = errors.New("basis: solver did not converge")
)

// ConvergenceError describes a failed solve for one batch sample.
type ConvergenceError struct {
	Sample     int
	Iterations int
	Residual   float64
	Err        error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("basis: sample %d did not converge after %d iterations (relative residual %.3g)",
		e.Sample, e.Iterations, e.Residual)
}

// Unwrap makes errors.Is match ErrConvergence and the solver's own error.
func (e *ConvergenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConvergence}
	}
	return []error{ErrConvergence, e.Err}
}

func shapeError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrShape, what, got, want)
}
