// Package cg solves symmetric positive definite systems with the method
// of conjugate gradients, given only a matrix-vector product.
package cg

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrNotConverged is returned when the iteration limit is reached before
// the residual drops below tolerance.
var ErrNotConverged = errors.New("cg: did not converge")

// ErrBreakdown is returned when a search direction p has p·A·p <= 0, so the
// operator is not positive definite on the Krylov space.
var ErrBreakdown = errors.New("cg: operator breakdown")

// Operator writes A·x into dst. A must be symmetric positive definite.
type Operator func(dst, x []float64)

// Settings controls the iteration.
type Settings struct {
	// Tol is the relative residual target ‖b - A·x‖ / ‖b‖.
	Tol float64
	// MaxIter caps the number of iterations. Zero means 10·len(b).
	MaxIter int
	// Logger receives one debug record per iteration. Nil disables it.
	Logger *slog.Logger
}

// Result reports the final iterate.
type Result struct {
	X          []float64
	Iterations int
	// Residual is the relative residual of the recursively updated
	// residual vector at exit.
	Residual float64
}

// Solve returns x with A·x ≈ b starting from x0 (nil means zero).
// On ErrNotConverged or ErrBreakdown the returned Result still holds the
// last iterate.
func Solve(a Operator, b, x0 []float64, s Settings) (Result, error) {
	n := len(b)
	if x0 != nil && len(x0) != n {
		return Result{}, fmt.Errorf("cg: initial guess has length %d, want %d", len(x0), n)
	}

	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = 10 * n
	}

	x := make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		clear(x)
		return Result{X: x}, nil
	}

	r := make([]float64, n)
	ap := make([]float64, n)

	copy(r, b)
	if x0 != nil {
		a(ap, x)
		floats.Sub(r, ap)
	}

	p := make([]float64, n)
	copy(p, r)
	rr := floats.Dot(r, r)

	res := Result{X: x, Residual: math.Sqrt(rr) / bnorm}
	if res.Residual <= s.Tol {
		return res, nil
	}

	for it := 1; it <= maxIter; it++ {
		a(ap, p)

		pap := floats.Dot(p, ap)
		if pap <= 0 {
			res.Iterations = it
			return res, fmt.Errorf("%w at iteration %d (p·Ap = %g)", ErrBreakdown, it, pap)
		}

		alpha := rr / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		rrNext := floats.Dot(r, r)
		res.Iterations = it
		res.Residual = math.Sqrt(rrNext) / bnorm

		if s.Logger != nil {
			s.Logger.Debug("cg iteration", "iter", it, "residual", res.Residual)
		}

		if res.Residual <= s.Tol {
			return res, nil
		}

		beta := rrNext / rr
		rr = rrNext

		// p = r + beta·p
		floats.Scale(beta, p)
		floats.Add(p, r)
	}

	return res, fmt.Errorf("%w after %d iterations (residual %g > %g)", ErrNotConverged, res.Iterations, res.Residual, s.Tol)
}
