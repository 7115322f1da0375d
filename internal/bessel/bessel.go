// Package bessel provides Bessel functions of the first kind and tabulation
// of their zeros, shared by the Fourier-Bessel basis constructors.
package bessel

import (
	"errors"
	"math"
)

// ErrNoZeros is returned when the lowest order has no zero below the bound,
// which leaves a table without any usable angular frequency.
var ErrNoZeros = errors.New("bessel: no zeros below bound")

const (
	// scanStep is the bracketing step. Consecutive zeros of J_n are more
	// than 2.4 apart, so a step of 0.1 never straddles two of them.
	scanStep = 0.1

	maxRefineIter = 200
)

// J returns the Bessel function of the first kind of integer order n at x.
func J(n int, x float64) float64 {
	return math.Jn(n, x)
}

// Zeros returns the zeros of J_n on the open interval (0, bound) in
// increasing order. J_{-n} has the same zeros as J_n.
func Zeros(n int, bound float64) []float64 {
	if n < 0 {
		n = -n
	}

	// J_n is positive on (0, j_{n,1}) and j_{n,1} > n, so scanning can
	// start at x = n without skipping a zero.
	a := float64(n)
	if a >= bound {
		return nil
	}

	var zeros []float64

	fa := J(n, a)
	for a < bound {
		b := math.Min(a+scanStep, bound)
		fb := J(n, b)

		if fa == 0 && a > 0 {
			zeros = append(zeros, a)
		} else if math.Signbit(fa) != math.Signbit(fb) && fb != 0 {
			if z := refine(n, a, b, fa, fb); z < bound {
				zeros = append(zeros, z)
			}
		}

		a, fa = b, fb
	}

	return zeros
}

// Count returns the number of zeros of J_n below bound.
func Count(n int, bound float64) int {
	return len(Zeros(n, bound))
}

// refine narrows a sign-changing bracket [lo, hi] of J_n with the Illinois
// variant of regula falsi, falling back to bisection when the interpolated
// point leaves the bracket.
func refine(n int, lo, hi, flo, fhi float64) float64 {
	side := 0

	for range maxRefineIter {
		if hi-lo <= 4*math.SmallestNonzeroFloat64+2*epsilon*hi {
			break
		}

		x := (lo*fhi - hi*flo) / (fhi - flo)
		if !(x > lo && x < hi) {
			x = 0.5 * (lo + hi)
		}

		fx := J(n, x)
		if fx == 0 {
			return x
		}

		if math.Signbit(fx) == math.Signbit(flo) {
			lo, flo = x, fx
			if side == -1 {
				fhi *= 0.5
			}
			side = -1
		} else {
			hi, fhi = x, fx
			if side == 1 {
				flo *= 0.5
			}
			side = 1
		}
	}

	if math.Abs(flo) < math.Abs(fhi) {
		return lo
	}

	return hi
}

const epsilon = 0x1p-52
