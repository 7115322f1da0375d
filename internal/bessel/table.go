package bessel

import "fmt"

// Table holds the zeros of J_ell for ell = 0..EllMax() that lie below a
// bound. The zeros are stored in a rectangular buffer; column ell has
// KMax()[ell] valid entries and the rest of the column is zero padding that
// callers must not read.
type Table struct {
	bound  float64
	kMax   []int
	stride int
	zeros  []float64
}

// NewTable tabulates zeros of J_ell below bound for ell = 0, 1, ... up to
// maxOrders orders. Tabulation stops at the first order without zeros, which
// fixes the effective maximum angular frequency.
func NewTable(bound float64, maxOrders int) (*Table, error) {
	if maxOrders < 1 {
		return nil, fmt.Errorf("bessel: order count must be >= 1: %d: %w", maxOrders, ErrNoZeros)
	}

	var columns [][]float64

	for ell := range maxOrders {
		z := Zeros(ell, bound)
		if len(z) == 0 {
			break
		}

		columns = append(columns, z)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("bessel: bound %g: %w", bound, ErrNoZeros)
	}

	stride := 0
	for _, c := range columns {
		stride = max(stride, len(c))
	}

	t := &Table{
		bound:  bound,
		kMax:   make([]int, len(columns)),
		stride: stride,
		zeros:  make([]float64, stride*len(columns)),
	}

	for ell, c := range columns {
		t.kMax[ell] = len(c)
		copy(t.zeros[ell*stride:], c)
	}

	return t, nil
}

// Bound returns the cutoff used to tabulate the zeros.
func (t *Table) Bound() float64 { return t.bound }

// EllMax returns the largest order with at least one zero below the bound.
func (t *Table) EllMax() int { return len(t.kMax) - 1 }

// KMax returns a copy of the per-order zero counts.
func (t *Table) KMax() []int {
	out := make([]int, len(t.kMax))
	copy(out, t.kMax)
	return out
}

// MaxK returns the row count of the rectangular buffer.
func (t *Table) MaxK() int { return t.stride }

// Zero returns the (k+1)-th zero of J_ell. It panics when k is outside
// 0..KMax()[ell]-1.
func (t *Table) Zero(k, ell int) float64 {
	if ell < 0 || ell >= len(t.kMax) || k < 0 || k >= t.kMax[ell] {
		panic(fmt.Sprintf("bessel: zero (k=%d, ell=%d) out of range", k, ell))
	}

	return t.zeros[ell*t.stride+k]
}

// Column returns the valid zeros of J_ell without padding.
func (t *Table) Column(ell int) []float64 {
	col := t.zeros[ell*t.stride : ell*t.stride+t.kMax[ell]]
	out := make([]float64, len(col))
	copy(out, col)
	return out
}
