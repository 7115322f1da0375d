package nufft

import "math"

type direct struct {
	res    int
	k1, k2 []float64
}

func newDirect(resolution int, k1, k2 []float64) *direct {
	return &direct{
		res: resolution,
		k1:  append([]float64(nil), k1...),
		k2:  append([]float64(nil), k2...),
	}
}

func (d *direct) Resolution() int { return d.res }

func (d *direct) Len() int { return len(d.k1) }

func (d *direct) Forward(dst, src []complex128) error {
	if err := checkBuffers(d.res, len(d.k1), src, dst); err != nil {
		return err
	}

	lo := -(d.res / 2)
	row := make([]complex128, d.res)
	col := make([]complex128, d.res)

	for p := range d.k1 {
		phasors(row, d.k1[p], lo, -1)
		phasors(col, d.k2[p], lo, -1)

		var sum complex128
		for i := range d.res {
			var acc complex128
			for j := range d.res {
				acc += src[i*d.res+j] * col[j]
			}
			sum += row[i] * acc
		}

		dst[p] = sum
	}

	return nil
}

func (d *direct) Adjoint(dst, src []complex128) error {
	if err := checkBuffers(d.res, len(d.k1), dst, src); err != nil {
		return err
	}

	lo := -(d.res / 2)
	row := make([]complex128, d.res)
	col := make([]complex128, d.res)

	clear(dst)

	for p := range d.k1 {
		phasors(row, d.k1[p], lo, 1)
		phasors(col, d.k2[p], lo, 1)

		for i := range d.res {
			ri := src[p] * row[i]
			for j := range d.res {
				dst[i*d.res+j] += ri * col[j]
			}
		}
	}

	return nil
}

// phasors fills dst[n] = exp(sign·i·k·(n+lo)).
func phasors(dst []complex128, k float64, lo int, sign float64) {
	for n := range dst {
		s, c := math.Sincos(sign * k * float64(n+lo))
		dst[n] = complex(c, s)
	}
}
