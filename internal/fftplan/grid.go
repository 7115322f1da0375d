package fftplan

import "fmt"

// Grid transforms row-major rows×cols complex arrays with separable 1D
// plans along both axes.
type Grid struct {
	rows, cols int
	rowPool    *Pool
	colPool    *Pool
}

// NewGrid returns a 2D transform for rows×cols arrays.
func NewGrid(rows, cols int) (*Grid, error) {
	rowPool, err := NewPool(cols)
	if err != nil {
		return nil, err
	}

	colPool := rowPool
	if rows != cols {
		colPool, err = NewPool(rows)
		if err != nil {
			return nil, err
		}
	}

	return &Grid{rows: rows, cols: cols, rowPool: rowPool, colPool: colPool}, nil
}

// Dims returns the array shape.
func (g *Grid) Dims() (int, int) { return g.rows, g.cols }

// Forward applies the unnormalized forward transform in place.
func (g *Grid) Forward(data []complex128) error {
	return g.transform(data, false)
}

// Inverse applies the normalized inverse transform in place.
func (g *Grid) Inverse(data []complex128) error {
	return g.transform(data, true)
}

func (g *Grid) transform(data []complex128, inverse bool) error {
	if len(data) != g.rows*g.cols {
		return fmt.Errorf("%w: grid data %d, want %d", ErrLength, len(data), g.rows*g.cols)
	}

	apply := func(p Plan, dst, src []complex128) error {
		if inverse {
			return p.Inverse(dst, src)
		}
		return p.Forward(dst, src)
	}

	rowPlan := g.rowPool.Get()
	defer g.rowPool.Put(rowPlan)

	line := make([]complex128, max(g.rows, g.cols))
	out := make([]complex128, max(g.rows, g.cols))

	for r := range g.rows {
		row := data[r*g.cols : (r+1)*g.cols]
		copy(line[:g.cols], row)
		if err := apply(rowPlan, row, line[:g.cols]); err != nil {
			return err
		}
	}

	colPlan := g.colPool.Get()
	defer g.colPool.Put(colPlan)

	for c := range g.cols {
		for r := range g.rows {
			line[r] = data[r*g.cols+c]
		}

		if err := apply(colPlan, out[:g.rows], line[:g.rows]); err != nil {
			return err
		}

		for r := range g.rows {
			data[r*g.cols+c] = out[r]
		}
	}

	return nil
}
