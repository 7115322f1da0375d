package nufft

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-fb/internal/fftplan"
)

const (
	// oversampling is the minimum ratio of grid size to resolution.
	oversampling = 2
	// spread is the kernel half-width in grid cells.
	spread = 12
	taps   = 2*spread + 1
)

type gaussian struct {
	res    int
	m      int
	points int

	// Per point and axis: first grid index and taps kernel weights.
	start1, start2 []int
	w1, w2         []float64

	// deconv[n] undoes the kernel for pixel offset index n.
	deconv []float64

	grid    *fftplan.Grid
	scratch sync.Pool
}

func newGaussian(resolution int, k1, k2 []float64) (*gaussian, error) {
	m := fftplan.NextPowerOf2(oversampling * resolution)

	grid, err := fftplan.NewGrid(m, m)
	if err != nil {
		return nil, err
	}

	ratio := float64(m) / float64(resolution)
	tau := math.Pi * spread / (float64(resolution*resolution) * ratio * (ratio - 0.5))
	h := 2 * math.Pi / float64(m)

	g := &gaussian{
		res:    resolution,
		m:      m,
		points: len(k1),
		start1: make([]int, len(k1)),
		start2: make([]int, len(k1)),
		w1:     make([]float64, len(k1)*taps),
		w2:     make([]float64, len(k1)*taps),
		deconv: make([]float64, resolution),
		grid:   grid,
	}

	for p := range k1 {
		g.start1[p] = kernel(g.w1[p*taps:(p+1)*taps], k1[p], h, tau)
		g.start2[p] = kernel(g.w2[p*taps:(p+1)*taps], k2[p], h, tau)
	}

	lo := -(resolution / 2)
	amp := math.Sqrt(math.Pi / tau)
	for n := range g.deconv {
		off := float64(n + lo)
		g.deconv[n] = amp * math.Exp(off*off*tau)
	}

	g.scratch.New = func() any {
		buf := make([]complex128, m*m)
		return &buf
	}

	return g, nil
}

// kernel fills w with Gaussian weights centred on x and returns the
// grid index of w[0].
func kernel(w []float64, x, h, tau float64) int {
	m0 := int(math.Round(x/h)) - spread
	for l := range w {
		d := x - float64(m0+l)*h
		w[l] = math.Exp(-d * d / (4 * tau))
	}
	return m0
}

func (g *gaussian) Resolution() int { return g.res }

func (g *gaussian) Len() int { return g.points }

func (g *gaussian) wrap(i int) int {
	i %= g.m
	if i < 0 {
		i += g.m
	}
	return i
}

func (g *gaussian) Forward(dst, src []complex128) error {
	if err := checkBuffers(g.res, g.points, src, dst); err != nil {
		return err
	}

	bufp := g.scratch.Get().(*[]complex128)
	defer g.scratch.Put(bufp)
	buf := *bufp
	clear(buf)

	lo := -(g.res / 2)
	for i := range g.res {
		row := g.wrap(i+lo) * g.m
		for j := range g.res {
			buf[row+g.wrap(j+lo)] = src[i*g.res+j] * complex(g.deconv[i]*g.deconv[j], 0)
		}
	}

	if err := g.grid.Forward(buf); err != nil {
		return err
	}

	norm := 1 / float64(g.m*g.m)
	for p := range g.points {
		w1 := g.w1[p*taps : (p+1)*taps]
		w2 := g.w2[p*taps : (p+1)*taps]

		var sum complex128
		for a := range taps {
			row := g.wrap(g.start1[p]+a) * g.m
			var acc complex128
			for b := range taps {
				acc += buf[row+g.wrap(g.start2[p]+b)] * complex(w2[b], 0)
			}
			sum += acc * complex(w1[a], 0)
		}

		dst[p] = sum * complex(norm, 0)
	}

	return nil
}

func (g *gaussian) Adjoint(dst, src []complex128) error {
	if err := checkBuffers(g.res, g.points, dst, src); err != nil {
		return err
	}

	bufp := g.scratch.Get().(*[]complex128)
	defer g.scratch.Put(bufp)
	buf := *bufp
	clear(buf)

	for p := range g.points {
		w1 := g.w1[p*taps : (p+1)*taps]
		w2 := g.w2[p*taps : (p+1)*taps]

		for a := range taps {
			row := g.wrap(g.start1[p]+a) * g.m
			ca := src[p] * complex(w1[a], 0)
			for b := range taps {
				buf[row+g.wrap(g.start2[p]+b)] += ca * complex(w2[b], 0)
			}
		}
	}

	if err := g.grid.Inverse(buf); err != nil {
		return err
	}

	lo := -(g.res / 2)
	for i := range g.res {
		row := g.wrap(i+lo) * g.m
		for j := range g.res {
			dst[i*g.res+j] = buf[row+g.wrap(j+lo)] * complex(g.deconv[i]*g.deconv[j], 0)
		}
	}

	return nil
}
