package geometry

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

// NyquistCut is the normalized frequency cutoff of a pixel grid.
const NyquistCut = 0.5

// Polar is a half-plane polar grid in the Fourier domain.
//
// Point (ir, it) lies at radius Nodes[ir] and angle it·π/NTheta; its flat
// index is ir*NTheta + it.
type Polar struct {
	Resolution int

	// RCut is the spatial support radius L/2; KCut the frequency cutoff.
	RCut float64
	KCut float64

	// Nodes and Weights are the Gauss-Legendre rule on [0, KCut], ascending.
	Nodes   []float64
	Weights []float64

	// NTheta is the number of angular samples on the half-turn [0, π).
	NTheta int

	// FreqX and FreqY are the Cartesian coordinates of every grid point in
	// cycles per pixel.
	FreqX []float64
	FreqY []float64
}

// NewPolar builds the polar frequency grid for an L×L image, sampling
// n_r = ceil(4·RCut·KCut) radii and n_theta = ceil(16·KCut·RCut) angles on
// the full turn, rounded up to even and halved.
func NewPolar(resolution int) (*Polar, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: %d", ErrResolution, resolution)
	}

	p := &Polar{
		Resolution: resolution,
		RCut:       float64(resolution) / 2,
		KCut:       NyquistCut,
	}

	nr := int(math.Ceil(4 * p.RCut * p.KCut))
	p.Nodes, p.Weights = GaussLegendre(nr, 0, p.KCut)

	nt := int(math.Ceil(16 * p.KCut * p.RCut))
	p.NTheta = (nt + nt%2) / 2

	p.FreqX = make([]float64, nr*p.NTheta)
	p.FreqY = make([]float64, nr*p.NTheta)

	for it := range p.NTheta {
		sin, cos := math.Sincos(float64(it) * math.Pi / float64(p.NTheta))
		for ir, r := range p.Nodes {
			p.FreqX[ir*p.NTheta+it] = r * cos
			p.FreqY[ir*p.NTheta+it] = r * sin
		}
	}

	return p, nil
}

// NR returns the number of radial nodes.
func (p *Polar) NR() int { return len(p.Nodes) }

// Len returns the number of grid points.
func (p *Polar) Len() int { return len(p.FreqX) }

// Angle returns the angle of angular sample it.
func (p *Polar) Angle(it int) float64 {
	return float64(it) * math.Pi / float64(p.NTheta)
}

// GaussLegendre returns the n-point Gauss-Legendre nodes and weights on
// [a, b], sorted by ascending node.
func GaussLegendre(n int, a, b float64) ([]float64, []float64) {
	if n <= 0 {
		return nil, nil
	}

	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, a, b)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })

	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i, idx := range order {
		nodes[i] = x[idx]
		weights[i] = w[idx]
	}

	return nodes, weights
}
