package basis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fb/nufft"
)

// Polar samples the Fourier transform of an image on a full polar grid.
// Its coefficients are complex: coefficient i·NRad()+j is the transform at
// radius j·ω0 and angle i·2π/NTheta(), with ω0 = 2π/(2·NRad()-1) and the
// angle measured so that sin pairs with the row axis.
type Polar struct {
	cfg        Config
	resolution int
	nrad       int
	ntheta     int
	plan       nufft.Plan
}

// NewPolar builds a polar basis. Non-positive nrad and ntheta select
// ceil(L/2) radii and ceil(2πL), rounded up to even, angles.
func NewPolar(size []int, nrad, ntheta int, opts ...Option) (*Polar, error) {
	resolution, err := validateSize(size)
	if err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if nrad <= 0 {
		nrad = (resolution + 1) / 2
	}

	if ntheta <= 0 {
		ntheta = int(math.Ceil(2 * math.Pi * float64(resolution)))
		ntheta += ntheta % 2
	}

	omega0 := 2 * math.Pi / float64(2*nrad-1)
	dtheta := 2 * math.Pi / float64(ntheta)

	k1 := make([]float64, nrad*ntheta)
	k2 := make([]float64, nrad*ntheta)
	for i := range ntheta {
		s, c := math.Sincos(float64(i) * dtheta)
		for j := range nrad {
			k1[i*nrad+j] = float64(j) * omega0 * s
			k2[i*nrad+j] = float64(j) * omega0 * c
		}
	}

	plan, err := nufft.New(cfg.NUFFT, resolution, k1, k2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg.Logger.Info("polar Fourier basis ready",
		"resolution", resolution, "n_rad", nrad, "n_theta", ntheta, "nufft", cfg.NUFFT)

	return &Polar{cfg: cfg, resolution: resolution, nrad: nrad, ntheta: ntheta, plan: plan}, nil
}

// Method returns "polar".
func (p *Polar) Method() string { return "polar" }

func (p *Polar) Resolution() int { return p.resolution }

// NRad returns the number of radial samples per angle.
func (p *Polar) NRad() int { return p.nrad }

// NTheta returns the number of angles.
func (p *Polar) NTheta() int { return p.ntheta }

// Count returns NRad()·NTheta().
func (p *Polar) Count() int { return p.nrad * p.ntheta }

// EvaluateT samples the Fourier transform of x on the polar grid.
func (p *Polar) EvaluateT(x []float64) ([]complex128, error) {
	if n := p.resolution * p.resolution; len(x) != n {
		return nil, shapeError("image", len(x), n)
	}

	out := make([]complex128, p.Count())
	if err := p.plan.Forward(out, nufft.Real(nil, x)); err != nil {
		return nil, err
	}

	return out, nil
}

// Evaluate returns the real part of the adjoint transform of pf.
func (p *Polar) Evaluate(pf []complex128) ([]float64, error) {
	if len(pf) != p.Count() {
		return nil, shapeError("polar coefficients", len(pf), p.Count())
	}

	img := make([]complex128, p.resolution*p.resolution)
	if err := p.plan.Adjoint(img, pf); err != nil {
		return nil, err
	}

	x := make([]float64, len(img))
	for i, c := range img {
		x[i] = real(c)
	}

	return x, nil
}
