package basis

import (
	"fmt"
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fb/geometry"
	"github.com/cwbudde/algo-fb/internal/bessel"
	"github.com/cwbudde/algo-fb/internal/fftplan"
	"github.com/cwbudde/algo-fb/nufft"
)

// Fast is the Fourier-Bessel basis defined on the frequency disk, evaluated
// through a half-plane polar grid and conjugate symmetry.
type Fast struct {
	*layout

	cfg   Config
	polar *geometry.Polar

	// radial[ell] is KMax()[ell]×NR, normalized and divided by the
	// quadrature scale 1/L.
	radial []*mat.Dense
	// jacobian[ir] is weight·radius of ring ir.
	jacobian []float64

	plan    nufft.Plan
	angular *fftplan.Pool
}

// NewFast builds a fast basis for images of the given size, which must be
// square and two-dimensional.
func NewFast(size []int, opts ...Option) (*Fast, error) {
	resolution, err := validateSize(size)
	if err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	l, err := newLayout(resolution, cfg)
	if err != nil {
		return nil, err
	}

	polar, err := geometry.NewPolar(resolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if l.EllMax() >= polar.NTheta {
		return nil, fmt.Errorf("%w: ell_max %d needs more than %d angular samples", ErrConfig, l.EllMax(), polar.NTheta)
	}

	f := &Fast{
		layout:   l,
		cfg:      cfg,
		polar:    polar,
		radial:   make([]*mat.Dense, len(l.kMax)),
		jacobian: make([]float64, polar.NR()),
	}

	for ell, km := range l.kMax {
		rows := mat.NewDense(km, polar.NR(), nil)
		norms := l.blockNorms(ell)
		for k := range km {
			z := l.zeros.Zero(k, ell)
			row := rows.RawRowView(k)
			for ir, r := range polar.Nodes {
				row[ir] = bessel.J(ell, z*r/polar.KCut)
			}
			floats.Scale(float64(resolution)/norms[k], row)
		}
		f.radial[ell] = rows
	}

	vecmath.MulBlock(f.jacobian, polar.Weights, polar.Nodes)

	k1 := make([]float64, polar.Len())
	k2 := make([]float64, polar.Len())
	floats.ScaleTo(k1, 2*math.Pi, polar.FreqX)
	floats.ScaleTo(k2, 2*math.Pi, polar.FreqY)

	f.plan, err = nufft.New(cfg.NUFFT, resolution, k1, k2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	f.angular, err = fftplan.NewPool(2 * polar.NTheta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg.Logger.Info("Fourier-Bessel basis ready",
		"method", f.Method(),
		"resolution", resolution,
		"ell_max", f.EllMax(),
		"count", f.Count(),
		"n_r", polar.NR(),
		"n_theta", polar.NTheta,
		"nufft", cfg.NUFFT)

	return f, nil
}

// Method returns "fast".
func (f *Fast) Method() string { return "fast" }

// Config returns the settings the basis was built with.
func (f *Fast) Config() Config { return f.cfg }

// Polar returns the frequency-domain sampling geometry.
func (f *Fast) Polar() *geometry.Polar { return f.polar }

// EvaluateT returns the inner products of x with every basis function,
// computed through the polar Fourier transform of x.
func (f *Fast) EvaluateT(x []float64) ([]float64, error) {
	if err := f.checkImage(x); err != nil {
		return nil, err
	}

	nr, nt := f.polar.NR(), f.polar.NTheta
	bins := f.EllMax() + 1

	pf := make([]complex128, f.polar.Len())
	if err := f.plan.Forward(pf, nufft.Real(nil, x)); err != nil {
		return nil, err
	}

	// Angular spectrum per ring, split into real and imaginary parts.
	re := mat.NewDense(nr, bins, nil)
	im := mat.NewDense(nr, bins, nil)

	plan := f.angular.Get()
	defer f.angular.Put(plan)

	ring := make([]complex128, 2*nt)
	spec := make([]complex128, 2*nt)
	scale := 2 * math.Pi / float64(2*nt)

	for ir := range nr {
		w := complex(f.jacobian[ir], 0)
		for it, c := range pf[ir*nt : (ir+1)*nt] {
			ring[it] = c * w
			ring[it+nt] = cmplx.Conj(c) * w
		}

		if err := plan.Forward(spec, ring); err != nil {
			return nil, err
		}

		for ell := range bins {
			re.Set(ir, ell, real(spec[ell])*scale)
			im.Set(ir, ell, imag(spec[ell])*scale)
		}
	}

	v := make([]float64, f.count)

	for ell, km := range f.kMax {
		cos := mat.NewVecDense(km, v[f.blockStart(ell, 1):f.blockStart(ell, 1)+km])
		if ell == 0 {
			cos.MulVec(f.radial[0], re.ColView(0))
			continue
		}

		sin := mat.NewVecDense(km, v[f.blockStart(ell, -1):f.blockStart(ell, -1)+km])
		if ell%2 == 0 {
			cos.MulVec(f.radial[ell], re.ColView(ell))
			sin.MulVec(f.radial[ell], im.ColView(ell))
			sin.ScaleVec(-1, sin)
		} else {
			cos.MulVec(f.radial[ell], im.ColView(ell))
			sin.MulVec(f.radial[ell], re.ColView(ell))
		}
	}

	return v, nil
}

// Evaluate synthesizes the image of v from its angular spectrum on the
// polar grid.
func (f *Fast) Evaluate(v []float64) ([]float64, error) {
	if err := f.checkCoefficients(v); err != nil {
		return nil, err
	}

	nr, nt := f.polar.NR(), f.polar.NTheta
	n2 := 2 * nt

	spectra := make([]complex128, nr*n2)
	a := mat.NewVecDense(nr, nil)
	b := mat.NewVecDense(nr, nil)

	for ell, km := range f.kMax {
		start := f.blockStart(ell, 1)
		a.MulVec(f.radial[ell].T(), mat.NewVecDense(km, v[start:start+km]))

		if ell == 0 {
			for ir := range nr {
				spectra[ir*n2] = complex(a.AtVec(ir), 0)
			}
			continue
		}

		start = f.blockStart(ell, -1)
		b.MulVec(f.radial[ell].T(), mat.NewVecDense(km, v[start:start+km]))

		for ir := range nr {
			p := complex(a.AtVec(ir), -b.AtVec(ir)) / 2
			mirror := cmplx.Conj(p)
			if ell%2 == 1 {
				p *= 1i
				mirror = -cmplx.Conj(p)
			}

			spectra[ir*n2+ell] = p
			spectra[ir*n2+n2-ell] = mirror
		}
	}

	plan := f.angular.Get()
	defer f.angular.Put(plan)

	ring := make([]complex128, n2)
	pf := make([]complex128, f.polar.Len())

	for ir := range nr {
		if err := plan.Inverse(ring, spectra[ir*n2:(ir+1)*n2]); err != nil {
			return nil, err
		}

		// Inverse is normalized by 1/n2; the angular quadrature wants 2π/n2.
		w := complex(2*math.Pi*f.jacobian[ir], 0)
		for it := range nt {
			pf[ir*nt+it] = ring[it] * w
		}
	}

	img := make([]complex128, f.resolution*f.resolution)
	if err := f.plan.Adjoint(img, pf); err != nil {
		return nil, err
	}

	x := make([]float64, len(img))
	for i, c := range img {
		x[i] = 2 * real(c)
	}

	return x, nil
}
