package basis

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fb/geometry"
	"github.com/cwbudde/algo-fb/internal/bessel"
)

// Direct samples every basis function on the disk pixels.
type Direct struct {
	*layout

	cfg  Config
	disk *geometry.Disk

	// radial[ell] is KMax()[ell]×len(disk.Radii), already normalized.
	radial []*mat.Dense
	// angular[b] holds block b's angular profile at each unique angle.
	angular [][]float64
}

// NewDirect builds a direct basis for images of the given size, which must
// be square and two-dimensional.
func NewDirect(size []int, opts ...Option) (*Direct, error) {
	resolution, err := validateSize(size)
	if err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	l, err := newLayout(resolution, cfg)
	if err != nil {
		return nil, err
	}

	disk, err := geometry.NewDisk(resolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	d := &Direct{
		layout:  l,
		cfg:     cfg,
		disk:    disk,
		radial:  make([]*mat.Dense, len(l.kMax)),
		angular: make([][]float64, len(l.blocks)),
	}

	nr := len(disk.Radii)
	for ell, km := range l.kMax {
		rows := mat.NewDense(km, nr, nil)
		norms := l.blockNorms(ell)
		for k := range km {
			z := l.zeros.Zero(k, ell)
			row := rows.RawRowView(k)
			for i, r := range disk.Radii {
				row[i] = bessel.J(ell, z*r)
			}
			floats.Scale(1/norms[k], row)
		}
		d.radial[ell] = rows
	}

	for b, blk := range l.blocks {
		table := make([]float64, len(disk.Angles))
		for i, theta := range disk.Angles {
			if blk.sign > 0 {
				table[i] = math.Cos(float64(blk.ell) * theta)
			} else {
				table[i] = math.Sin(float64(blk.ell) * theta)
			}
		}
		d.angular[b] = table
	}

	cfg.Logger.Info("Fourier-Bessel basis ready",
		"method", d.Method(),
		"resolution", resolution,
		"ell_max", d.EllMax(),
		"count", d.Count(),
		"disk_pixels", disk.Len(),
		"unique_radii", nr,
		"unique_angles", len(disk.Angles))

	return d, nil
}

// Method returns "direct".
func (d *Direct) Method() string { return "direct" }

// Config returns the settings the basis was built with.
func (d *Direct) Config() Config { return d.cfg }

// Disk returns the sampling geometry.
func (d *Direct) Disk() *geometry.Disk { return d.disk }

// Evaluate returns Σ v[i]·φ_i sampled on the pixel grid.
func (d *Direct) Evaluate(v []float64) ([]float64, error) {
	if err := d.checkCoefficients(v); err != nil {
		return nil, err
	}

	n := d.disk.Len()
	x := make([]float64, d.resolution*d.resolution)
	prof := make([]float64, len(d.disk.Radii))
	ang := make([]float64, n)
	vals := make([]float64, n)
	profVec := mat.NewVecDense(len(prof), prof)

	for b, blk := range d.blocks {
		km := d.kMax[blk.ell]
		profVec.MulVec(d.radial[blk.ell].T(), mat.NewVecDense(km, v[blk.start:blk.start+km]))

		d.gather(ang, vals, b, prof)
		vecmath.MulBlockInPlace(vals, ang)

		for i, pix := range d.disk.Pixels {
			x[pix] += vals[i]
		}
	}

	return x, nil
}

// EvaluateT returns the inner products of x with every basis function.
func (d *Direct) EvaluateT(x []float64) ([]float64, error) {
	if err := d.checkImage(x); err != nil {
		return nil, err
	}

	n := d.disk.Len()
	v := make([]float64, d.count)
	inside := make([]float64, n)
	ang := make([]float64, n)
	vals := make([]float64, n)
	prof := make([]float64, len(d.disk.Radii))
	profVec := mat.NewVecDense(len(prof), prof)

	for i, pix := range d.disk.Pixels {
		inside[i] = x[pix]
	}

	for b, blk := range d.blocks {
		for i, a := range d.disk.AngleIndex {
			ang[i] = d.angular[b][a]
		}
		vecmath.MulBlock(vals, inside, ang)

		clear(prof)
		for i, r := range d.disk.RadiusIndex {
			prof[r] += vals[i]
		}

		km := d.kMax[blk.ell]
		out := mat.NewVecDense(km, v[blk.start:blk.start+km])
		out.MulVec(d.radial[blk.ell], profVec)
	}

	return v, nil
}

// gather expands block b's angular table and the radial profile prof to
// per-pixel values.
func (d *Direct) gather(ang, vals []float64, b int, prof []float64) {
	table := d.angular[b]
	for i := range ang {
		ang[i] = table[d.disk.AngleIndex[i]]
		vals[i] = prof[d.disk.RadiusIndex[i]]
	}
}
