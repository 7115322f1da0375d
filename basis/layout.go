package basis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fb/internal/bessel"
)

// Indices tags every coefficient with its angular frequency, radial index
// and sign (+1 cosine, -1 sine; ell = 0 is always +1).
type Indices struct {
	Ell  []int
	K    []int
	Sign []int
}

// block is one contiguous run of coefficients sharing (ell, sign).
type block struct {
	ell   int
	sign  int
	start int
}

// layout is the construction state shared by every basis kind: the zero
// table, the coefficient map and the normalization constants.
type layout struct {
	resolution int
	zeros      *bessel.Table
	kMax       []int
	count      int
	blocks     []block
	// radialStart[ell] is the offset of ell in norms.
	radialStart []int
	norms       []float64
}

func validateSize(size []int) (int, error) {
	if len(size) != 2 {
		return 0, fmt.Errorf("%w: only two-dimensional domains are supported, got %d dimensions", ErrConfig, len(size))
	}

	if size[0] != size[1] {
		return 0, fmt.Errorf("%w: only square domains are supported, got %dx%d", ErrConfig, size[0], size[1])
	}

	if size[0] < 1 {
		return 0, fmt.Errorf("%w: resolution must be >= 1, got %d", ErrConfig, size[0])
	}

	return size[0], nil
}

func validateConfig(cfg Config) error {
	if cfg.Precision != Float64 {
		return fmt.Errorf("%w: unsupported precision %v", ErrConfig, cfg.Precision)
	}

	if cfg.LimitEllMax && cfg.EllMax < 0 {
		return fmt.Errorf("%w: ell_max %d leaves no angular frequencies", ErrConfig, cfg.EllMax)
	}

	return nil
}

func newLayout(resolution int, cfg Config) (*layout, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	orders := 2*resolution + 1
	if cfg.LimitEllMax {
		orders = min(orders, cfg.EllMax+1)
	}

	zeros, err := bessel.NewTable(float64(resolution)*math.Pi/2, orders)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	l := &layout{
		resolution:  resolution,
		zeros:       zeros,
		kMax:        zeros.KMax(),
		radialStart: make([]int, zeros.EllMax()+1),
	}

	for ell, km := range l.kMax {
		l.radialStart[ell] = len(l.norms)
		for k := range km {
			l.norms = append(l.norms, normalization(resolution, ell, zeros.Zero(k, ell)))
		}

		signs := []int{1, -1}
		if ell == 0 {
			signs = signs[:1]
		}

		for _, sign := range signs {
			l.blocks = append(l.blocks, block{ell: ell, sign: sign, start: l.count})
			l.count += km
		}
	}

	return l, nil
}

// normalization makes the sampled basis function of order ell with zero z
// approximately unit norm on an L×L grid.
func normalization(resolution, ell int, z float64) float64 {
	n := math.Abs(bessel.J(ell+1, z)) * math.Sqrt(math.Pi/2) * float64(resolution) / 2
	if ell == 0 {
		n *= math.Sqrt2
	}
	return n
}

func (l *layout) Resolution() int { return l.resolution }

func (l *layout) Count() int { return l.count }

func (l *layout) EllMax() int { return len(l.kMax) - 1 }

func (l *layout) KMax() []int {
	out := make([]int, len(l.kMax))
	copy(out, l.kMax)
	return out
}

// Zeros returns the valid Bessel zeros of order ell.
func (l *layout) Zeros(ell int) []float64 { return l.zeros.Column(ell) }

func (l *layout) Indices() Indices {
	idx := Indices{
		Ell:  make([]int, l.count),
		K:    make([]int, l.count),
		Sign: make([]int, l.count),
	}

	for _, b := range l.blocks {
		for k := range l.kMax[b.ell] {
			idx.Ell[b.start+k] = b.ell
			idx.K[b.start+k] = k
			idx.Sign[b.start+k] = b.sign
		}
	}

	return idx
}

func (l *layout) Norms() []float64 {
	out := make([]float64, len(l.norms))
	copy(out, l.norms)
	return out
}

// blockNorms returns the normalization constants of order ell.
func (l *layout) blockNorms(ell int) []float64 {
	return l.norms[l.radialStart[ell] : l.radialStart[ell]+l.kMax[ell]]
}

func (l *layout) checkCoefficients(v []float64) error {
	if len(v) != l.count {
		return shapeError("coefficient vector", len(v), l.count)
	}
	return nil
}

func (l *layout) checkImage(x []float64) error {
	if n := l.resolution * l.resolution; len(x) != n {
		return shapeError("image", len(x), n)
	}
	return nil
}

// blockStart returns the first coefficient index of (ell, sign).
func (l *layout) blockStart(ell, sign int) int {
	if ell == 0 {
		return 0
	}
	if sign > 0 {
		return l.blocks[2*ell-1].start
	}
	return l.blocks[2*ell].start
}
