// Package fftplan adapts complex FFT backends behind one plan type.
//
// Power-of-two lengths run on algo-fft; other lengths fall back to the
// FFTPACK port in gonum. Forward transforms are unnormalized with kernel
// exp(-2πi·jk/n); inverse transforms use exp(+2πi·jk/n) and scale by 1/n.
package fftplan

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrLength is returned for non-positive lengths or mismatched buffers.
var ErrLength = errors.New("fftplan: invalid length")

// Plan transforms complex sequences of a fixed length. Plans hold scratch
// memory and must not be used from several goroutines at once.
type Plan interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// New returns a plan for length n.
func New(n int) (Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}

	if isPowerOf2(n) {
		p, err := algofft.NewPlan64(n)
		if err == nil {
			return &algoPlan{n: n, plan: p}, nil
		}
	}

	return &gonumPlan{n: n, fft: fourier.NewCmplxFFT(n), tmp: make([]complex128, n)}, nil
}

type algoPlan struct {
	n    int
	plan *algofft.Plan[complex128]
}

func (p *algoPlan) Len() int { return p.n }

func (p *algoPlan) Forward(dst, src []complex128) error {
	if err := checkLen(p.n, dst, src); err != nil {
		return err
	}

	if err := p.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fftplan: forward FFT failed: %w", err)
	}

	return nil
}

func (p *algoPlan) Inverse(dst, src []complex128) error {
	if err := checkLen(p.n, dst, src); err != nil {
		return err
	}

	if err := p.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fftplan: inverse FFT failed: %w", err)
	}

	return nil
}

type gonumPlan struct {
	n   int
	fft *fourier.CmplxFFT
	tmp []complex128
}

func (p *gonumPlan) Len() int { return p.n }

func (p *gonumPlan) Forward(dst, src []complex128) error {
	if err := checkLen(p.n, dst, src); err != nil {
		return err
	}

	copy(p.tmp, src)
	p.fft.Coefficients(dst, p.tmp)

	return nil
}

func (p *gonumPlan) Inverse(dst, src []complex128) error {
	if err := checkLen(p.n, dst, src); err != nil {
		return err
	}

	copy(p.tmp, src)
	p.fft.Sequence(dst, p.tmp)

	scale := complex(1/float64(p.n), 0)
	for i := range dst {
		dst[i] *= scale
	}

	return nil
}

// Pool hands out plans of one length to concurrent callers.
type Pool struct {
	n    int
	pool sync.Pool
}

// NewPool validates n by building one plan and returns a pool of plans of
// that length.
func NewPool(n int) (*Pool, error) {
	first, err := New(n)
	if err != nil {
		return nil, err
	}

	p := &Pool{n: n}
	p.pool.New = func() any {
		plan, _ := New(n)
		return plan
	}
	p.pool.Put(first)

	return p, nil
}

// Len returns the transform length of pooled plans.
func (p *Pool) Len() int { return p.n }

// Get returns a plan for exclusive use until it is handed back with Put.
func (p *Pool) Get() Plan { return p.pool.Get().(Plan) }

// Put returns a plan obtained from Get.
func (p *Pool) Put(plan Plan) { p.pool.Put(plan) }

func checkLen(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, plan=%d", ErrLength, len(dst), len(src), n)
	}
	return nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
