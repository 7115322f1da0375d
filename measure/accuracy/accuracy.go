package accuracy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fb/basis"
)

const defaultTrials = 8

// ErrNoTrials is returned when a report has nothing to summarize.
var ErrNoTrials = errors.New("accuracy: no trials")

// Config holds the trial settings of a report.
type Config struct {
	// Trials is the number of random samples; zero selects 8.
	Trials int
	// Seed makes the samples reproducible.
	Seed int64
}

// Result summarizes the relative error over all trials.
type Result struct {
	Trials int
	Mean   float64
	Median float64
	Max    float64
	StdDev float64
	// Errors holds the per-trial values in trial order.
	Errors []float64
}

// Adjointness reports |⟨y, Bv⟩ - ⟨Bᵀy, v⟩| / (‖y‖·‖Bv‖) for random
// coefficient vectors v and images y.
func Adjointness(b basis.Basis, cfg Config) (Result, error) {
	rng := newRand(cfg)

	return run(cfg, func() (float64, error) {
		v := gaussian(rng, b.Count())
		y := gaussian(rng, b.Resolution()*b.Resolution())

		bv, err := b.Evaluate(v)
		if err != nil {
			return 0, err
		}

		bty, err := b.EvaluateT(y)
		if err != nil {
			return 0, err
		}

		scale := floats.Norm(y, 2) * floats.Norm(bv, 2)
		if scale == 0 {
			return 0, nil
		}

		return math.Abs(floats.Dot(y, bv)-floats.Dot(bty, v)) / scale, nil
	})
}

// RoundTrip reports ‖EvaluateT(Evaluate(v)) - v‖ / ‖v‖, the distance of the
// basis from orthonormality.
func RoundTrip(b basis.Basis, cfg Config) (Result, error) {
	rng := newRand(cfg)

	return run(cfg, func() (float64, error) {
		v := gaussian(rng, b.Count())

		img, err := b.Evaluate(v)
		if err != nil {
			return 0, err
		}

		back, err := b.EvaluateT(img)
		if err != nil {
			return 0, err
		}

		return relative(back, v), nil
	})
}

// ExpandRoundTrip reports ‖Expand(Evaluate(v)) - v‖ / ‖v‖.
func ExpandRoundTrip(b basis.Basis, cfg Config, opts ...basis.SolverOption) (Result, error) {
	rng := newRand(cfg)

	return run(cfg, func() (float64, error) {
		v := gaussian(rng, b.Count())

		img, err := b.Evaluate(v)
		if err != nil {
			return 0, err
		}

		back, err := basis.Expand(b, img, opts...)
		if err != nil {
			return 0, err
		}

		return relative(back, v), nil
	})
}

func run(cfg Config, trial func() (float64, error)) (Result, error) {
	n := cfg.Trials
	if n <= 0 {
		n = defaultTrials
	}

	errs := make([]float64, n)
	for i := range errs {
		e, err := trial()
		if err != nil {
			return Result{}, fmt.Errorf("accuracy: trial %d: %w", i, err)
		}
		errs[i] = e
	}

	return Summarize(errs)
}

// Summarize computes the statistics of a set of error values.
func Summarize(errs []float64) (Result, error) {
	if len(errs) == 0 {
		return Result{}, ErrNoTrials
	}

	data := stats.Float64Data(errs)

	mean, err := data.Mean()
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: %w", err)
	}

	median, err := data.Median()
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: %w", err)
	}

	maxErr, err := data.Max()
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: %w", err)
	}

	sd, err := data.StandardDeviation()
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: %w", err)
	}

	return Result{
		Trials: len(errs),
		Mean:   mean,
		Median: median,
		Max:    maxErr,
		StdDev: sd,
		Errors: append([]float64(nil), errs...),
	}, nil
}

func newRand(cfg Config) *rand.Rand {
	return rand.New(rand.NewSource(cfg.Seed))
}

func gaussian(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

func relative(got, want []float64) float64 {
	den := floats.Norm(want, 2)
	if den == 0 {
		return floats.Norm(got, 2)
	}
	return floats.Distance(got, want, 2) / den
}
