package accuracy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fb/basis"
)

func TestAdjointness(t *testing.T) {
	d, err := basis.NewDirect([]int{12, 12})
	require.NoError(t, err)
	f, err := basis.NewFast([]int{12, 12})
	require.NoError(t, err)

	for _, b := range []basis.Basis{d, f} {
		res, err := Adjointness(b, Config{Trials: 4, Seed: 1})
		require.NoError(t, err)
		require.Equal(t, 4, res.Trials)
		require.Len(t, res.Errors, 4)
		if res.Max > 1e-10 {
			t.Fatalf("%s: max adjointness error = %g", b.Method(), res.Max)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	d, err := basis.NewDirect([]int{16, 16})
	require.NoError(t, err)

	res, err := RoundTrip(d, Config{Seed: 2})
	require.NoError(t, err)
	require.Equal(t, defaultTrials, res.Trials)

	// The sampled basis is close to, but not exactly, orthonormal.
	if !(res.Mean > 0 && res.Mean < 0.5) {
		t.Fatalf("mean round-trip error = %g", res.Mean)
	}
}

func TestExpandRoundTrip(t *testing.T) {
	f, err := basis.NewFast([]int{8, 8})
	require.NoError(t, err)

	res, err := ExpandRoundTrip(f, Config{Trials: 3, Seed: 3})
	require.NoError(t, err)
	if res.Max > 1e-9 {
		t.Fatalf("max expand error = %g", res.Max)
	}
}

func TestExpandRoundTrip_PropagatesConvergenceError(t *testing.T) {
	d, err := basis.NewDirect([]int{8, 8})
	require.NoError(t, err)

	_, err = ExpandRoundTrip(d, Config{Trials: 1}, basis.WithMaxIter(1))
	require.ErrorIs(t, err, basis.ErrConvergence)
}

func TestSummarize(t *testing.T) {
	res, err := Summarize([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	if res.Mean != 2.5 || res.Median != 2.5 || res.Max != 4 {
		t.Fatalf("res = %+v", res)
	}
	if math.Abs(res.StdDev-math.Sqrt(1.25)) > 1e-15 {
		t.Fatalf("stddev = %v, want %v", res.StdDev, math.Sqrt(1.25))
	}

	if _, err := Summarize(nil); !errors.Is(err, ErrNoTrials) {
		t.Fatalf("err = %v, want ErrNoTrials", err)
	}
}
