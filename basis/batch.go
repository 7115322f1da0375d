package basis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// EvaluateBatch evaluates every column of v, a Count()×n matrix, and
// returns the L²×n matrix of images.
func EvaluateBatch(ctx context.Context, b Basis, v mat.Matrix) (*mat.Dense, error) {
	rows, _ := v.Dims()
	if rows != b.Count() {
		return nil, shapeError("coefficient batch rows", rows, b.Count())
	}

	return mapColumns(ctx, v, b.Resolution()*b.Resolution(), workersOf(b), func(_ int, col []float64) ([]float64, error) {
		return b.Evaluate(col)
	})
}

// EvaluateTBatch applies EvaluateT to every column of x, an L²×n matrix.
func EvaluateTBatch(ctx context.Context, b Basis, x mat.Matrix) (*mat.Dense, error) {
	rows, _ := x.Dims()
	if n := b.Resolution() * b.Resolution(); rows != n {
		return nil, shapeError("image batch rows", rows, n)
	}

	return mapColumns(ctx, x, b.Count(), workersOf(b), func(_ int, col []float64) ([]float64, error) {
		return b.EvaluateT(col)
	})
}

// ExpandBatch runs Expand on every column of x independently. The first
// sample that fails to converge aborts the batch.
func ExpandBatch(ctx context.Context, b Basis, x mat.Matrix, opts ...SolverOption) (*mat.Dense, error) {
	rows, _ := x.Dims()
	if n := b.Resolution() * b.Resolution(); rows != n {
		return nil, shapeError("image batch rows", rows, n)
	}

	cfg := ApplySolverOptions(opts...)

	return mapColumns(ctx, x, b.Count(), solverWorkers(b, cfg), func(j int, col []float64) ([]float64, error) {
		return expand(b, col, j, cfg)
	})
}

// ExpandTBatch runs ExpandT on every column of v independently.
func ExpandTBatch(ctx context.Context, b Basis, v mat.Matrix, opts ...SolverOption) (*mat.Dense, error) {
	rows, _ := v.Dims()
	if rows != b.Count() {
		return nil, shapeError("coefficient batch rows", rows, b.Count())
	}

	cfg := ApplySolverOptions(opts...)

	return mapColumns(ctx, v, b.Resolution()*b.Resolution(), solverWorkers(b, cfg), func(j int, col []float64) ([]float64, error) {
		return expandT(b, col, j, cfg)
	})
}

// mapColumns applies fn to each column of in and stacks the outputs, each
// of length outRows, as the columns of the result.
func mapColumns(ctx context.Context, in mat.Matrix, outRows, workers int, fn func(int, []float64) ([]float64, error)) (*mat.Dense, error) {
	_, cols := in.Dims()
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrShape)
	}

	out := mat.NewDense(outRows, cols, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for j := range cols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			col := mat.Col(nil, j, in)
			res, err := fn(j, col)
			if err != nil {
				return err
			}

			// Columns are disjoint.
			out.SetCol(j, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func workersOf(b Basis) int {
	if c, ok := b.(interface{ Config() Config }); ok {
		return c.Config().Workers
	}
	return 1
}

func solverWorkers(b Basis, cfg SolverConfig) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return workersOf(b)
}
