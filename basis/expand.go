package basis

import (
	"errors"
	"log/slog"

	"github.com/cwbudde/algo-fb/internal/cg"
)

// Expand returns the least-squares coefficients of image x, the v that
// minimizes ‖Evaluate(v) - x‖, by conjugate gradients on EvaluateT∘Evaluate.
// It fails with a *ConvergenceError when the iteration cap is reached.
func Expand(b Basis, x []float64, opts ...SolverOption) ([]float64, error) {
	return expand(b, x, 0, ApplySolverOptions(opts...))
}

// ExpandT is the dual of Expand. With B the matrix of Evaluate it returns
// the minimum-norm image y = B·(BᵀB)⁻¹·v, so that EvaluateT(y) = v.
func ExpandT(b Basis, v []float64, opts ...SolverOption) ([]float64, error) {
	return expandT(b, v, 0, ApplySolverOptions(opts...))
}

func expand(b Basis, x []float64, sample int, cfg SolverConfig) ([]float64, error) {
	rhs, err := b.EvaluateT(x)
	if err != nil {
		return nil, err
	}

	return solve(b, sample, cfg, rhs, gramOperator(b))
}

func expandT(b Basis, v []float64, sample int, cfg SolverConfig) ([]float64, error) {
	if err := checkCount(b, v); err != nil {
		return nil, err
	}

	// y = B·(BᵀB)⁻¹·v; the Count×Count system is definite where B·Bᵀ is not.
	u, err := solve(b, sample, cfg, v, gramOperator(b))
	if err != nil {
		return nil, err
	}

	return b.Evaluate(u)
}

// gramOperator returns v ↦ EvaluateT(Evaluate(v)).
func gramOperator(b Basis) func([]float64) ([]float64, error) {
	return func(v []float64) ([]float64, error) {
		img, err := b.Evaluate(v)
		if err != nil {
			return nil, err
		}
		return b.EvaluateT(img)
	}
}

func checkCount(b Basis, v []float64) error {
	if len(v) != b.Count() {
		return shapeError("coefficient vector", len(v), b.Count())
	}
	return nil
}

// solve runs conjugate gradients on the normal operator normal.
func solve(b Basis, sample int, cfg SolverConfig, rhs []float64, normal func([]float64) ([]float64, error)) ([]float64, error) {
	logger := solverLogger(b, cfg)

	var opErr error
	op := func(dst, x []float64) {
		if opErr != nil {
			clear(dst)
			return
		}
		y, err := normal(x)
		if err != nil {
			opErr = err
			clear(dst)
			return
		}
		copy(dst, y)
	}

	res, err := cg.Solve(op, rhs, nil, cg.Settings{Tol: cfg.Tol, MaxIter: cfg.MaxIter, Logger: logger})
	if opErr != nil {
		return nil, opErr
	}

	if err != nil {
		if errors.Is(err, cg.ErrNotConverged) || errors.Is(err, cg.ErrBreakdown) {
			logger.Warn("least-squares solve did not converge",
				"method", b.Method(), "sample", sample, "iterations", res.Iterations, "residual", res.Residual)
			return nil, &ConvergenceError{Sample: sample, Iterations: res.Iterations, Residual: res.Residual, Err: err}
		}
		return nil, err
	}

	logger.Debug("least-squares solve converged",
		"method", b.Method(), "sample", sample, "iterations", res.Iterations, "residual", res.Residual)

	return res.X, nil
}

func solverLogger(b Basis, cfg SolverConfig) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	if c, ok := b.(interface{ Config() Config }); ok && c.Config().Logger != nil {
		return c.Config().Logger
	}
	return discardLogger()
}
