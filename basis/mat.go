package basis

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// MatEvaluate maps a Count()×Count() coefficient-space matrix V to the
// L²×L² image-space matrix B·V·Bᵀ, where B is the matrix of Evaluate.
// Covariance estimators use it to carry a coefficient covariance to pixels.
func MatEvaluate(b Basis, v mat.Matrix) (*mat.Dense, error) {
	r, c := v.Dims()
	if r != b.Count() || c != b.Count() {
		return nil, shapeError("coefficient matrix side", max(r, c), b.Count())
	}

	return conjugate(v, func(m mat.Matrix) (*mat.Dense, error) {
		return EvaluateBatch(context.Background(), b, m)
	})
}

// MatEvaluateT maps an L²×L² image-space matrix X to Bᵀ·X·B.
func MatEvaluateT(b Basis, x mat.Matrix) (*mat.Dense, error) {
	n := b.Resolution() * b.Resolution()

	r, c := x.Dims()
	if r != n || c != n {
		return nil, shapeError("image matrix side", max(r, c), n)
	}

	return conjugate(x, func(m mat.Matrix) (*mat.Dense, error) {
		return EvaluateTBatch(context.Background(), b, m)
	})
}

// conjugate returns A·M·Aᵀ given the column map apply(M) = A·M.
func conjugate(m mat.Matrix, apply func(mat.Matrix) (*mat.Dense, error)) (*mat.Dense, error) {
	am, err := apply(m)
	if err != nil {
		return nil, err
	}

	// A·(A·M)ᵀ = A·Mᵀ·Aᵀ, so transposing the result gives A·M·Aᵀ.
	amat, err := apply(am.T())
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.CloneFrom(amat.T())

	return &out, nil
}
