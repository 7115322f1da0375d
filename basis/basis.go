package basis

// Basis maps coefficient vectors to L×L images and back.
//
// Images are row-major []float64 of length L*L; pixels outside the disk
// inscribed in the grid are ignored by EvaluateT and left zero by Evaluate.
type Basis interface {
	// Method names the implementation ("direct" or "fast").
	Method() string
	Resolution() int
	Count() int
	EllMax() int
	// KMax returns the number of radial indices per angular frequency.
	KMax() []int
	Indices() Indices
	// Norms returns one normalization constant per (ell, k), ell-major.
	Norms() []float64
	// Evaluate synthesizes the image of coefficient vector v.
	Evaluate(v []float64) ([]float64, error)
	// EvaluateT applies the adjoint of Evaluate to image x.
	EvaluateT(x []float64) ([]float64, error)
}

var (
	_ Basis = (*Direct)(nil)
	_ Basis = (*Fast)(nil)
)
