package nufft

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrLength is returned for a bad resolution or buffer length.
	ErrLength = errors.New("nufft: invalid length")
	// ErrPoints is returned when point coordinates are inconsistent.
	ErrPoints = errors.New("nufft: invalid frequency points")
)

// Kind selects a transform implementation.
type Kind int

const (
	// Gaussian uses oversampled Gaussian gridding and an FFT.
	Gaussian Kind = iota
	// Direct evaluates the exponential sums directly.
	Direct
)

func (k Kind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name as returned by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian", "":
		return Gaussian, nil
	case "direct":
		return Direct, nil
	default:
		return 0, fmt.Errorf("nufft: unknown kind %q", s)
	}
}

// Plan transforms between a fixed image resolution and a fixed set of
// frequency points. Plans are safe for concurrent use.
type Plan interface {
	// Resolution returns the image side length L.
	Resolution() int
	// Len returns the number of frequency points.
	Len() int
	// Forward writes the transform of the L*L image src into dst.
	Forward(dst, src []complex128) error
	// Adjoint writes the adjoint transform of the point values src into
	// the L*L image dst.
	Adjoint(dst, src []complex128) error
}

// New returns a plan of the given kind for points (k1[p], k2[p]).
// The coordinate slices are copied.
func New(kind Kind, resolution int, k1, k2 []float64) (Plan, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: resolution %d", ErrLength, resolution)
	}

	if len(k1) != len(k2) {
		return nil, fmt.Errorf("%w: %d first and %d second coordinates", ErrPoints, len(k1), len(k2))
	}

	for p := range k1 {
		if math.IsNaN(k1[p]) || math.IsInf(k1[p], 0) || math.IsNaN(k2[p]) || math.IsInf(k2[p], 0) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrPoints, p)
		}
	}

	switch kind {
	case Gaussian:
		return newGaussian(resolution, k1, k2)
	case Direct:
		return newDirect(resolution, k1, k2), nil
	default:
		return nil, fmt.Errorf("nufft: unknown kind %v", kind)
	}
}

func checkBuffers(resolution, points int, img, pts []complex128) error {
	if len(img) != resolution*resolution {
		return fmt.Errorf("%w: image has %d values, want %d", ErrLength, len(img), resolution*resolution)
	}

	if len(pts) != points {
		return fmt.Errorf("%w: %d point values, want %d", ErrLength, len(pts), points)
	}

	return nil
}

// Real widens a real image to complex128 for use with a Plan.
func Real(dst []complex128, src []float64) []complex128 {
	if cap(dst) < len(src) {
		dst = make([]complex128, len(src))
	}
	dst = dst[:len(src)]

	for i, v := range src {
		dst[i] = complex(v, 0)
	}

	return dst
}
