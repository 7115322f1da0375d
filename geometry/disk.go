package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrResolution is returned for grids smaller than one pixel.
var ErrResolution = errors.New("geometry: resolution must be >= 1")

// uniqueTol is the relative distance under which two coordinates are merged.
const uniqueTol = 1e-12

// Disk lists the pixels of a square grid inside its inscribed disk.
type Disk struct {
	// Resolution is the side length L of the grid.
	Resolution int

	// Pixels holds the row-major index of each disk pixel.
	Pixels []int

	// RadiusIndex and AngleIndex map disk pixel p to Radii[RadiusIndex[p]]
	// and Angles[AngleIndex[p]].
	RadiusIndex []int
	AngleIndex  []int

	// Radii holds the unique normalized radii in [0, 1], ascending.
	Radii []float64

	// Angles holds the unique angles in (-π, π], ascending.
	Angles []float64
}

// Offset returns the grid coordinate of pixel index i along one axis.
func Offset(resolution, i int) int {
	return i - resolution/2
}

// NewDisk computes the disk geometry of an L×L grid.
func NewDisk(resolution int) (*Disk, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: %d", ErrResolution, resolution)
	}

	half := float64(resolution) / 2

	var (
		pixels []int
		radii  []float64
		angles []float64
	)

	for i := range resolution {
		x := float64(Offset(resolution, i)) / half
		for j := range resolution {
			y := float64(Offset(resolution, j)) / half

			r := math.Hypot(x, y)
			if r > 1 {
				continue
			}

			pixels = append(pixels, i*resolution+j)
			radii = append(radii, r)
			angles = append(angles, math.Atan2(y, x))
		}
	}

	d := &Disk{Resolution: resolution, Pixels: pixels}
	d.Radii, d.RadiusIndex = unique(radii)
	d.Angles, d.AngleIndex = unique(angles)

	return d, nil
}

// Len returns the number of disk pixels.
func (d *Disk) Len() int { return len(d.Pixels) }

// Mask returns a row-major boolean mask of the disk pixels.
func (d *Disk) Mask() []bool {
	mask := make([]bool, d.Resolution*d.Resolution)
	for _, p := range d.Pixels {
		mask[p] = true
	}
	return mask
}

// unique sorts values, merges entries closer than uniqueTol and returns the
// representatives together with the inverse index of every input value.
func unique(values []float64) ([]float64, []int) {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	var reps []float64
	inverse := make([]int, len(values))

	for _, idx := range order {
		v := values[idx]
		if n := len(reps); n > 0 && math.Abs(v-reps[n-1]) <= uniqueTol*math.Max(1, math.Abs(v)) {
			inverse[idx] = n - 1
			continue
		}

		reps = append(reps, v)
		inverse[idx] = len(reps) - 1
	}

	return reps, inverse
}
