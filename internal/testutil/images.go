package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise generates complex white noise with independent
// real and imaginary parts in [-amplitude, amplitude].
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	parts := DeterministicNoise(seed, amplitude, 2*length)
	out := make([]complex128, length)
	for i := range out {
		out[i] = complex(parts[2*i], parts[2*i+1])
	}
	return out
}

// PlaneWave returns the resolution×resolution image cos(k1·n1 + k2·n2),
// with n1, n2 the row and column offsets from the center pixel.
func PlaneWave(resolution int, k1, k2 float64) []float64 {
	out := make([]float64, resolution*resolution)
	h := resolution / 2
	for i := range resolution {
		for j := range resolution {
			out[i*resolution+j] = math.Cos(k1*float64(i-h) + k2*float64(j-h))
		}
	}
	return out
}

// GaussianBlob returns a centered isotropic Gaussian with the given width
// in pixels.
func GaussianBlob(resolution int, sigma float64) []float64 {
	out := make([]float64, resolution*resolution)
	h := resolution / 2
	for i := range resolution {
		for j := range resolution {
			d1, d2 := float64(i-h), float64(j-h)
			out[i*resolution+j] = math.Exp(-(d1*d1 + d2*d2) / (2 * sigma * sigma))
		}
	}
	return out
}

// Pixel returns an image with a single unit pixel at (row, col).
func Pixel(resolution, row, col int) []float64 {
	out := make([]float64, resolution*resolution)
	if row >= 0 && row < resolution && col >= 0 && col < resolution {
		out[row*resolution+col] = 1
	}
	return out
}

// Alternating returns v[k] = (-1)^k / (k+1).
func Alternating(length int) []float64 {
	out := make([]float64, length)
	for k := range out {
		out[k] = 1 / float64(k+1)
		if k%2 == 1 {
			out[k] = -out[k]
		}
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
