// Package nufft evaluates type-2 and type-1 non-uniform discrete Fourier
// transforms between a square image and scattered frequency points.
//
// For an L×L image x stored row-major and points (k1, k2), the forward
// transform is
//
//	F(k) = Σ x[i*L+j] · exp(-i(k1·n1 + k2·n2)),  n1 = i - L/2, n2 = j - L/2
//
// with integer division in L/2, so k1 pairs with the row index. Adjoint
// sums c_p · exp(+i(k1·n1 + k2·n2)) back onto the pixel grid. Frequencies
// are in radians per pixel; the transform is 2π-periodic in each axis.
//
// Two plans are provided. Gaussian grids the points onto a twice
// oversampled periodic grid with a truncated Gaussian kernel, runs one
// 2D FFT, and deconvolves; it is accurate to roughly 1e-10 relative.
// Direct evaluates the sums literally and serves as reference.
package nufft
