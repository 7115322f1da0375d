// Package basis implements the steerable Fourier-Bessel basis for square
// images.
//
// A basis function is a Bessel radial profile J_ell(z_{k,ell}·r) times an
// angular profile cos(ell·θ) or sin(ell·θ), restricted to the disk inscribed
// in the L×L pixel grid. Only radial frequencies z_{k,ell} below the
// bandlimit L·π/2 are kept. Coefficients are laid out as the ell = 0 block
// followed, for each ell >= 1, by a cosine block and a sine block, each of
// KMax()[ell] entries.
//
// Two interchangeable implementations satisfy [Basis]:
//
//   - [NewDirect] samples the basis functions at every disk pixel and
//     contracts densely. Evaluate and EvaluateT are exact adjoints.
//   - [NewFast] defines the same Bessel profiles on the frequency disk of
//     radius 1/2 and works on a polar grid there: Gauss-Legendre quadrature
//     in radius, an FFT in angle, and a nonuniform FFT pair between the
//     polar grid and the pixels. Its cost grows far more slowly with
//     resolution; adjointness holds to the NUFFT accuracy. Coefficients
//     share the layout of the direct basis but not its values.
//
// [Expand] and [ExpandT] solve the normal equations by conjugate gradients
// when a least-squares fit is needed instead of the adjoint. Batch variants
// take gonum matrices with one sample per column.
//
// Bases are immutable after construction and safe for concurrent use.
package basis
