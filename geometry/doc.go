// Package geometry derives the sample sets used to precompute Fourier-Bessel
// basis functions on a square L×L pixel grid.
//
// Two geometries are provided:
//
//   - [Disk]: the pixels inside the inscribed disk of radius L/2, reduced to
//     the unique radii and angles they occupy, with index maps from each disk
//     pixel back to its radius and angle. Basis functions are separable in
//     polar coordinates, so radial and angular profiles only need to be
//     evaluated once per unique coordinate.
//   - [Polar]: a polar grid in the Fourier domain with Gauss-Legendre radial
//     nodes on [0, KCut] and equispaced angles on the half-turn [0, π). The
//     other half-turn of a real image's transform follows from Hermitian
//     symmetry and is never sampled.
//
// # Conventions
//
// Images are stored row-major with the first index i along the first axis.
// Pixel (i, j) sits at grid coordinate (i - L/2, j - L/2) using integer
// division, which centers even grids on pixel (L/2, L/2) and odd grids on
// the middle pixel. Normalized radius is |n|/(L/2) and the angle is
// atan2(n2, n1).
package geometry
