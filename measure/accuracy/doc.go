// Package accuracy measures how well a Fourier-Bessel basis behaves
// numerically: how close Evaluate and EvaluateT are to exact adjoints, how
// far EvaluateT∘Evaluate is from the identity, and how precisely Expand
// inverts Evaluate. Each report runs a number of seeded random trials and
// summarizes the per-trial relative errors.
package accuracy
