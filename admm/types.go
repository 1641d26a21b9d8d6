package admm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilInput indicates a nil design matrix or observation vector.
	ErrNilInput = errors.New("admm: nil input")
	// ErrDimensionMismatch indicates len(y) differs from the row count of X.
	ErrDimensionMismatch = errors.New("admm: dimension mismatch")
	// ErrNegativeLambda indicates a negative regularization strength.
	ErrNegativeLambda = errors.New("admm: lambda must be non-negative")
	// ErrBadOptions indicates an out-of-range solver option.
	ErrBadOptions = errors.New("admm: invalid options")
	// ErrFactorization indicates the Cholesky factorization of XᵀX + ρI
	// failed (numerically not positive definite).
	ErrFactorization = errors.New("admm: factorization failed")
)

// Default solver parameters (Boyd et al. 2011 recommendations).
const (
	// DefaultRho is the augmented-Lagrangian penalty parameter.
	DefaultRho = 1.0
	// DefaultAlpha is the over-relaxation factor; 1.5 is a common sweet spot.
	DefaultAlpha = 1.5
	// DefaultMaxIter caps the iteration count.
	DefaultMaxIter = 1000
	// DefaultAbsTol is the absolute residual tolerance.
	DefaultAbsTol = 1e-6
	// DefaultRelTol is the relative residual tolerance.
	DefaultRelTol = 1e-4
)

// Options configures the ADMM iteration.
//
// Fields:
//   - Rho     — augmented-Lagrangian penalty, must be > 0.
//   - Alpha   — over-relaxation factor in [1, 2]; 1 disables relaxation.
//   - MaxIter — hard iteration cap, must be > 0.
//   - AbsTol  — absolute stopping tolerance, must be ≥ 0.
//   - RelTol  — relative stopping tolerance, must be ≥ 0.
type Options struct {
	Rho     float64
	Alpha   float64
	MaxIter int
	AbsTol  float64
	RelTol  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Rho:     DefaultRho,
		Alpha:   DefaultAlpha,
		MaxIter: DefaultMaxIter,
		AbsTol:  DefaultAbsTol,
		RelTol:  DefaultRelTol,
	}
}

// validate reports ErrBadOptions for out-of-range parameters.
func (o Options) validate() error {
	if o.Rho <= 0 || o.Alpha < 1 || o.Alpha > 2 || o.MaxIter <= 0 ||
		o.AbsTol < 0 || o.RelTol < 0 {
		return ErrBadOptions
	}
	return nil
}

// Result holds the outcome of an ADMM run.
type Result struct {
	// Beta is the sparse coefficient estimate (the z-iterate, which carries
	// exact zeros produced by soft-thresholding).
	Beta *mat.VecDense
	// Iterations is the number of iterations performed.
	Iterations int
	// Converged reports whether both residual criteria were met before
	// MaxIter. Hitting MaxIter is not an error.
	Converged bool
	// PrimalResidual is ‖x − z‖₂ at termination.
	PrimalResidual float64
	// DualResidual is ‖ρ(z − z_prev)‖₂ at termination.
	DualResidual float64
}
