package cg

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilInput indicates a nil coefficient matrix or right-hand side.
	ErrNilInput = errors.New("cg: nil input")
	// ErrNonSquare indicates a non-square coefficient matrix.
	ErrNonSquare = errors.New("cg: matrix is not square")
	// ErrAsymmetric indicates the matrix violates symmetry beyond SymEps.
	ErrAsymmetric = errors.New("cg: matrix is not symmetric within eps")
	// ErrDimensionMismatch indicates len(b) differs from the matrix order.
	ErrDimensionMismatch = errors.New("cg: dimension mismatch")
	// ErrNotPositiveDefinite indicates non-positive curvature pᵀA·p was
	// encountered, so A cannot be positive definite.
	ErrNotPositiveDefinite = errors.New("cg: matrix is not positive definite")
	// ErrZeroDiagonal indicates Jacobi preconditioning was requested but the
	// matrix carries a zero diagonal entry.
	ErrZeroDiagonal = errors.New("cg: zero diagonal entry, cannot precondition")
	// ErrBadOptions indicates an out-of-range solver option.
	ErrBadOptions = errors.New("cg: invalid options")
)

const (
	// DefaultTol is the relative residual tolerance.
	DefaultTol = 1e-8
	// SymEps is the absolute tolerance of the symmetry check.
	SymEps = 1e-10
)

// Options configures the CG iteration.
//
// Fields:
//   - MaxIter — hard iteration cap; 0 means the matrix order n (the exact-
//     arithmetic termination bound). Negative values are rejected.
//   - Tol     — relative residual tolerance, must be > 0.
//   - Jacobi  — enable diagonal (Jacobi) preconditioning.
type Options struct {
	MaxIter int
	Tol     float64
	Jacobi  bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxIter: 0, Tol: DefaultTol, Jacobi: false}
}

func (o Options) validate() error {
	if o.MaxIter < 0 || o.Tol <= 0 {
		return ErrBadOptions
	}
	return nil
}

// Result holds the outcome of a CG run.
type Result struct {
	// X is the approximate solution.
	X *mat.VecDense
	// Iterations is the number of iterations performed.
	Iterations int
	// Converged reports whether the residual criterion was met before the
	// iteration cap. Hitting the cap is not an error.
	Converged bool
	// Residual is the final relative residual ‖b − A·x‖/‖b‖.
	Residual float64
	// History holds the relative residual after every iteration, History[0]
	// being the value after the first step. Useful for convergence plots.
	History []float64
}
