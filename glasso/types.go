package glasso

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Covariance and Solve.
var (
	// ErrNilMatrix - a required matrix argument was nil.
	ErrNilMatrix = errors.New("glasso: nil matrix")
	// ErrBadShape - the input has fewer than two variables or samples.
	ErrBadShape = errors.New("glasso: bad shape")
	// ErrNegativeLambda - the penalty λ must be ≥ 0.
	ErrNegativeLambda = errors.New("glasso: negative lambda")
	// ErrBadOptions - an option field is out of its valid range.
	ErrBadOptions = errors.New("glasso: bad options")
	// ErrNotPositiveDefinite - the working covariance lost positive
	// definiteness; the input matrix is likely indefinite or too
	// ill-conditioned for the given λ.
	ErrNotPositiveDefinite = errors.New("glasso: not positive definite")
)

// Default solver parameters.
const (
	// DefaultMaxIter caps the number of outer column sweeps.
	DefaultMaxIter = 100
	// DefaultTol is the relative threshold on the mean absolute change of
	// the working covariance between sweeps.
	DefaultTol = 1e-4
	// DefaultInnerMaxIter caps the coordinate-descent sweeps of each
	// per-column lasso subproblem.
	DefaultInnerMaxIter = 200
	// DefaultInnerTol stops the inner lasso when no coefficient moves by
	// more than this amount in a sweep.
	DefaultInnerTol = 1e-7
)

// Options tunes the block coordinate descent.
type Options struct {
	// MaxIter caps the outer sweeps over all columns. Must be ≥ 1.
	MaxIter int
	// Tol is the convergence threshold: the solver stops when the mean
	// absolute change of the working covariance over one sweep drops
	// below Tol times the mean absolute off-diagonal of S. Must be > 0.
	Tol float64
	// InnerMaxIter caps the coordinate-descent sweeps of each lasso
	// subproblem. Must be ≥ 1.
	InnerMaxIter int
	// InnerTol stops a lasso subproblem once the largest coefficient
	// update in a sweep falls below it. Must be > 0.
	InnerTol float64
}

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:      DefaultMaxIter,
		Tol:          DefaultTol,
		InnerMaxIter: DefaultInnerMaxIter,
		InnerTol:     DefaultInnerTol,
	}
}

func (o Options) validate() error {
	if o.MaxIter < 1 || o.InnerMaxIter < 1 {
		return ErrBadOptions
	}
	if o.Tol <= 0 || o.InnerTol <= 0 {
		return ErrBadOptions
	}
	return nil
}

// Edge is an undirected conditional dependency between two variables,
// with i < j.
type Edge struct {
	I, J   int
	Weight float64 // precision-matrix entry Θ[i,j]
}

// Result reports the estimate and solver diagnostics.
type Result struct {
	// Precision is the estimated sparse inverse covariance Θ.
	Precision *mat.SymDense
	// Covariance is the working covariance W ≈ Θ⁻¹ at the solution.
	Covariance *mat.SymDense
	// Iterations is the number of outer sweeps performed.
	Iterations int
	// Converged reports whether the change criterion was met before
	// MaxIter sweeps.
	Converged bool
}

// Graph returns the recovered edge set: every pair (i,j), i<j, whose
// precision entry is nonzero.
func (r *Result) Graph() []Edge {
	if r.Precision == nil {
		return nil
	}
	p := r.Precision.SymmetricDim()
	var edges []Edge
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			if w := r.Precision.At(i, j); w != 0 {
				edges = append(edges, Edge{I: i, J: j, Weight: w})
			}
		}
	}
	return edges
}
