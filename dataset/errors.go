package dataset

import "errors"

var (
	// ErrBadShape indicates a non-positive dimension request.
	ErrBadShape = errors.New("dataset: dimensions must be > 0")
	// ErrBadSparsity indicates a sparsity level outside [0, p].
	ErrBadSparsity = errors.New("dataset: sparsity must lie in [0, p]")
	// ErrNotPositiveDefinite indicates the requested precision matrix is not
	// positive definite (e.g., chain coupling too strong).
	ErrNotPositiveDefinite = errors.New("dataset: matrix is not positive definite")
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("dataset: nil matrix")
)
