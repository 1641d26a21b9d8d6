package qr

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("qr: nil input")
	// ErrUnderdetermined indicates m < n; least squares via QR requires at
	// least as many rows as columns.
	ErrUnderdetermined = errors.New("qr: fewer rows than columns")
	// ErrDimensionMismatch indicates a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("qr: dimension mismatch")
	// ErrSingular indicates a (numerically) rank-deficient R factor.
	ErrSingular = errors.New("qr: matrix is rank deficient")
)

// singularTol is the relative tolerance under which a diagonal entry of R is
// treated as zero during back substitution.
const singularTol = 1e-13

// Factorization holds the result of Decompose: X = Qᵀ_acc · R where Q_acc is
// the accumulated product of Householder reflections. Obtain the factors via
// Q, QFull and R; solve least-squares problems via Solve.
type Factorization struct {
	m, n int
	// r is m×n with the triangular factor in its top n rows.
	r *mat.Dense
	// qt is the m×m accumulated reflection product, qt = H_{n-1}···H_0,
	// so that X = qtᵀ·r.
	qt *mat.Dense
}

// Fit is the outcome of Regression.
type Fit struct {
	// Beta holds the coefficient estimates. When the fit includes an
	// intercept it occupies Beta[0] and the feature coefficients follow.
	Beta *mat.VecDense
	// Fitted holds X·Beta (including the intercept column when present).
	Fitted *mat.VecDense
	// Residuals holds y − Fitted.
	Residuals *mat.VecDense
	// RSS is the residual sum of squares.
	RSS float64
	// R2 is the coefficient of determination, computed against the mean of y
	// when an intercept is fitted and against zero otherwise. A constant
	// response (zero total variation) yields R2 = 0.
	R2 float64
}
