package ekf

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilModel indicates a nil model was passed to New.
	ErrNilModel = errors.New("ekf: nil model")
	// ErrNilInput indicates a nil state, covariance or measurement argument.
	ErrNilInput = errors.New("ekf: nil input")
	// ErrDimensionMismatch indicates a vector or matrix whose size disagrees
	// with the model's declared dimensions.
	ErrDimensionMismatch = errors.New("ekf: dimension mismatch")
	// ErrSingularInnovation indicates the innovation covariance
	// S = H·P·Hᵀ + R could not be factorized.
	ErrSingularInnovation = errors.New("ekf: singular innovation covariance")
	// ErrBadModel indicates invalid model parameters (constructor misuse).
	ErrBadModel = errors.New("ekf: invalid model parameters")
)

// Model describes a nonlinear state-space system
//
//	x_{k+1} = f(x_k, u_k) + w,   w ~ N(0, Q)
//	z_k     = h(x_k)      + v,   v ~ N(0, R)
//
// Implementations must be pure: calls must not retain or mutate their
// arguments. Jacobians are evaluated at the supplied point.
type Model interface {
	// Dims returns the state and measurement dimensions (nx, nz).
	Dims() (nx, nz int)
	// Transition returns f(x, u). u may be nil for autonomous models.
	Transition(x, u *mat.VecDense) *mat.VecDense
	// TransitionJacobian returns ∂f/∂x evaluated at (x, u), sized nx×nx.
	TransitionJacobian(x, u *mat.VecDense) *mat.Dense
	// Measurement returns h(x), sized nz.
	Measurement(x *mat.VecDense) *mat.VecDense
	// MeasurementJacobian returns ∂h/∂x evaluated at x, sized nz×nx.
	MeasurementJacobian(x *mat.VecDense) *mat.Dense
	// ProcessNoise returns Q, sized nx×nx.
	ProcessNoise() mat.Symmetric
	// MeasurementNoise returns R, sized nz×nz.
	MeasurementNoise() mat.Symmetric
}

// InnovationNormalizer is an optional Model extension for measurement spaces
// with wrap-around coordinates. When implemented, the filter passes the raw
// innovation y = z − h(x) through NormalizeInnovation before the update so
// that, e.g., bearings near ±π do not produce spurious 2π jumps.
type InnovationNormalizer interface {
	NormalizeInnovation(y *mat.VecDense)
}
