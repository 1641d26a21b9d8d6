package admm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve — LASSO via ADMM.
//
// Algorithm Outline:
//  1. Precompute q = Xᵀy and the Cholesky factorization of A = XᵀX + ρI.
//  2. Repeat until converged or MaxIter:
//     x ← A⁻¹ (q + ρ(z − u))                        (ridge solve)
//     x̂ ← α·x + (1−α)·z                              (over-relaxation)
//     z ← soft(x̂ + u, λ/ρ)                           (proximal step)
//     u ← u + x̂ − z                                  (dual ascent)
//  3. Stop when ‖x−z‖ ≤ ε_pri and ‖ρ(z−z_prev)‖ ≤ ε_dual with
//     ε_pri  = √p·AbsTol + RelTol·max(‖x‖, ‖z‖)
//     ε_dual = √p·AbsTol + RelTol·‖ρu‖
//
// The returned Beta is the z-iterate: soft-thresholding gives it exact
// zeros, which is what makes the estimate sparse.
//
// Errors:
//   - ErrNilInput          — x or y is nil.
//   - ErrDimensionMismatch — y length differs from rows of x.
//   - ErrNegativeLambda    — lambda < 0.
//   - ErrBadOptions        — out-of-range Options field.
//   - ErrFactorization     — Cholesky of XᵀX + ρI failed.
//
// Complexity: O(p³) factorization, O(p² + n·p) per iteration.
func Solve(x *mat.Dense, y *mat.VecDense, lambda float64, opts Options) (*Result, error) {
	if x == nil || y == nil {
		return nil, ErrNilInput
	}
	n, p := x.Dims()
	if y.Len() != n {
		return nil, ErrDimensionMismatch
	}
	if lambda < 0 || math.IsNaN(lambda) {
		return nil, ErrNegativeLambda
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// q = Xᵀy
	q := mat.NewVecDense(p, nil)
	q.MulVec(x.T(), y)

	// A = XᵀX + ρI, factorized once
	var gram mat.Dense
	gram.Mul(x.T(), x)
	a := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			v := gram.At(i, j)
			if i == j {
				v += opts.Rho
			}
			a.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, ErrFactorization
	}

	var (
		xk    = mat.NewVecDense(p, nil) // primal iterate
		z     = mat.NewVecDense(p, nil) // auxiliary (sparse) iterate
		zPrev = mat.NewVecDense(p, nil)
		u     = mat.NewVecDense(p, nil) // scaled dual
		rhs   = mat.NewVecDense(p, nil)
		xHat  = mat.NewVecDense(p, nil)
		diff  = mat.NewVecDense(p, nil)
	)
	kappa := lambda / opts.Rho
	sqrtP := math.Sqrt(float64(p))

	res := &Result{}
	for k := 0; k < opts.MaxIter; k++ {
		res.Iterations = k + 1

		// x-update: solve A x = q + ρ(z − u)
		for i := 0; i < p; i++ {
			rhs.SetVec(i, q.AtVec(i)+opts.Rho*(z.AtVec(i)-u.AtVec(i)))
		}
		if err := chol.SolveVecTo(xk, rhs); err != nil {
			return nil, ErrFactorization
		}

		// over-relaxation
		for i := 0; i < p; i++ {
			xHat.SetVec(i, opts.Alpha*xk.AtVec(i)+(1-opts.Alpha)*z.AtVec(i))
		}

		// z-update: soft-threshold
		zPrev.CopyVec(z)
		for i := 0; i < p; i++ {
			z.SetVec(i, shrink(xHat.AtVec(i)+u.AtVec(i), kappa))
		}

		// dual update
		for i := 0; i < p; i++ {
			u.SetVec(i, u.AtVec(i)+xHat.AtVec(i)-z.AtVec(i))
		}

		// residuals and stopping test
		diff.SubVec(xk, z)
		res.PrimalResidual = mat.Norm(diff, 2)
		diff.SubVec(z, zPrev)
		res.DualResidual = opts.Rho * mat.Norm(diff, 2)

		epsPri := sqrtP*opts.AbsTol + opts.RelTol*math.Max(mat.Norm(xk, 2), mat.Norm(z, 2))
		epsDual := sqrtP*opts.AbsTol + opts.RelTol*opts.Rho*mat.Norm(u, 2)
		if res.PrimalResidual <= epsPri && res.DualResidual <= epsDual {
			res.Converged = true
			break
		}
	}

	beta := mat.NewVecDense(p, nil)
	beta.CopyVec(z)
	res.Beta = beta
	return res, nil
}

// shrink is the scalar soft-thresholding operator
// soft(v, κ) = sign(v)·max(|v|−κ, 0).
func shrink(v, kappa float64) float64 {
	switch {
	case v > kappa:
		return v - kappa
	case v < -kappa:
		return v + kappa
	default:
		return 0
	}
}
