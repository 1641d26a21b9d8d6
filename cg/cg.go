package cg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve — (preconditioned) Conjugate Gradient for SPD systems.
//
// Algorithm Outline (Hestenes–Stiefel, preconditioned form):
//  1. r ← b − A·x₀ (x₀ = 0), z ← M⁻¹r, p ← z, ρ ← rᵀz.
//  2. Repeat until ‖r‖ ≤ Tol·‖b‖ or the iteration cap:
//     w ← A·p
//     γ ← pᵀw;  γ ≤ 0 ⇒ A is not positive definite (abort)
//     α ← ρ/γ;  x ← x + α·p;  r ← r − α·w
//     z ← M⁻¹r; ρ' ← rᵀz;  β ← ρ'/ρ;  p ← z + β·p;  ρ ← ρ'
//  3. M is the identity (plain CG) or diag(A) (Options.Jacobi).
//
// A zero right-hand side short-circuits to the zero solution.
//
// Errors:
//   - ErrNilInput            — a or b is nil.
//   - ErrNonSquare           — a is not square.
//   - ErrDimensionMismatch   — len(b) ≠ order of a.
//   - ErrAsymmetric          — |a[i,j] − a[j,i]| > SymEps for some pair.
//   - ErrZeroDiagonal        — Jacobi requested with a zero diagonal entry.
//   - ErrNotPositiveDefinite — non-positive curvature pᵀA·p during iteration.
//   - ErrBadOptions          — out-of-range Options field.
//
// Complexity: O(n²) per iteration for a dense A, O(n) extra memory.
func Solve(a mat.Matrix, b *mat.VecDense, opts Options) (*Result, error) {
	if a == nil || b == nil {
		return nil, ErrNilInput
	}
	n, c := a.Dims()
	if n != c {
		return nil, ErrNonSquare
	}
	if b.Len() != n {
		return nil, ErrDimensionMismatch
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > SymEps {
				return nil, ErrAsymmetric
			}
		}
	}

	// optional Jacobi preconditioner M⁻¹ = diag(A)⁻¹
	var invDiag []float64
	if opts.Jacobi {
		invDiag = make([]float64, n)
		for i := 0; i < n; i++ {
			d := a.At(i, i)
			if d == 0 {
				return nil, ErrZeroDiagonal
			}
			invDiag[i] = 1 / d
		}
	}

	maxIter := opts.MaxIter
	if maxIter == 0 {
		maxIter = n
	}

	res := &Result{X: mat.NewVecDense(n, nil)}

	normB := mat.Norm(b, 2)
	if normB == 0 {
		res.Converged = true
		return res, nil
	}

	var (
		r = mat.NewVecDense(n, nil)
		z = mat.NewVecDense(n, nil)
		p = mat.NewVecDense(n, nil)
		w = mat.NewVecDense(n, nil)
	)
	r.CopyVec(b) // x₀ = 0 ⇒ r = b
	applyPrecond(z, r, invDiag)
	p.CopyVec(z)
	rho := mat.Dot(r, z)

	res.History = make([]float64, 0, maxIter)
	res.Residual = 1.0
	for k := 0; k < maxIter; k++ {
		res.Iterations = k + 1

		w.MulVec(a, p)
		gamma := mat.Dot(p, w)
		if gamma <= 0 {
			return nil, ErrNotPositiveDefinite
		}
		alpha := rho / gamma

		res.X.AddScaledVec(res.X, alpha, p)
		r.AddScaledVec(r, -alpha, w)

		res.Residual = mat.Norm(r, 2) / normB
		res.History = append(res.History, res.Residual)
		if res.Residual <= opts.Tol {
			res.Converged = true
			break
		}

		applyPrecond(z, r, invDiag)
		rhoNext := mat.Dot(r, z)
		beta := rhoNext / rho
		p.AddScaledVec(z, beta, p)
		rho = rhoNext
	}

	return res, nil
}

// applyPrecond computes z = M⁻¹r; invDiag == nil means M = I.
func applyPrecond(z, r *mat.VecDense, invDiag []float64) {
	if invDiag == nil {
		z.CopyVec(r)
		return
	}
	for i := 0; i < r.Len(); i++ {
		z.SetVec(i, r.AtVec(i)*invDiag[i])
	}
}
