// Package admm solves the LASSO problem
//
//	minimize ½‖X·β − y‖₂² + λ‖β‖₁
//
// with the Alternating Direction Method of Multipliers.
//
// 🚀 Why ADMM?
//
//	Splitting the smooth least-squares term from the non-smooth ℓ₁ penalty
//	turns each iteration into two cheap steps: a linear solve against a
//	matrix that never changes (factorized once) and an elementwise
//	soft-threshold.  The method is robust, parameter-light and converges to
//	the ordinary least-squares solution as λ→0.
//
// ✨ Key features:
//   - Cholesky factorization of XᵀX + ρI computed once, reused every iteration
//   - over-relaxation (α ∈ [1, 2]) for faster practical convergence
//   - primal/dual residual stopping with absolute + relative tolerances
//     (Boyd, Parikh, Chu, Peleato, Eckstein, 2011, §3.3)
//   - never mutates the caller's X or y
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/admm"
//
//	opts := admm.DefaultOptions()
//	res, err := admm.Solve(x, y, 0.1, opts)
//	// res.Beta is the sparse estimate, res.Converged reports early stopping
//
// Performance:
//
//   - Factorization: O(p³) once (p = number of columns)
//   - Per iteration: O(p²) solve + O(n·p) residual bookkeeping
package admm
