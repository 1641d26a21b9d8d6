// Package cg solves symmetric positive-definite linear systems A·x = b with
// the Conjugate Gradient method.
//
// 🚀 Why CG?
//
//	For SPD systems, CG needs only matrix-vector products and O(n) extra
//	memory, minimizes the A-norm of the error over growing Krylov subspaces
//	and — in exact arithmetic — terminates in at most n steps.  It is the
//	standard iterative method whenever A is large, sparse or only available
//	as an operator.
//
// ✨ Key features:
//   - plain CG and Jacobi (diagonal) preconditioning
//   - relative-residual stopping: ‖b − A·x‖ ≤ Tol·‖b‖
//   - per-iteration residual history for convergence plots
//   - structural validation: squareness, symmetry within eps, positive
//     curvature monitored during the iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/cg"
//
//	opts := cg.DefaultOptions()
//	opts.Jacobi = true
//	res, err := cg.Solve(a, b, opts)
//	// res.X solves A·x = b with res.Residual ≤ opts.Tol·‖b‖ when res.Converged
//
// Performance:
//
//   - Per iteration: one A·p product, O(n²) dense / O(nnz) sparse
//   - Memory: O(n) working vectors plus the optional history
package cg
