// Package glasso estimates a sparse precision (inverse covariance) matrix
// with the Graphical Lasso: the ℓ₁-penalized Gaussian maximum-likelihood
// estimator
//
//	maximize  log det Θ − tr(S·Θ) − λ‖Θ‖₁
//
// over positive-definite Θ, where S is the empirical covariance.
//
// 🚀 Why sparse precision?
//
//	Zeros in the precision matrix of a Gaussian are exactly the missing
//	edges of its conditional-independence graph.  Penalizing |Θ| therefore
//	recovers the graph structure from data — the Gaussian graphical model.
//
// ✨ Key features:
//   - block coordinate descent over columns (Friedman, Hastie &
//     Tibshirani, 2008), each column a lasso subproblem solved by
//     coordinate descent with soft-thresholding
//   - exact zeros in the estimate (soft-threshold, not rounding)
//   - convergence on the mean absolute change of the working covariance
//   - Graph() reports the recovered edge set
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/glasso"
//
//	s, _ := glasso.Covariance(samples)          // or any SPD estimate
//	res, _ := glasso.Solve(s, 0.1, glasso.DefaultOptions())
//	edges := res.Graph()                        // conditional dependencies
//
// Performance:
//
//   - Per outer sweep: p lasso subproblems of size p−1, O(p³) total
//     for dense problems; sparsity makes inner sweeps cheaper in practice
package glasso
