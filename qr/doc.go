// Package qr computes the QR decomposition of rectangular matrices with
// Householder reflections and solves least-squares problems with it.
//
// 🚀 What is QR?
//
//	Any m×n matrix X (m ≥ n) factors as X = Q·R with Q orthogonal and R
//	upper triangular.  Because orthogonal transforms preserve the 2-norm,
//	the least-squares problem min ‖X·β − y‖ collapses to a triangular solve
//	R·β = Qᵀy — the numerically stable way to fit a linear regression,
//	avoiding the squared condition number of the normal equations.
//
// ✨ Key features:
//   - Householder reflections (backward stable, no pivoting needed for
//     full-rank designs)
//   - thin Q (m×n) and full Q (m×m) extraction
//   - Solve for least-squares coefficients with singularity detection
//   - Regression convenience wrapper: optional intercept, fitted values,
//     residuals, RSS and R²
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/qr"
//
//	f, err := qr.Decompose(x)
//	beta, err := f.Solve(y)
//
//	fit, err := qr.Regression(x, y, true) // with intercept
//
// Performance:
//
//   - Decompose: O(m·n²) time, O(m²) memory (full Q accumulated)
//   - Solve:     O(m·n) for Qᵀy plus O(n²) back substitution
package qr
