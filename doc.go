// Package numopt is a gallery of classical numerical optimization and
// estimation algorithms, each paired with a synthetic-data generator so
// every solver can be exercised end to end against a known ground truth.
//
// 🚀 What is numopt?
//
//	A pure-Go collection of self-contained solvers built on gonum:
//		• LASSO regression via ADMM with soft-thresholding
//		• Ordinary least squares via Householder QR
//		• Conjugate Gradient for SPD systems, optional Jacobi preconditioning
//		• Extended Kalman Filter with a range–bearing tracking model
//		• Graphical Lasso for sparse precision-matrix (network) estimation
//
// ✨ Why choose numopt?
//
//   - Deterministic – every simulation is seeded, every run reproducible
//   - Honest diagnostics – iteration counts, residuals and convergence
//     flags on every Result, never a silent failure
//   - Ground truth included – the dataset package simulates exactly the
//     inputs each solver expects, with the true parameters attached
//   - Pure Go – gonum for linear algebra, no cgo
//
// The solvers live in one subpackage each:
//
//	admm/    — ℓ₁-penalized least squares (LASSO) by ADMM
//	qr/      — Householder QR decomposition and linear regression
//	cg/      — Conjugate Gradient linear solver
//	ekf/     — Extended Kalman Filter and measurement models
//	glasso/  — Graphical Lasso precision estimation
//	dataset/ — seeded synthetic-data generators for all of the above
//	randx/   — deterministic RNG streams shared by the generators
//
// Dive into examples/ for runnable scenarios that fit, track and plot.
//
//	go get github.com/katalvlaran/numopt
package numopt
