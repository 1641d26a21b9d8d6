// Package dataset generates the small synthetic problems exercised by the
// numopt solvers: sparse linear-regression designs, symmetric
// positive-definite systems, Gaussian graphical-model samples and nonlinear
// tracking trajectories.
//
// 🚀 Why a generator package?
//
//	Every solver demo follows the same recipe: simulate a toy dataset with a
//	known ground truth, run the algorithm, compare against the truth or a
//	reference solution.  Centralizing the simulation keeps every demo and
//	test reproducible from a single seed.
//
// ✨ Key features:
//   - deterministic: same seed ⇒ identical dataset, on every platform
//   - independent substreams per concern (design vs. noise) so changing the
//     noise level never reshuffles the design matrix
//   - ground truth always returned alongside the observations
//   - validated functional options (WithSeed, WithNoise, WithSparsity, ...)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/dataset"
//
//	reg, err := dataset.Regression(1000, 11,
//	  dataset.WithSeed(42),
//	  dataset.WithSparsity(4),
//	  dataset.WithNoise(0.5),
//	)
//	// reg.X is 1000×11, reg.Y = reg.X·reg.Beta + ε
//
// All matrices are gonum dense types; generators never retain references to
// returned data.
package dataset
