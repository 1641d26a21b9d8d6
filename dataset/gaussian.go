package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/randx"
)

// ChainPrecision builds the p×p precision matrix of a Gaussian chain graph:
// unit diagonal, coupling a on the first off-diagonal, zero elsewhere.
// The implied conditional-independence graph is the path 0—1—…—(p−1), which
// makes it the canonical test instance for sparse precision estimation.
//
// Positive definiteness of the tridiagonal Toeplitz matrix requires
// |a| < 1/(2·cos(π/(p+1))); the simpler sufficient bound |a| < 0.5 is
// enforced here so instances stay PD for every p.
//
// Errors:
//   - ErrBadShape            — p ≤ 1.
//   - ErrNotPositiveDefinite — |a| ≥ 0.5.
func ChainPrecision(p int, a float64) (*mat.SymDense, error) {
	if p <= 1 {
		return nil, ErrBadShape
	}
	if math.Abs(a) >= 0.5 || math.IsNaN(a) {
		return nil, ErrNotPositiveDefinite
	}
	prec := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		prec.SetSym(i, i, 1.0)
		if i+1 < p {
			prec.SetSym(i, i+1, a)
		}
	}
	return prec, nil
}

// GaussianSamples draws n samples from the zero-mean Gaussian whose
// precision matrix is prec, returning them as the rows of an n×p matrix.
//
// Sampling uses the Cholesky factor of the precision: with prec = L·Lᵀ and
// z ~ N(0, I), the solve Lᵀ·x = z yields x with covariance prec⁻¹. This
// keeps sampling on the module's deterministic math/rand streams.
//
// Errors:
//   - ErrBadShape            — n ≤ 0.
//   - ErrNilMatrix           — prec is nil.
//   - ErrNotPositiveDefinite — Cholesky factorization of prec fails.
//
// Complexity: O(p³ + n·p²).
func GaussianSamples(n int, prec *mat.SymDense, opts ...Option) (*mat.Dense, error) {
	if prec == nil {
		return nil, ErrNilMatrix
	}
	if n <= 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)

	var chol mat.Cholesky
	if ok := chol.Factorize(prec); !ok {
		return nil, ErrNotPositiveDefinite
	}
	p := prec.SymmetricDim()
	var l mat.TriDense
	chol.LTo(&l)

	rng := randx.Derive(randx.New(o.seed), streamDesign)

	samples := mat.NewDense(n, p, nil)
	z := mat.NewVecDense(p, nil)
	x := mat.NewVecDense(p, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			z.SetVec(j, rng.NormFloat64())
		}
		// Lᵀ x = z  ⇒  cov(x) = (L Lᵀ)⁻¹ = prec⁻¹
		if err := x.SolveVec(l.T(), z); err != nil {
			return nil, ErrNotPositiveDefinite
		}
		for j := 0; j < p; j++ {
			samples.Set(i, j, x.AtVec(j))
		}
	}
	return samples, nil
}
