package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/randx"
)

// Substream identifiers. Keeping one stream per concern means changing the
// noise level never reshuffles the design matrix or the ground truth.
const (
	streamDesign uint64 = iota + 1
	streamTruth
	streamNoise
	streamProcess
	streamSensor
)

// RegressionData bundles a simulated linear-regression problem with its
// ground truth: Y = X·Beta + ε, ε ~ N(0, σ²).
type RegressionData struct {
	// X is the n×p design matrix with i.i.d. standard-normal entries.
	X *mat.Dense
	// Y is the n-vector of noisy observations.
	Y *mat.VecDense
	// Beta is the p-vector of true coefficients (exactly k nonzeros when
	// WithSparsity(k) was requested).
	Beta *mat.VecDense
}

// Regression simulates an n×p linear-regression problem.
//
// Ground truth coefficients are drawn from N(0, 1); with WithSparsity(k),
// only k deterministic random positions are nonzero, with magnitudes bounded
// away from zero (≥ 1) so the support stays well separated from the noise
// floor. Targets receive additive Gaussian noise with the configured
// standard deviation.
//
// Errors:
//   - ErrBadShape    — n ≤ 0 or p ≤ 0.
//   - ErrBadSparsity — requested k exceeds p.
//
// Complexity: O(n·p) time and memory.
func Regression(n, p int, opts ...Option) (*RegressionData, error) {
	if n <= 0 || p <= 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)
	if o.sparsity > p {
		return nil, ErrBadSparsity
	}

	base := randx.New(o.seed)
	design := randx.Derive(base, streamDesign)
	truth := randx.Derive(base, streamTruth)
	noise := randx.Derive(base, streamNoise)

	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			x.Set(i, j, design.NormFloat64())
		}
	}

	beta := mat.NewVecDense(p, nil)
	if o.sparsity == 0 {
		for j := 0; j < p; j++ {
			beta.SetVec(j, truth.NormFloat64())
		}
	} else {
		support := randx.Perm(p, truth)[:o.sparsity]
		for _, j := range support {
			// magnitude in [1, ∞), typically ≈ 1.2
			v := 1.0 + 0.25*math.Abs(truth.NormFloat64())
			if truth.Intn(2) == 0 {
				v = -v
			}
			beta.SetVec(j, v)
		}
	}

	y := mat.NewVecDense(n, nil)
	y.MulVec(x, beta)
	if o.noise > 0 {
		for i := 0; i < n; i++ {
			y.SetVec(i, y.AtVec(i)+o.noise*noise.NormFloat64())
		}
	}

	return &RegressionData{X: x, Y: y, Beta: beta}, nil
}
