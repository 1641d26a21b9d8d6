package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/randx"
)

// SPDSystem bundles a simulated symmetric positive-definite linear system
// A·X = B with its exact solution.
type SPDSystem struct {
	// A is the n×n SPD coefficient matrix.
	A *mat.SymDense
	// B is the right-hand side, B = A·X.
	B *mat.VecDense
	// X is the exact solution the system was built from.
	X *mat.VecDense
}

// SPD simulates an n×n symmetric positive-definite system with a known
// solution.
//
// Construction: draw M with i.i.d. standard-normal entries and set
// A = MᵀM/n + I. The Gram term makes A symmetric PSD; the identity shift
// bounds the spectrum away from zero, so A is safely positive definite and
// reasonably conditioned for iterative solvers. The exact solution X is
// standard normal and B = A·X (no noise: the system is meant to be solved to
// machine-level residuals).
//
// Errors:
//   - ErrBadShape — n ≤ 0.
//
// Complexity: O(n³) time for the Gram product, O(n²) memory.
func SPD(n int, opts ...Option) (*SPDSystem, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)

	base := randx.New(o.seed)
	design := randx.Derive(base, streamDesign)
	truth := randx.Derive(base, streamTruth)

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, design.NormFloat64())
		}
	}

	var gram mat.Dense
	gram.Mul(m.T(), m)

	a := mat.NewSymDense(n, nil)
	inv := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := gram.At(i, j) * inv
			if i == j {
				v++
			}
			a.SetSym(i, j, v)
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, truth.NormFloat64())
	}

	b := mat.NewVecDense(n, nil)
	b.MulVec(a, x)

	return &SPDSystem{A: a, B: b, X: x}, nil
}
