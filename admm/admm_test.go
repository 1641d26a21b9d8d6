package admm_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/admm"
	"github.com/katalvlaran/numopt/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// olsSolve computes the least-squares reference via gonum's QR.
func olsSolve(t *testing.T, x *mat.Dense, y *mat.VecDense) *mat.VecDense {
	t.Helper()
	var qr mat.QR
	qr.Factorize(x)
	_, p := x.Dims()
	beta := mat.NewVecDense(p, nil)
	require.NoError(t, qr.SolveVecTo(beta, false, y))
	return beta
}

// TestSolve_TinyLambdaMatchesOLS verifies the λ→0 limit: the ADMM estimate
// must approach the ordinary least-squares solution.
func TestSolve_TinyLambdaMatchesOLS(t *testing.T) {
	d, err := dataset.Regression(200, 8, dataset.WithSeed(21), dataset.WithNoise(0.3))
	require.NoError(t, err)

	opts := admm.DefaultOptions()
	opts.MaxIter = 5000
	opts.AbsTol = 1e-9
	opts.RelTol = 1e-7

	res, err := admm.Solve(d.X, d.Y, 1e-8, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged, "tiny lambda should converge well before MaxIter")

	ols := olsSolve(t, d.X, d.Y)
	assert.True(t, mat.EqualApprox(ols, res.Beta, 1e-4),
		"lambda→0 must recover the OLS estimate")
}

// TestSolve_LargeLambdaZeroesEverything checks that a penalty above the
// critical value λ_max = ‖Xᵀy‖_∞ drives every coefficient to exactly zero.
func TestSolve_LargeLambdaZeroesEverything(t *testing.T) {
	d, err := dataset.Regression(100, 6, dataset.WithSeed(4))
	require.NoError(t, err)

	// λ_max = ‖Xᵀy‖_∞
	xty := mat.NewVecDense(6, nil)
	xty.MulVec(d.X.T(), d.Y)
	lambdaMax := mat.Norm(xty, 1) // any value ≥ ‖Xᵀy‖_∞ works; the 1-norm dominates

	res, err := admm.Solve(d.X, d.Y, 2*lambdaMax, admm.DefaultOptions())
	require.NoError(t, err)
	for j := 0; j < res.Beta.Len(); j++ {
		assert.Zero(t, res.Beta.AtVec(j), "coefficient %d must be exactly zero", j)
	}
}

// TestSolve_SparseRecovery verifies the classic LASSO behavior on a sparse
// truth: true support coefficients stay large, off-support stays near zero.
func TestSolve_SparseRecovery(t *testing.T) {
	d, err := dataset.Regression(500, 11,
		dataset.WithSeed(7), dataset.WithSparsity(3), dataset.WithNoise(0.1))
	require.NoError(t, err)

	res, err := admm.Solve(d.X, d.Y, 5.0, admm.DefaultOptions())
	require.NoError(t, err)

	for j := 0; j < 11; j++ {
		if d.Beta.AtVec(j) == 0 {
			assert.InDelta(t, 0, res.Beta.AtVec(j), 0.1,
				"off-support coefficient %d should be shrunk to ~0", j)
		} else {
			assert.Greater(t, absf(res.Beta.AtVec(j)), 0.2,
				"support coefficient %d should survive the penalty", j)
		}
	}
}

// TestSolve_Deterministic confirms two runs on the same data are identical.
func TestSolve_Deterministic(t *testing.T) {
	d, err := dataset.Regression(80, 5, dataset.WithSeed(13))
	require.NoError(t, err)

	r1, err := admm.Solve(d.X, d.Y, 0.5, admm.DefaultOptions())
	require.NoError(t, err)
	r2, err := admm.Solve(d.X, d.Y, 0.5, admm.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, mat.Equal(r1.Beta, r2.Beta))
	assert.Equal(t, r1.Iterations, r2.Iterations)
}

// TestSolve_InputValidation covers every sentinel error.
func TestSolve_InputValidation(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 1, 1, 2, 1})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	_, err := admm.Solve(nil, y, 0.1, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNilInput)

	_, err = admm.Solve(x, nil, 0.1, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNilInput)

	short := mat.NewVecDense(3, []float64{1, 2, 3})
	_, err = admm.Solve(x, short, 0.1, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrDimensionMismatch)

	_, err = admm.Solve(x, y, -1, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNegativeLambda)

	bad := admm.DefaultOptions()
	bad.Rho = 0
	_, err = admm.Solve(x, y, 0.1, bad)
	assert.ErrorIs(t, err, admm.ErrBadOptions)

	bad = admm.DefaultOptions()
	bad.Alpha = 2.5
	_, err = admm.Solve(x, y, 0.1, bad)
	assert.ErrorIs(t, err, admm.ErrBadOptions)

	bad = admm.DefaultOptions()
	bad.MaxIter = 0
	_, err = admm.Solve(x, y, 0.1, bad)
	assert.ErrorIs(t, err, admm.ErrBadOptions)
}

// TestSolve_MaxIterIsNotAnError checks the contract that exhausting the
// iteration budget reports Converged=false without failing.
func TestSolve_MaxIterIsNotAnError(t *testing.T) {
	d, err := dataset.Regression(100, 8, dataset.WithSeed(31))
	require.NoError(t, err)

	opts := admm.DefaultOptions()
	opts.MaxIter = 2
	opts.AbsTol = 0
	opts.RelTol = 0

	res, err := admm.Solve(d.X, d.Y, 0.1, opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestSolve_DoesNotMutateInputs checks that the solver works on internal
// copies: the design matrix and targets are bit-identical after a run.
func TestSolve_DoesNotMutateInputs(t *testing.T) {
	d, err := dataset.Regression(80, 6, dataset.WithSeed(5), dataset.WithSparsity(2))
	require.NoError(t, err)
	xBefore := mat.DenseCopyOf(d.X)
	yBefore := mat.VecDenseCopyOf(d.Y)

	_, err = admm.Solve(d.X, d.Y, 0.5, admm.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, mat.Equal(xBefore, d.X), "design matrix was mutated")
	assert.True(t, mat.Equal(yBefore, d.Y), "target vector was mutated")
}
