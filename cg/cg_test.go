package cg_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/cg"
	"github.com/katalvlaran/numopt/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_RecoversKnownSolution solves a simulated SPD system and compares
// against the exact solution the system was built from.
func TestSolve_RecoversKnownSolution(t *testing.T) {
	sys, err := dataset.SPD(50, dataset.WithSeed(3))
	require.NoError(t, err)

	res, err := cg.Solve(sys.A, sys.B, cg.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged, "well-conditioned SPD system must converge")
	assert.LessOrEqual(t, res.Residual, cg.DefaultTol)
	assert.True(t, mat.EqualApprox(sys.X, res.X, 1e-6), "solution must match the truth")
}

// TestSolve_ResidualContract checks the defining property ‖A·x−b‖ ≤ Tol·‖b‖
// independently of the solver's own bookkeeping.
func TestSolve_ResidualContract(t *testing.T) {
	sys, err := dataset.SPD(30, dataset.WithSeed(12))
	require.NoError(t, err)

	opts := cg.DefaultOptions()
	opts.Tol = 1e-10
	res, err := cg.Solve(sys.A, sys.B, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)

	ax := mat.NewVecDense(30, nil)
	ax.MulVec(sys.A, res.X)
	var diff mat.VecDense
	diff.SubVec(ax, sys.B)
	assert.LessOrEqual(t, mat.Norm(&diff, 2)/mat.Norm(sys.B, 2), 1e-10)
}

// TestSolve_JacobiMatchesPlain verifies preconditioning changes the path,
// not the destination.
func TestSolve_JacobiMatchesPlain(t *testing.T) {
	sys, err := dataset.SPD(40, dataset.WithSeed(27))
	require.NoError(t, err)

	plain, err := cg.Solve(sys.A, sys.B, cg.DefaultOptions())
	require.NoError(t, err)

	opts := cg.DefaultOptions()
	opts.Jacobi = true
	pre, err := cg.Solve(sys.A, sys.B, opts)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(plain.X, pre.X, 1e-6),
		"Jacobi CG must reach the same solution")
	assert.True(t, pre.Converged)
}

// TestSolve_HistoryTracksIterations verifies the residual history length and
// its final entry.
func TestSolve_HistoryTracksIterations(t *testing.T) {
	sys, err := dataset.SPD(25, dataset.WithSeed(5))
	require.NoError(t, err)

	res, err := cg.Solve(sys.A, sys.B, cg.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.History)
	assert.Len(t, res.History, res.Iterations)
	assert.Equal(t, res.Residual, res.History[len(res.History)-1])
}

// TestSolve_ZeroRHS short-circuits to the zero solution.
func TestSolve_ZeroRHS(t *testing.T) {
	sys, err := dataset.SPD(10, dataset.WithSeed(2))
	require.NoError(t, err)

	res, err := cg.Solve(sys.A, mat.NewVecDense(10, nil), cg.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.InDelta(t, 0, mat.Norm(res.X, 2), 1e-15)
}

// TestSolve_NotPositiveDefinite feeds a symmetric indefinite matrix and
// expects the curvature guard to fire.
func TestSolve_NotPositiveDefinite(t *testing.T) {
	a := mat.NewSymDense(2, []float64{
		1, 0,
		0, -1,
	})
	b := mat.NewVecDense(2, []float64{0, 1})

	_, err := cg.Solve(a, b, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrNotPositiveDefinite)
}

// TestSolve_InputValidation covers the remaining sentinel errors.
func TestSolve_InputValidation(t *testing.T) {
	b2 := mat.NewVecDense(2, []float64{1, 1})

	_, err := cg.Solve(nil, b2, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrNilInput)

	rect := mat.NewDense(2, 3, nil)
	_, err = cg.Solve(rect, b2, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrNonSquare)

	sq := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	_, err = cg.Solve(sq, b2, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrDimensionMismatch)

	asym := mat.NewDense(2, 2, []float64{1, 2, 3, 1})
	_, err = cg.Solve(asym, b2, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrAsymmetric)

	zeroDiag := mat.NewSymDense(2, []float64{0, 1, 1, 0})
	opts := cg.DefaultOptions()
	opts.Jacobi = true
	_, err = cg.Solve(zeroDiag, b2, opts)
	assert.ErrorIs(t, err, cg.ErrZeroDiagonal)

	bad := cg.DefaultOptions()
	bad.Tol = 0
	_, err = cg.Solve(sq, mat.NewVecDense(3, []float64{1, 1, 1}), bad)
	assert.ErrorIs(t, err, cg.ErrBadOptions)

	bad = cg.DefaultOptions()
	bad.MaxIter = -1
	_, err = cg.Solve(sq, mat.NewVecDense(3, []float64{1, 1, 1}), bad)
	assert.ErrorIs(t, err, cg.ErrBadOptions)
}

// TestSolve_MaxIterCap confirms exhausting the cap reports Converged=false
// without an error.
func TestSolve_MaxIterCap(t *testing.T) {
	sys, err := dataset.SPD(60, dataset.WithSeed(41))
	require.NoError(t, err)

	opts := cg.DefaultOptions()
	opts.MaxIter = 2
	opts.Tol = 1e-14

	res, err := cg.Solve(sys.A, sys.B, opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
}

// TestSolve_DoesNotMutateInputs checks that neither the coefficient matrix
// nor the right-hand side is touched by a solve.
func TestSolve_DoesNotMutateInputs(t *testing.T) {
	sys, err := dataset.SPD(40, dataset.WithSeed(9))
	require.NoError(t, err)
	aBefore := mat.DenseCopyOf(sys.A)
	bBefore := mat.VecDenseCopyOf(sys.B)

	_, err = cg.Solve(sys.A, sys.B, cg.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, mat.Equal(aBefore, sys.A), "coefficient matrix was mutated")
	assert.True(t, mat.Equal(bBefore, sys.B), "right-hand side was mutated")
}
