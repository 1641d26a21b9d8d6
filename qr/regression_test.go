package qr_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/dataset"
	"github.com/katalvlaran/numopt/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegression_RecoversNoiselessTruth checks that a noise-free simulated
// problem is fit exactly: coefficients equal the truth and R² = 1.
func TestRegression_RecoversNoiselessTruth(t *testing.T) {
	d, err := dataset.Regression(100, 5, dataset.WithSeed(23), dataset.WithNoise(0))
	require.NoError(t, err)

	fit, err := qr.Regression(d.X, d.Y, false)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(d.Beta, fit.Beta, 1e-10),
		"noise-free fit must recover the exact coefficients")
	assert.InDelta(t, 1.0, fit.R2, 1e-12)
	assert.InDelta(t, 0.0, fit.RSS, 1e-18)
}

// TestRegression_InterceptLayout verifies the intercept occupies Beta[0]
// and is recovered on a shifted response.
func TestRegression_InterceptLayout(t *testing.T) {
	d, err := dataset.Regression(200, 3, dataset.WithSeed(29), dataset.WithNoise(0))
	require.NoError(t, err)

	// shift the response by a constant; the intercept must absorb it
	shifted := mat.NewVecDense(200, nil)
	for i := 0; i < 200; i++ {
		shifted.SetVec(i, d.Y.AtVec(i)+7.5)
	}

	fit, err := qr.Regression(d.X, shifted, true)
	require.NoError(t, err)
	require.Equal(t, 4, fit.Beta.Len())

	assert.InDelta(t, 7.5, fit.Beta.AtVec(0), 1e-9, "intercept must absorb the shift")
	for j := 0; j < 3; j++ {
		assert.InDelta(t, d.Beta.AtVec(j), fit.Beta.AtVec(j+1), 1e-9)
	}
}

// TestRegression_ResidualsOrthogonalToDesign verifies the defining property
// of least squares: Xᵀ(y − X·β) = 0.
func TestRegression_ResidualsOrthogonalToDesign(t *testing.T) {
	d, err := dataset.Regression(300, 6, dataset.WithSeed(37), dataset.WithNoise(1.0))
	require.NoError(t, err)

	fit, err := qr.Regression(d.X, d.Y, false)
	require.NoError(t, err)

	g := mat.NewVecDense(6, nil)
	g.MulVec(d.X.T(), fit.Residuals)
	assert.InDelta(t, 0, mat.Norm(g, 2), 1e-7,
		"residuals must be orthogonal to the column space of X")
}

// TestRegression_Errors covers nil inputs and shape mismatches.
func TestRegression_Errors(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 1})
	y := mat.NewVecDense(3, []float64{1, 2, 3})

	_, err := qr.Regression(nil, y, false)
	assert.ErrorIs(t, err, qr.ErrNilMatrix)

	_, err = qr.Regression(x, nil, false)
	assert.ErrorIs(t, err, qr.ErrNilMatrix)

	_, err = qr.Regression(x, mat.NewVecDense(2, []float64{1, 2}), false)
	assert.ErrorIs(t, err, qr.ErrDimensionMismatch)
}
