package qr

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Regression fits the linear model y = X·β (+ intercept) by least squares
// through the Householder QR decomposition.
//
// With intercept=true a ones column is prepended to X, so Fit.Beta[0] is the
// intercept and feature coefficients follow in column order.
//
// Errors: everything Decompose and Solve report, plus ErrNilMatrix for nil
// inputs and ErrDimensionMismatch when len(y) differs from the rows of x.
//
// Complexity: dominated by Decompose, O(m·n²+m²·n).
func Regression(x *mat.Dense, y *mat.VecDense, intercept bool) (*Fit, error) {
	if x == nil || y == nil {
		return nil, ErrNilMatrix
	}
	m, n := x.Dims()
	if y.Len() != m {
		return nil, ErrDimensionMismatch
	}

	design := x
	if intercept {
		design = mat.NewDense(m, n+1, nil)
		for i := 0; i < m; i++ {
			design.Set(i, 0, 1)
			for j := 0; j < n; j++ {
				design.Set(i, j+1, x.At(i, j))
			}
		}
	}

	f, err := Decompose(design)
	if err != nil {
		return nil, err
	}
	beta, err := f.Solve(y)
	if err != nil {
		return nil, err
	}

	fitted := mat.NewVecDense(m, nil)
	fitted.MulVec(design, beta)

	residuals := mat.NewVecDense(m, nil)
	residuals.SubVec(y, fitted)

	rss := mat.Dot(residuals, residuals)

	// total variation: about the mean with an intercept, about zero without
	center := 0.0
	if intercept {
		center = stat.Mean(vecData(y), nil)
	}
	tss := 0.0
	for i := 0; i < m; i++ {
		d := y.AtVec(i) - center
		tss += d * d
	}
	r2 := 0.0
	if tss > 0 {
		r2 = 1 - rss/tss
	}

	return &Fit{
		Beta:      beta,
		Fitted:    fitted,
		Residuals: residuals,
		RSS:       rss,
		R2:        r2,
	}, nil
}

// vecData copies a vector into a plain slice (VecDense data may be strided).
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
