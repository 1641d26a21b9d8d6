package qr_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/qr"
)

// ExampleRegression fits a tiny exact linear model y = 2·x₁ − x₂ and prints
// the recovered coefficients.
func ExampleRegression() {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
	})
	y := mat.NewVecDense(4, []float64{2, -1, 1, 3})

	fit, err := qr.Regression(x, y, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("beta=[%.1f %.1f] rss=%.1f r2=%.1f\n",
		fit.Beta.AtVec(0), fit.Beta.AtVec(1), fit.RSS, fit.R2)
	// Output:
	// beta=[2.0 -1.0] rss=0.0 r2=1.0
}

// ExampleDecompose reconstructs the input from its factors, demonstrating
// the defining identity Q·R = X.
func ExampleDecompose() {
	x := mat.NewDense(3, 2, []float64{
		3, 1,
		4, 2,
		0, 5,
	})
	f, err := qr.Decompose(x)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var back mat.Dense
	back.Mul(f.Q(), f.R())

	var diff mat.Dense
	diff.Sub(x, &back)
	fmt.Printf("reconstruction error = %.0f\n", mat.Norm(&diff, 2))
	// Output:
	// reconstruction error = 0
}
