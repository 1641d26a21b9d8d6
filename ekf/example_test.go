package ekf_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/ekf"
)

// ExampleFilter tracks a noise-free constant-velocity vehicle through
// range–bearing measurements. With an exact initialization the innovation
// is zero at every step, so the estimate reproduces the true track.
func ExampleFilter() {
	model, err := ekf.NewRangeBearingCV(1.0, 1e-6, 1e-6, 1e-6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// truth: start at (3, 4), velocity (1, 0)
	x0 := mat.NewVecDense(4, []float64{3, 4, 1, 0})
	p0 := mat.NewSymDense(4, nil)
	for i := 0; i < 4; i++ {
		p0.SetSym(i, i, 1)
	}
	f, err := ekf.New(model, x0, p0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// three noise-free measurements of the positions (4,4), (5,4), (6,4)
	meas := mat.NewDense(3, 2, nil)
	for k := 0; k < 3; k++ {
		px, py := 4.0+float64(k), 4.0
		meas.Set(k, 0, math.Hypot(px, py))
		meas.Set(k, 1, math.Atan2(py, px))
	}

	est, err := f.Run(meas)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("final position = (%.2f, %.2f)\n", est.At(2, 0), est.At(2, 1))
	// Output:
	// final position = (6.00, 4.00)
}
