package ekf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// minRange guards the measurement Jacobian near the sensor origin, where
// bearing (and its derivatives) degenerate.
const minRange = 1e-9

// RangeBearingCV is a 2-D constant-velocity vehicle observed by a
// range–bearing sensor at the origin.
//
// State   x = [px, py, vx, vy]
// Process x_{k+1} = F·x_k with F the constant-velocity transition; the
// process noise is the standard white-acceleration model of intensity q².
// Measurement z = [√(px²+py²), atan2(py, px)] with independent Gaussian
// range/bearing noise.
//
// The model matches the trajectories produced by dataset.Trajectory, making
// the pair a self-contained tracking demo.
type RangeBearingCV struct {
	dt float64
	f  *mat.Dense
	q  *mat.SymDense
	r  *mat.SymDense
}

// NewRangeBearingCV builds the model.
//
// Parameters: dt is the sampling interval; accelSigma the standard deviation
// of the white acceleration noise; rangeSigma and bearingSigma the sensor
// noise standard deviations (length units and radians).
//
// Errors:
//   - ErrBadModel — dt ≤ 0 or any sigma negative/non-finite.
func NewRangeBearingCV(dt, accelSigma, rangeSigma, bearingSigma float64) (*RangeBearingCV, error) {
	if dt <= 0 || accelSigma < 0 || rangeSigma < 0 || bearingSigma < 0 ||
		!finite(dt) || !finite(accelSigma) || !finite(rangeSigma) || !finite(bearingSigma) {
		return nil, ErrBadModel
	}

	f := mat.NewDense(4, 4, []float64{
		1, 0, dt, 0,
		0, 1, 0, dt,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	// white-acceleration process noise
	q2 := accelSigma * accelSigma
	dt2 := dt * dt
	q := mat.NewSymDense(4, []float64{
		q2 * dt2 * dt2 / 4, 0, q2 * dt2 * dt / 2, 0,
		0, q2 * dt2 * dt2 / 4, 0, q2 * dt2 * dt / 2,
		q2 * dt2 * dt / 2, 0, q2 * dt2, 0,
		0, q2 * dt2 * dt / 2, 0, q2 * dt2,
	})

	r := mat.NewSymDense(2, []float64{
		rangeSigma * rangeSigma, 0,
		0, bearingSigma * bearingSigma,
	})

	return &RangeBearingCV{dt: dt, f: f, q: q, r: r}, nil
}

// Dims returns (4, 2).
func (m *RangeBearingCV) Dims() (int, int) { return 4, 2 }

// Dt returns the sampling interval the model was built with.
func (m *RangeBearingCV) Dt() float64 { return m.dt }

// Transition applies the constant-velocity step; u is ignored.
func (m *RangeBearingCV) Transition(x, _ *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(4, nil)
	out.MulVec(m.f, x)
	return out
}

// TransitionJacobian returns the constant F.
func (m *RangeBearingCV) TransitionJacobian(_, _ *mat.VecDense) *mat.Dense {
	out := mat.NewDense(4, 4, nil)
	out.Copy(m.f)
	return out
}

// Measurement returns [range, bearing] at the state's position.
func (m *RangeBearingCV) Measurement(x *mat.VecDense) *mat.VecDense {
	px, py := x.AtVec(0), x.AtVec(1)
	out := mat.NewVecDense(2, nil)
	out.SetVec(0, math.Hypot(px, py))
	out.SetVec(1, math.Atan2(py, px))
	return out
}

// MeasurementJacobian linearizes the sensor at the state's position:
//
//	∂r/∂p = pᵀ/‖p‖,  ∂θ/∂p = (−py, px)/‖p‖²
func (m *RangeBearingCV) MeasurementJacobian(x *mat.VecDense) *mat.Dense {
	px, py := x.AtVec(0), x.AtVec(1)
	r := math.Hypot(px, py)
	if r < minRange {
		r = minRange
	}
	r2 := r * r
	return mat.NewDense(2, 4, []float64{
		px / r, py / r, 0, 0,
		-py / r2, px / r2, 0, 0,
	})
}

// ProcessNoise returns Q.
func (m *RangeBearingCV) ProcessNoise() mat.Symmetric { return m.q }

// MeasurementNoise returns R.
func (m *RangeBearingCV) MeasurementNoise() mat.Symmetric { return m.r }

// NormalizeInnovation wraps the bearing component onto (−π, π] so residuals
// straddling the ±π cut do not register as 2π errors.
func (m *RangeBearingCV) NormalizeInnovation(y *mat.VecDense) {
	y.SetVec(1, wrapAngle(y.AtVec(1)))
}

// wrapAngle maps an angle onto (−π, π]. It must stay in sync with
// dataset.WrapAngle: the simulator wraps its bearing measurements with the
// same convention, so a mismatch would bias innovations near the ±π cut.
func wrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
