package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numopt/randx"
)

// Initial state of the simulated vehicle: position (m) and velocity (m/s).
// The start point sits well away from the sensor at the origin so the
// range–bearing measurement stays smooth along the whole track.
const (
	initPx = 20.0
	initPy = 5.0
	initVx = -0.8
	initVy = 0.6
)

// TrajectoryData bundles a simulated 2-D constant-velocity track observed by
// a range–bearing sensor at the origin.
type TrajectoryData struct {
	// States holds the true states, one row [px, py, vx, vy] per step.
	States *mat.Dense
	// Measurements holds the noisy sensor readings, one row [range, bearing]
	// per step. Bearing is in radians, wrapped to (−π, π].
	Measurements *mat.Dense
	// Dt is the simulation time step in seconds.
	Dt float64
}

// Trajectory simulates steps ticks of a near-constant-velocity vehicle and
// the corresponding noisy range–bearing measurements.
//
// Process model: white acceleration noise of intensity q (WithProcessNoise)
// perturbs the velocity each tick; position integrates the perturbed
// velocity. Measurement model: range = √(px²+py²), bearing = atan2(py, px),
// each with additive Gaussian noise (WithSensorNoise).
//
// Errors:
//   - ErrBadShape — steps ≤ 0 or dt ≤ 0.
//
// Complexity: O(steps).
func Trajectory(steps int, dt float64, opts ...Option) (*TrajectoryData, error) {
	if steps <= 0 || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)

	base := randx.New(o.seed)
	process := randx.Derive(base, streamProcess)
	sensor := randx.Derive(base, streamSensor)

	states := mat.NewDense(steps, 4, nil)
	meas := mat.NewDense(steps, 2, nil)

	px, py, vx, vy := initPx, initPy, initVx, initVy
	for k := 0; k < steps; k++ {
		// white-acceleration process noise
		ax := o.processNoise * process.NormFloat64()
		ay := o.processNoise * process.NormFloat64()
		vx += ax * dt
		vy += ay * dt
		px += vx*dt + 0.5*ax*dt*dt
		py += vy*dt + 0.5*ay*dt*dt

		states.Set(k, 0, px)
		states.Set(k, 1, py)
		states.Set(k, 2, vx)
		states.Set(k, 3, vy)

		r := math.Hypot(px, py)
		theta := math.Atan2(py, px)
		if o.rangeNoise > 0 {
			r += o.rangeNoise * sensor.NormFloat64()
		}
		if o.bearingNoise > 0 {
			theta += o.bearingNoise * sensor.NormFloat64()
		}
		meas.Set(k, 0, r)
		meas.Set(k, 1, WrapAngle(theta))
	}

	return &TrajectoryData{States: states, Measurements: meas, Dt: dt}, nil
}

// WrapAngle maps an angle in radians onto (−π, π].
func WrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}
