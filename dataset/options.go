package dataset

import "math"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultNoise is the standard deviation of additive Gaussian noise on
	// regression targets and SPD right-hand sides.
	DefaultNoise = 0.1

	// DefaultRangeNoise is the range-measurement standard deviation used by
	// Trajectory (same length unit as positions).
	DefaultRangeNoise = 0.5

	// DefaultBearingNoise is the bearing-measurement standard deviation used
	// by Trajectory, in radians.
	DefaultBearingNoise = 0.02

	// DefaultProcessNoise is the acceleration-noise intensity of the
	// constant-velocity process simulated by Trajectory.
	DefaultProcessNoise = 0.05
)

// Internal panic messages for option constructors (programmer errors only).
const (
	panicNoiseInvalid   = "dataset: WithNoise: sigma must be finite, non-negative"
	panicSparsityNeg    = "dataset: WithSparsity: k must be non-negative"
	panicSensorInvalid  = "dataset: WithSensorNoise: sigmas must be finite, non-negative"
	panicProcessInvalid = "dataset: WithProcessNoise: q must be finite, non-negative"
)

// Option mutates generator configuration. Safe to apply repeatedly;
// last-writer-wins. Constructors panic only on nonsensical values
// (programmer error), mirroring matrix-option conventions.
type Option func(*Options)

// Options stores the effective generator configuration. Fields are
// unexported; public generators accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	seed         int64
	noise        float64
	sparsity     int // 0 ⇒ dense ground truth
	rangeNoise   float64
	bearingNoise float64
	processNoise float64
}

// WithSeed fixes the RNG seed. seed==0 keeps the stable default stream
// (randx policy).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithNoise sets the standard deviation of additive Gaussian noise.
// Panics if sigma is negative or non-finite.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(panicNoiseInvalid)
	}
	return func(o *Options) { o.noise = sigma }
}

// WithSparsity requests exactly k nonzero ground-truth coefficients placed at
// deterministic random positions. k==0 keeps a dense coefficient vector.
// Panics if k is negative; k > p is reported by the generator as
// ErrBadSparsity (it depends on runtime input, not on the constructor).
func WithSparsity(k int) Option {
	if k < 0 {
		panic(panicSparsityNeg)
	}
	return func(o *Options) { o.sparsity = k }
}

// WithSensorNoise sets the range and bearing measurement standard deviations
// used by Trajectory. Panics on negative or non-finite values.
func WithSensorNoise(rangeSigma, bearingSigma float64) Option {
	if rangeSigma < 0 || bearingSigma < 0 ||
		math.IsNaN(rangeSigma) || math.IsInf(rangeSigma, 0) ||
		math.IsNaN(bearingSigma) || math.IsInf(bearingSigma, 0) {
		panic(panicSensorInvalid)
	}
	return func(o *Options) {
		o.rangeNoise = rangeSigma
		o.bearingNoise = bearingSigma
	}
}

// WithProcessNoise sets the acceleration-noise intensity of the simulated
// constant-velocity process. Panics on negative or non-finite values.
func WithProcessNoise(q float64) Option {
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		panic(panicProcessInvalid)
	}
	return func(o *Options) { o.processNoise = q }
}

// gatherOptions applies user setters on top of documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		seed:         0,
		noise:        DefaultNoise,
		sparsity:     0,
		rangeNoise:   DefaultRangeNoise,
		bearingNoise: DefaultBearingNoise,
		processNoise: DefaultProcessNoise,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
