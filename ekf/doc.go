// Package ekf implements a reusable Extended Kalman Filter: a recursive
// Bayesian state estimator for nonlinear process and observation models.
//
// 🚀 What is an EKF?
//
//	The Kalman filter propagates a Gaussian belief (mean x, covariance P)
//	through a linear state-space model.  The extended variant handles
//	nonlinear models by linearizing them at the current estimate: the model
//	supplies f, h and their Jacobians F, H, and the filter alternates
//	Predict (propagate through f) and Update (correct with a measurement
//	through h).
//
// ✨ Key features:
//   - model-agnostic: any type implementing Model plugs in
//   - Joseph-form covariance update keeps P symmetric positive
//     semi-definite under roundoff
//   - optional innovation normalization hook for angular measurements
//     (implement InnovationNormalizer to wrap bearings)
//   - Run drives a whole measurement sequence and returns the state history
//   - ships RangeBearingCV, a constant-velocity vehicle observed by a
//     range–bearing sensor at the origin
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numopt/ekf"
//
//	model, _ := ekf.NewRangeBearingCV(0.5, 0.05, 0.5, 0.02)
//	f, _ := ekf.New(model, x0, p0)
//	for _, z := range measurements {
//	  _ = f.Predict(nil)
//	  _ = f.Update(z)
//	}
//
// The filter never retains references to caller-owned vectors; State and
// Covariance return copies.
package ekf
