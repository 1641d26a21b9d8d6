package glasso

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Covariance returns the empirical covariance of samples, one observation
// per row, one variable per column.
//
// Errors: ErrNilMatrix when samples is nil, ErrBadShape when there are
// fewer than two observations or fewer than two variables.
func Covariance(samples *mat.Dense) (*mat.SymDense, error) {
	if samples == nil {
		return nil, ErrNilMatrix
	}
	n, p := samples.Dims()
	if n < 2 || p < 2 {
		return nil, ErrBadShape
	}
	cov := mat.NewSymDense(p, nil)
	stat.CovarianceMatrix(cov, samples, nil)
	return cov, nil
}

// Solve estimates a sparse precision matrix from the covariance s with
// ℓ₁ penalty lambda, using block coordinate descent over columns: the
// working covariance starts at W = S + λI and each column is refit by a
// lasso regression of that variable on the remaining ones, whose
// coefficients also yield the matching precision column at the end.
//
// lambda = 0 recovers the plain inverse covariance (s must be positive
// definite); large lambda drives every off-diagonal entry to exactly
// zero. Reaching MaxIter without meeting the change criterion is not an
// error: the result is returned with Converged = false.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNegativeLambda, ErrBadOptions,
// and ErrNotPositiveDefinite when the working covariance degenerates.
func Solve(s *mat.SymDense, lambda float64, opts Options) (*Result, error) {
	if s == nil {
		return nil, ErrNilMatrix
	}
	p := s.SymmetricDim()
	if p < 2 {
		return nil, ErrBadShape
	}
	if lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for k := 0; k < p; k++ {
		if s.At(k, k)+lambda <= 0 {
			return nil, ErrNotPositiveDefinite
		}
	}

	// Working covariance W = S + λI; the diagonal is fixed for the whole
	// run, only the off-diagonal blocks are refit.
	w := mat.NewSymDense(p, nil)
	w.CopySym(s)
	for k := 0; k < p; k++ {
		w.SetSym(k, k, s.At(k, k)+lambda)
	}

	// betas holds the lasso coefficients of each column subproblem;
	// column j is warm-started across outer sweeps.
	betas := mat.NewDense(p, p, nil)

	// The stopping threshold scales with the off-diagonal mass of S, so
	// Tol means the same thing across differently scaled problems.
	threshold := opts.Tol * meanOffDiag(s)

	res := &Result{}
	for it := 1; it <= opts.MaxIter; it++ {
		res.Iterations = it
		var delta float64
		for j := 0; j < p; j++ {
			lassoColumn(w, s, betas, j, lambda, opts)
			// w12 = W11·β replaces column j of W off the diagonal.
			for k := 0; k < p; k++ {
				if k == j {
					continue
				}
				var wkj float64
				for l := 0; l < p; l++ {
					if l == j {
						continue
					}
					if b := betas.At(l, j); b != 0 {
						wkj += w.At(k, l) * b
					}
				}
				delta += math.Abs(wkj - w.At(k, j))
				w.SetSym(k, j, wkj)
			}
		}
		if delta/float64(p*(p-1)) <= threshold {
			res.Converged = true
			break
		}
	}

	// Recover the precision matrix column by column:
	//   θ_jj = 1 / (w_jj − w12ᵀβ),  θ_kj = −β_k · θ_jj.
	theta := mat.NewSymDense(p, nil)
	for j := 0; j < p; j++ {
		var dot float64
		for k := 0; k < p; k++ {
			if k != j {
				dot += w.At(k, j) * betas.At(k, j)
			}
		}
		denom := w.At(j, j) - dot
		if denom <= 0 {
			return nil, ErrNotPositiveDefinite
		}
		theta.SetSym(j, j, 1/denom)
	}
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			a := -betas.At(i, j) * theta.At(j, j)
			b := -betas.At(j, i) * theta.At(i, i)
			// Exact zeros from the soft-threshold are kept exact.
			if a == 0 || b == 0 {
				theta.SetSym(i, j, 0)
				continue
			}
			theta.SetSym(i, j, 0.5*(a+b))
		}
	}

	res.Precision = theta
	res.Covariance = mat.NewSymDense(p, nil)
	res.Covariance.CopySym(w)
	return res, nil
}

// lassoColumn solves the j-th subproblem
//
//	minimize ½ βᵀW11β − s12ᵀβ + λ‖β‖₁
//
// by cyclic coordinate descent with soft-thresholding, updating column j
// of betas in place.
func lassoColumn(w, s *mat.SymDense, betas *mat.Dense, j int, lambda float64, opts Options) {
	p := s.SymmetricDim()
	for sweep := 0; sweep < opts.InnerMaxIter; sweep++ {
		var maxStep float64
		for k := 0; k < p; k++ {
			if k == j {
				continue
			}
			// Partial residual against the current coefficients.
			r := s.At(k, j)
			for l := 0; l < p; l++ {
				if l == j || l == k {
					continue
				}
				if b := betas.At(l, j); b != 0 {
					r -= w.At(k, l) * b
				}
			}
			next := softThreshold(r, lambda) / w.At(k, k)
			if step := math.Abs(next - betas.At(k, j)); step > maxStep {
				maxStep = step
			}
			betas.Set(k, j, next)
		}
		if maxStep < opts.InnerTol {
			return
		}
	}
}

// softThreshold is the scalar lasso proximal map sign(x)·max(|x|−t, 0).
func softThreshold(x, t float64) float64 {
	switch {
	case x > t:
		return x - t
	case x < -t:
		return x + t
	default:
		return 0
	}
}

// meanOffDiag is the mean absolute off-diagonal entry of s.
func meanOffDiag(s *mat.SymDense) float64 {
	p := s.SymmetricDim()
	var sum float64
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			sum += math.Abs(s.At(i, j))
		}
	}
	return 2 * sum / float64(p*(p-1))
}
