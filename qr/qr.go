package qr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Decompose — Householder QR for rectangular matrices.
//
// Algorithm Outline:
//  1. Copy X into a working matrix A; initialize the accumulator Q_acc = I.
//  2. For each column k = 0..n−1:
//     2.1 norm ← ‖A[k:m, k]‖₂; skip the column when it is already zero.
//     2.2 α ← −sign(A[k,k])·norm (sign choice avoids cancellation).
//     2.3 Householder vector v ← A[k:m, k] − α·e_k; τ ← 2/(vᵀv).
//     2.4 Apply the reflection (I − τ·v·vᵀ) to A columns k..n−1 and to
//     every column of Q_acc.
//  3. A now carries R in its top n rows; Q_acc = H_{n-1}···H_0 = Qᵀ.
//
// The tiny sub-diagonal roundoff left in A is zeroed so R() returns an
// exactly triangular factor.
//
// Errors:
//   - ErrNilMatrix       — x is nil.
//   - ErrUnderdetermined — x has fewer rows than columns.
//
// Complexity: O(m·n²) reflections on A plus O(m²·n) accumulating Q.
func Decompose(x *mat.Dense) (*Factorization, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	m, n := x.Dims()
	if m < n {
		return nil, ErrUnderdetermined
	}

	a := mat.DenseCopyOf(x)
	qt := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		qt.Set(i, i, 1)
	}

	v := make([]float64, m)
	for k := 0; k < n; k++ {
		// column norm below the diagonal
		norm := 0.0
		for i := k; i < m; i++ {
			norm += a.At(i, k) * a.At(i, k)
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column; rank deficiency surfaces in Solve
		}

		alpha := -math.Copysign(norm, a.At(k, k))
		for i := k; i < m; i++ {
			v[i] = a.At(i, k)
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		// reflect A columns k..n-1
		for j := k; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * a.At(i, j)
			}
			sum *= tau
			for i := k; i < m; i++ {
				a.Set(i, j, a.At(i, j)-v[i]*sum)
			}
		}

		// accumulate the reflection into Q_acc (left multiplication)
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * qt.At(i, j)
			}
			sum *= tau
			for i := k; i < m; i++ {
				qt.Set(i, j, qt.At(i, j)-v[i]*sum)
			}
		}
	}

	// clear sub-diagonal roundoff so the R factor is exactly triangular
	for j := 0; j < n; j++ {
		for i := j + 1; i < m; i++ {
			a.Set(i, j, 0)
		}
	}

	return &Factorization{m: m, n: n, r: a, qt: qt}, nil
}

// R returns the thin n×n upper-triangular factor.
func (f *Factorization) R() *mat.Dense {
	r := mat.NewDense(f.n, f.n, nil)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			r.Set(i, j, f.r.At(i, j))
		}
	}
	return r
}

// Q returns the thin m×n orthonormal factor (the first n columns of the full Q).
func (f *Factorization) Q() *mat.Dense {
	q := mat.NewDense(f.m, f.n, nil)
	for i := 0; i < f.m; i++ {
		for j := 0; j < f.n; j++ {
			q.Set(i, j, f.qt.At(j, i))
		}
	}
	return q
}

// QFull returns the full m×m orthogonal factor.
func (f *Factorization) QFull() *mat.Dense {
	q := mat.NewDense(f.m, f.m, nil)
	q.Copy(f.qt.T())
	return q
}

// Solve computes the least-squares solution of X·β = b via back substitution
// on R·β = (Qᵀb)[:n].
//
// Errors:
//   - ErrNilMatrix         — b is nil.
//   - ErrDimensionMismatch — len(b) ≠ m.
//   - ErrSingular          — a numerically zero pivot on the diagonal of R.
//
// Complexity: O(m²) for Qᵀb, O(n²) back substitution.
func (f *Factorization) Solve(b *mat.VecDense) (*mat.VecDense, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if b.Len() != f.m {
		return nil, ErrDimensionMismatch
	}

	qtb := mat.NewVecDense(f.m, nil)
	qtb.MulVec(f.qt, b)

	// pivot scale for the singularity test
	maxDiag := 0.0
	for j := 0; j < f.n; j++ {
		if d := math.Abs(f.r.At(j, j)); d > maxDiag {
			maxDiag = d
		}
	}
	if maxDiag == 0 {
		return nil, ErrSingular
	}

	beta := mat.NewVecDense(f.n, nil)
	for j := f.n - 1; j >= 0; j-- {
		pivot := f.r.At(j, j)
		if math.Abs(pivot) <= singularTol*maxDiag {
			return nil, ErrSingular
		}
		sum := qtb.AtVec(j)
		for l := j + 1; l < f.n; l++ {
			sum -= f.r.At(j, l) * beta.AtVec(l)
		}
		beta.SetVec(j, sum/pivot)
	}
	return beta, nil
}
