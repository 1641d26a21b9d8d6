package ekf

import (
	"gonum.org/v1/gonum/mat"
)

// Filter carries the Gaussian belief (x, P) over the model's state.
// A Filter is not safe for concurrent use; run one per trajectory.
type Filter struct {
	model  Model
	nx, nz int
	x      *mat.VecDense
	p      *mat.Dense // kept explicitly symmetric after every step
}

// New creates a filter with initial mean x0 and covariance p0.
//
// Errors:
//   - ErrNilModel          — model is nil.
//   - ErrNilInput          — x0 or p0 is nil.
//   - ErrDimensionMismatch — x0 or p0 disagrees with model.Dims().
func New(model Model, x0 *mat.VecDense, p0 mat.Symmetric) (*Filter, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if x0 == nil || p0 == nil {
		return nil, ErrNilInput
	}
	nx, nz := model.Dims()
	if x0.Len() != nx || p0.SymmetricDim() != nx {
		return nil, ErrDimensionMismatch
	}

	x := mat.NewVecDense(nx, nil)
	x.CopyVec(x0)
	p := mat.NewDense(nx, nx, nil)
	for i := 0; i < nx; i++ {
		for j := 0; j < nx; j++ {
			p.Set(i, j, p0.At(i, j))
		}
	}
	return &Filter{model: model, nx: nx, nz: nz, x: x, p: p}, nil
}

// Predict propagates the belief through the process model:
//
//	x ← f(x, u)
//	P ← F·P·Fᵀ + Q
//
// u may be nil for autonomous models.
//
// Errors:
//   - ErrDimensionMismatch — the model returned wrongly sized f or F.
func (f *Filter) Predict(u *mat.VecDense) error {
	next := f.model.Transition(f.x, u)
	if next == nil || next.Len() != f.nx {
		return ErrDimensionMismatch
	}
	jac := f.model.TransitionJacobian(f.x, u)
	if jac == nil {
		return ErrDimensionMismatch
	}
	if r, c := jac.Dims(); r != f.nx || c != f.nx {
		return ErrDimensionMismatch
	}

	f.x.CopyVec(next)

	// P = F P Fᵀ + Q
	var fp, fpft mat.Dense
	fp.Mul(jac, f.p)
	fpft.Mul(&fp, jac.T())
	q := f.model.ProcessNoise()
	for i := 0; i < f.nx; i++ {
		for j := 0; j < f.nx; j++ {
			f.p.Set(i, j, fpft.At(i, j)+q.At(i, j))
		}
	}
	f.symmetrize()
	return nil
}

// Update corrects the belief with measurement z:
//
//	y ← z − h(x)                (normalized via InnovationNormalizer if any)
//	S ← H·P·Hᵀ + R
//	K ← P·Hᵀ·S⁻¹
//	x ← x + K·y
//	P ← (I−K·H)·P·(I−K·H)ᵀ + K·R·Kᵀ   (Joseph form)
//
// The Joseph form costs one extra product but keeps P symmetric positive
// semi-definite under roundoff, unlike the textbook (I−KH)·P.
//
// Errors:
//   - ErrNilInput           — z is nil.
//   - ErrDimensionMismatch  — z or a model return has the wrong size.
//   - ErrSingularInnovation — S could not be factorized.
func (f *Filter) Update(z *mat.VecDense) error {
	if z == nil {
		return ErrNilInput
	}
	if z.Len() != f.nz {
		return ErrDimensionMismatch
	}
	zhat := f.model.Measurement(f.x)
	if zhat == nil || zhat.Len() != f.nz {
		return ErrDimensionMismatch
	}
	h := f.model.MeasurementJacobian(f.x)
	if h == nil {
		return ErrDimensionMismatch
	}
	if r, c := h.Dims(); r != f.nz || c != f.nx {
		return ErrDimensionMismatch
	}

	// innovation
	y := mat.NewVecDense(f.nz, nil)
	y.SubVec(z, zhat)
	if norm, ok := f.model.(InnovationNormalizer); ok {
		norm.NormalizeInnovation(y)
	}

	// S = H P Hᵀ + R
	rNoise := f.model.MeasurementNoise()
	var hp, hpht mat.Dense
	hp.Mul(h, f.p)
	hpht.Mul(&hp, h.T())
	s := mat.NewSymDense(f.nz, nil)
	for i := 0; i < f.nz; i++ {
		for j := i; j < f.nz; j++ {
			s.SetSym(i, j, 0.5*(hpht.At(i, j)+hpht.At(j, i))+rNoise.At(i, j))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return ErrSingularInnovation
	}
	var sInv mat.SymDense
	if err := chol.InverseTo(&sInv); err != nil {
		return ErrSingularInnovation
	}

	// K = P Hᵀ S⁻¹
	var pht, k mat.Dense
	pht.Mul(f.p, h.T())
	k.Mul(&pht, &sInv)

	// x ← x + K y
	ky := mat.NewVecDense(f.nx, nil)
	ky.MulVec(&k, y)
	f.x.AddVec(f.x, ky)

	// Joseph form: P ← (I−KH) P (I−KH)ᵀ + K R Kᵀ
	var kh mat.Dense
	kh.Mul(&k, h)
	ikh := mat.NewDense(f.nx, f.nx, nil)
	for i := 0; i < f.nx; i++ {
		for j := 0; j < f.nx; j++ {
			v := -kh.At(i, j)
			if i == j {
				v++
			}
			ikh.Set(i, j, v)
		}
	}
	var ip, ipi, kr, krk mat.Dense
	ip.Mul(ikh, f.p)
	ipi.Mul(&ip, ikh.T())
	kr.Mul(&k, rNoise)
	krk.Mul(&kr, k.T())
	f.p.Add(&ipi, &krk)
	f.symmetrize()
	return nil
}

// State returns a copy of the current mean.
func (f *Filter) State() *mat.VecDense {
	out := mat.NewVecDense(f.nx, nil)
	out.CopyVec(f.x)
	return out
}

// Covariance returns a copy of the current covariance.
func (f *Filter) Covariance() *mat.SymDense {
	out := mat.NewSymDense(f.nx, nil)
	for i := 0; i < f.nx; i++ {
		for j := i; j < f.nx; j++ {
			out.SetSym(i, j, f.p.At(i, j))
		}
	}
	return out
}

// Run drives one Predict/Update cycle per row of measurements (steps×nz) and
// returns the filtered means as a steps×nx matrix. The model is treated as
// autonomous (u = nil).
//
// Errors: everything Predict and Update report, plus ErrNilInput for a nil
// measurement matrix and ErrDimensionMismatch for wrong column counts.
func (f *Filter) Run(measurements *mat.Dense) (*mat.Dense, error) {
	if measurements == nil {
		return nil, ErrNilInput
	}
	steps, cols := measurements.Dims()
	if cols != f.nz {
		return nil, ErrDimensionMismatch
	}

	states := mat.NewDense(steps, f.nx, nil)
	z := mat.NewVecDense(f.nz, nil)
	for k := 0; k < steps; k++ {
		if err := f.Predict(nil); err != nil {
			return nil, err
		}
		for j := 0; j < f.nz; j++ {
			z.SetVec(j, measurements.At(k, j))
		}
		if err := f.Update(z); err != nil {
			return nil, err
		}
		for j := 0; j < f.nx; j++ {
			states.Set(k, j, f.x.AtVec(j))
		}
	}
	return states, nil
}

// symmetrize removes the roundoff asymmetry accumulated by dense products.
func (f *Filter) symmetrize() {
	for i := 0; i < f.nx; i++ {
		for j := i + 1; j < f.nx; j++ {
			v := 0.5 * (f.p.At(i, j) + f.p.At(j, i))
			f.p.Set(i, j, v)
			f.p.Set(j, i, v)
		}
	}
}
