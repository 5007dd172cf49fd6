package modes

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/beamlab/modal/internal/specfunc"
)

// LGBeam describes a Laguerre-Gaussian mode family: a polar-separable
// paraxial basis with a single isotropic waist, centered at the origin by
// construction. Mode indices are (p, m): the radial order p ≥ 0 and the
// azimuthal order m, constrained here to the non-negative range iterated by
// the decomposition.
//
// The Laguerre-Gaussian basis does not support the asymmetric-mode shortcut
// that HGBeam exposes: the (p, m) indices are not interchangeable axis
// orders, so no such method parameter exists.
type LGBeam struct {
	W0         float64 // waist size at focus (meters)
	Wavelength float64 // (meters)
}

func (b LGBeam) validate() error {
	if b.W0 <= 0 {
		return fmt.Errorf("%w: waist size must be positive, got %g", ErrInvalidInput, b.W0)
	}
	if b.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidInput, b.Wavelength)
	}
	return nil
}

// Evaluate returns the analytic field of the single mode (p, m) on the grid
// at longitudinal position z. The result is shaped [rows=len(Y), cols=len(X)]
// like every field in this package; the polar radius and azimuth are derived
// from the meshed Cartesian grid.
func (b LGBeam) Evaluate(g *Grid, z float64, p, m int) (*Field, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if p < 0 || m < 0 {
		return nil, fmt.Errorf("%w: mode orders must be non-negative, got (%d, %d)", ErrInvalidInput, p, m)
	}

	k0 := 2 * math.Pi / b.Wavelength
	zr := math.Pi * b.W0 * b.W0 / b.Wavelength
	wz := b.W0 * math.Sqrt(1+(z/zr)*(z/zr))

	norm := math.Sqrt(2*specfunc.Factorial(p)/(math.Pi*specfunc.Factorial(m+p))) / wz
	gouy := (2*float64(p) + float64(m) + 1) * math.Atan2(z, zr)
	curv := k0 * z / (2 * (z*z + zr*zr))
	propPhase := cmplx.Exp(complex(0, gouy))

	f := NewField(g)
	for r, y := range g.Y {
		for c, x := range g.X {
			r2 := x*x + y*y
			amp := norm *
				math.Pow(math.Sqrt2*math.Sqrt(r2)/wz, float64(m)) *
				specfunc.LaguerreAssoc(p, m, 2*r2/(wz*wz)) *
				math.Exp(-r2/(wz*wz))
			phase := cmplx.Exp(complex(0, -curv*r2-float64(m)*math.Atan2(y, x)))
			f.Set(r, c, complex(amp, 0)*phase*propPhase)
		}
	}
	return f, nil
}

// Project computes the complex overlap coefficient of mode (p, m) in the
// given field via the discrete inner product ∑ field·conj(mode)·Δx·Δy.
func (b LGBeam) Project(g *Grid, z float64, field *Field, p, m int) (complex128, error) {
	if !field.Matches(g) {
		return 0, fmt.Errorf("%w: field shape does not match grid", ErrInvalidInput)
	}
	mode, err := b.Evaluate(g, z, p, m)
	if err != nil {
		return 0, err
	}
	return overlap(g, field, mode), nil
}

// Decompose projects the field onto every mode (p, m) with 0 ≤ p < maxP and
// 0 ≤ m < maxM, returning the full dense coefficient grid.
func (b LGBeam) Decompose(g *Grid, z float64, field *Field, maxP, maxM int) (*Coefficients, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if !field.Matches(g) {
		return nil, fmt.Errorf("%w: field shape does not match grid", ErrInvalidInput)
	}
	coeffs, err := NewCoefficients(maxP, maxM)
	if err != nil {
		return nil, err
	}
	for p := 0; p < maxP; p++ {
		for m := 0; m < maxM; m++ {
			c, err := b.Project(g, z, field, p, m)
			if err != nil {
				return nil, err
			}
			coeffs.set(p, m, c)
		}
	}
	return coeffs, nil
}

// Reconstruct rebuilds a field at plane z as the superposition
// ∑ c_pm · mode_pm. Zero coefficients are skipped; they contribute nothing
// either way.
func (b LGBeam) Reconstruct(g *Grid, z float64, coeffs *Coefficients) (*Field, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	f := NewField(g)
	maxP, maxM := coeffs.Dims()
	for p := 0; p < maxP; p++ {
		for m := 0; m < maxM; m++ {
			c := coeffs.At(p, m)
			if c == 0 {
				continue
			}
			mode, err := b.Evaluate(g, z, p, m)
			if err != nil {
				return nil, err
			}
			f.addScaled(c, mode)
		}
	}
	return f, nil
}
