package modes

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/beamlab/modal/internal/specfunc"
)

// HGBeam describes a Hermite-Gaussian mode family: a Cartesian-separable
// paraxial basis with independent waist sizes per axis and a transverse
// center offset. Mode indices are (nx, ny), the polynomial orders along x
// and y.
//
// All methods are pure functions of their inputs; derived quantities
// (Rayleigh lengths, normalization) are recomputed per call.
type HGBeam struct {
	X0, Y0     float64 // transverse center offset (meters)
	Wx, Wy     float64 // waist sizes at focus per axis (meters)
	Wavelength float64 // (meters)
}

func (b HGBeam) validate() error {
	if b.Wx <= 0 || b.Wy <= 0 {
		return fmt.Errorf("%w: waist sizes must be positive, got wx=%g wy=%g", ErrInvalidInput, b.Wx, b.Wy)
	}
	if b.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidInput, b.Wavelength)
	}
	return nil
}

// Evaluate returns the analytic field of the single mode (nx, ny) on the grid
// at longitudinal position z. z may be negative or zero; z=0 is the waist
// plane, where the curvature phase and Gouy phase vanish and the beam sizes
// equal the input waists.
func (b HGBeam) Evaluate(g *Grid, z float64, nx, ny int) (*Field, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if nx < 0 || ny < 0 {
		return nil, fmt.Errorf("%w: mode orders must be non-negative, got (%d, %d)", ErrInvalidInput, nx, ny)
	}

	k0 := 2 * math.Pi / b.Wavelength
	hx, phiX := hgAxisFactor(g.X, b.X0, b.Wx, z, k0, b.Wavelength, nx)
	hy, phiY := hgAxisFactor(g.Y, b.Y0, b.Wy, z, k0, b.Wavelength, ny)

	// Outer product of the axis factors times the combined propagation phase.
	phase := cmplx.Exp(complex(0, phiX+phiY))
	f := NewField(g)
	for r := range hy {
		for c := range hx {
			f.Set(r, c, hx[c]*hy[r]*phase)
		}
	}
	return f, nil
}

// hgAxisFactor evaluates the 1D Hermite-Gaussian factor along one axis and
// returns it together with the axis Gouy phase (n+½)·atan2(z, Z).
func hgAxisFactor(coords []float64, offset, w, z, k0, wavelength float64, n int) ([]complex128, float64) {
	zr := math.Pi * w * w / wavelength
	wz := w * math.Sqrt(1+(z/zr)*(z/zr))

	norm := 1 / math.Sqrt(wz*math.Pow(2, float64(n)-0.5)*specfunc.Factorial(n)*math.Sqrt(math.Pi))
	gouy := (float64(n) + 0.5) * math.Atan2(z, zr)

	// Wavefront curvature: exp(−i·k0·u²·z / (2(z²+Z²))).
	curv := k0 * z / (2 * (z*z + zr*zr))

	out := make([]complex128, len(coords))
	for i, coord := range coords {
		u := coord - offset
		amp := norm * specfunc.HermitePhys(n, math.Sqrt2*u/wz) * math.Exp(-u*u/(wz*wz))
		out[i] = complex(amp, 0) * cmplx.Exp(complex(0, -curv*u*u))
	}
	return out, gouy
}

// Project computes the complex overlap coefficient of mode (nx, ny) in the
// given field via the discrete inner product ∑ field·conj(mode)·Δx·Δy. The
// sum approximates the continuous overlap integral; accuracy degrades
// silently on irregular grids.
func (b HGBeam) Project(g *Grid, z float64, field *Field, nx, ny int) (complex128, error) {
	if !field.Matches(g) {
		return 0, fmt.Errorf("%w: field shape does not match grid", ErrInvalidInput)
	}
	mode, err := b.Evaluate(g, z, nx, ny)
	if err != nil {
		return 0, err
	}
	return overlap(g, field, mode), nil
}

// Decompose projects the field onto every mode (i, j) with 0 ≤ i < maxNx and
// 0 ≤ j < maxNy, returning the full dense coefficient grid.
//
// When skipAsymmetric is true, pairs with i ≠ j are assigned exact zero
// without evaluating the projection integral. That is a policy shortcut for
// symmetric input fields, not a mathematical guarantee of zero coupling.
func (b HGBeam) Decompose(g *Grid, z float64, field *Field, maxNx, maxNy int, skipAsymmetric bool) (*Coefficients, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if !field.Matches(g) {
		return nil, fmt.Errorf("%w: field shape does not match grid", ErrInvalidInput)
	}
	coeffs, err := NewCoefficients(maxNx, maxNy)
	if err != nil {
		return nil, err
	}
	for i := 0; i < maxNx; i++ {
		for j := 0; j < maxNy; j++ {
			if skipAsymmetric && i != j {
				continue // entry stays exact zero
			}
			c, err := b.Project(g, z, field, i, j)
			if err != nil {
				return nil, err
			}
			coeffs.set(i, j, c)
		}
	}
	return coeffs, nil
}

// Reconstruct rebuilds a field at plane z as the superposition
// ∑ c_ij · mode_ij. Zero coefficients contribute nothing, so explicit-zero
// and skipped entries reconstruct identically; they are not evaluated. When
// skipAsymmetric is true, entries with i ≠ j are ignored regardless of value.
func (b HGBeam) Reconstruct(g *Grid, z float64, coeffs *Coefficients, skipAsymmetric bool) (*Field, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	f := NewField(g)
	maxI, maxJ := coeffs.Dims()
	for i := 0; i < maxI; i++ {
		for j := 0; j < maxJ; j++ {
			if skipAsymmetric && i != j {
				continue
			}
			c := coeffs.At(i, j)
			if c == 0 {
				continue
			}
			mode, err := b.Evaluate(g, z, i, j)
			if err != nil {
				return nil, err
			}
			f.addScaled(c, mode)
		}
	}
	return f, nil
}

// overlap is the discrete inner product ∑ field·conj(mode)·Δx·Δy.
func overlap(g *Grid, field, mode *Field) complex128 {
	rows, cols := field.Dims()
	sum := complex(0, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sum += field.At(r, c) * cmplx.Conj(mode.At(r, c))
		}
	}
	return sum * complex(g.Dx()*g.Dy(), 0)
}
