package modes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coefficients holds the complex modal amplitudes of a decomposition over the
// full rectangular truncation grid 0 ≤ i < MaxI, 0 ≤ j < MaxJ. The index pair
// is (nx, ny) for the Hermite-Gaussian basis and (p, m) for the
// Laguerre-Gaussian basis.
//
// The grid is dense: every index pair below the truncation bound has an
// entry, including pairs a decomposition skipped (those are exact zeros).
// Coefficients are populated once by Decompose and are read-only afterwards;
// Reconstruct never mutates them.
type Coefficients struct {
	maxI, maxJ int
	c          *mat.CDense
}

// NewCoefficients returns a zero-filled coefficient grid for the given
// truncation bounds.
func NewCoefficients(maxI, maxJ int) (*Coefficients, error) {
	if maxI < 1 || maxJ < 1 {
		return nil, fmt.Errorf("%w: truncation bounds must be at least 1, got (%d, %d)", ErrInvalidInput, maxI, maxJ)
	}
	return &Coefficients{maxI: maxI, maxJ: maxJ, c: mat.NewCDense(maxI, maxJ, nil)}, nil
}

// Dims returns the truncation bounds (MaxI, MaxJ).
func (co *Coefficients) Dims() (maxI, maxJ int) { return co.maxI, co.maxJ }

// At returns the complex amplitude of mode (i, j).
func (co *Coefficients) At(i, j int) complex128 { return co.c.At(i, j) }

// Power returns |c_ij|², the relative power carried by mode (i, j).
func (co *Coefficients) Power(i, j int) float64 {
	v := co.c.At(i, j)
	return real(v)*real(v) + imag(v)*imag(v)
}

// TotalPower returns ∑|c_ij|² over the whole truncation grid.
func (co *Coefficients) TotalPower() float64 {
	sum := 0.0
	for i := 0; i < co.maxI; i++ {
		for j := 0; j < co.maxJ; j++ {
			sum += co.Power(i, j)
		}
	}
	return sum
}

// set is unexported: only decomposition populates the grid.
func (co *Coefficients) set(i, j int, v complex128) { co.c.Set(i, j, v) }
