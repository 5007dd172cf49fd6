package modes

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Field is a complex transverse electric field sampled over a Grid at a fixed
// longitudinal position. It is a plain value type: every operation in this
// package returns a fresh Field and never mutates one it was handed.
//
// The backing matrix is shaped [rows=len(Y), cols=len(X)]; element (r, c) is
// the field amplitude at (X[c], Y[r]).
type Field struct {
	*mat.CDense
}

// NewField returns a zero field shaped for the given grid.
func NewField(g *Grid) *Field {
	rows, cols := g.Dims()
	return &Field{CDense: mat.NewCDense(rows, cols, nil)}
}

// Matches reports whether the field shape agrees with the grid shape.
func (f *Field) Matches(g *Grid) bool {
	if f == nil || f.CDense == nil {
		return false
	}
	rows, cols := f.Dims()
	grows, gcols := g.Dims()
	return rows == grows && cols == gcols
}

// Intensity returns |E|² per sample as a real matrix of the same shape.
func (f *Field) Intensity() *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := f.At(r, c)
			out.Set(r, c, real(v)*real(v)+imag(v)*imag(v))
		}
	}
	return out
}

// Phase returns the wrapped phase angle arg(E) in radians per sample.
func (f *Field) Phase() *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, cmplx.Phase(f.At(r, c)))
		}
	}
	return out
}

// Power returns the discrete integral of |E|² over the grid, ∑|E|²·Δx·Δy.
func (f *Field) Power(g *Grid) float64 {
	rows, cols := f.Dims()
	sum := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := f.At(r, c)
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return sum * g.Dx() * g.Dy()
}

// addScaled accumulates co·m into f in place. Shapes must already agree.
func (f *Field) addScaled(co complex128, m *Field) {
	rows, cols := f.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.Set(r, c, f.At(r, c)+co*m.At(r, c))
		}
	}
}
