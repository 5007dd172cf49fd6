package modes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid holds the sampled transverse-plane coordinates on which fields are
// evaluated. X and Y are independent 1D coordinate axes in meters; the field
// arrays produced over a Grid are shaped [rows=len(Y), cols=len(X)] so that
// element (r, c) sits at (X[c], Y[r]).
//
// The axes are assumed strictly monotonic with near-uniform spacing. Spacing
// is taken as the mean consecutive difference, which tolerates slightly
// irregular sampling; strongly irregular grids silently degrade projection
// accuracy rather than raising an error.
type Grid struct {
	X, Y []float64

	dx, dy float64
}

// NewGrid validates the coordinate axes and computes the mean spacing. The
// slices are retained, not copied; callers must not mutate them afterwards.
func NewGrid(x, y []float64) (*Grid, error) {
	dx, err := meanSpacing("x", x)
	if err != nil {
		return nil, err
	}
	dy, err := meanSpacing("y", y)
	if err != nil {
		return nil, err
	}
	return &Grid{X: x, Y: y, dx: dx, dy: dy}, nil
}

// Linspace returns n evenly spaced coordinates from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, stop)
}

// Dx returns the mean consecutive spacing of the x axis in meters.
func (g *Grid) Dx() float64 { return g.dx }

// Dy returns the mean consecutive spacing of the y axis in meters.
func (g *Grid) Dy() float64 { return g.dy }

// Dims returns the field shape implied by the grid: rows=len(Y), cols=len(X).
func (g *Grid) Dims() (rows, cols int) { return len(g.Y), len(g.X) }

func meanSpacing(axis string, coords []float64) (float64, error) {
	if len(coords) < 2 {
		return 0, fmt.Errorf("%w: %s axis needs at least 2 points, got %d", ErrInvalidInput, axis, len(coords))
	}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s axis contains non-finite coordinate", ErrInvalidInput, axis)
		}
	}
	// Mean of consecutive differences telescopes to (last-first)/(n-1).
	d := (coords[len(coords)-1] - coords[0]) / float64(len(coords)-1)
	if d == 0 {
		return 0, fmt.Errorf("%w: %s axis has zero extent", ErrInvalidInput, axis)
	}
	return d, nil
}
