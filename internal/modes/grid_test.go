package modes

import (
	"errors"
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	x := Linspace(-50e-6, 50e-6, 256)
	if len(x) != 256 {
		t.Fatalf("expected 256 points, got %d", len(x))
	}
	if x[0] != -50e-6 || x[255] != 50e-6 {
		t.Errorf("endpoints = (%g, %g), want (±50µm)", x[0], x[255])
	}
	// Symmetric about zero.
	for i := 0; i < 128; i++ {
		if math.Abs(x[i]+x[255-i]) > 1e-18 {
			t.Fatalf("grid not symmetric at i=%d: %g vs %g", i, x[i], x[255-i])
		}
	}
}

func TestNewGrid_Spacing(t *testing.T) {
	g, err := NewGrid(Linspace(0, 9, 10), Linspace(0, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Dx()-1) > 1e-12 {
		t.Errorf("Dx = %g, want 1", g.Dx())
	}
	if math.Abs(g.Dy()-1) > 1e-12 {
		t.Errorf("Dy = %g, want 1", g.Dy())
	}
	rows, cols := g.Dims()
	if rows != 5 || cols != 10 {
		t.Errorf("Dims = (%d, %d), want (5, 10)", rows, cols)
	}
}

func TestNewGrid_NearUniformSpacingIsMean(t *testing.T) {
	// Slightly jittered axis: spacing is the mean consecutive difference,
	// which telescopes to (last−first)/(n−1).
	x := []float64{0, 1.1, 1.9, 3.0}
	g, err := NewGrid(x, Linspace(0, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Dx()-1.0) > 1e-12 {
		t.Errorf("Dx = %g, want 1.0", g.Dx())
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
	}{
		{"nil x", nil, Linspace(0, 1, 4)},
		{"single point", []float64{1}, Linspace(0, 1, 4)},
		{"nan coordinate", []float64{0, math.NaN(), 2}, Linspace(0, 1, 4)},
		{"zero extent", []float64{1, 1, 1}, Linspace(0, 1, 4)},
		{"bad y", Linspace(0, 1, 4), []float64{0, math.Inf(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewGrid(c.x, c.y); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
