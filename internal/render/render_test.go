package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/beamlab/modal/internal/modes"
	"github.com/beamlab/modal/internal/monitoring"
	"github.com/beamlab/modal/internal/units"
)

func TestUnwrap(t *testing.T) {
	// A linear phase ramp wrapped into (−π, π] must come back continuous.
	n := 50
	wrapped := make([]float64, n)
	want := make([]float64, n)
	for i := 0; i < n; i++ {
		phi := 0.4 * float64(i)
		want[i] = phi
		wrapped[i] = math.Atan2(math.Sin(phi), math.Cos(phi))
	}
	Unwrap(wrapped)
	// Unwrapping recovers the ramp up to a constant 2π multiple.
	shift := wrapped[0] - want[0]
	for i := range wrapped {
		if math.Abs(wrapped[i]-want[i]-shift) > 1e-9 {
			t.Fatalf("unwrap failed at %d: got %g, want %g", i, wrapped[i], want[i]+shift)
		}
	}
}

func TestUnwrap_NoJumpsUntouched(t *testing.T) {
	p := []float64{0, 0.1, 0.3, 0.2, -0.4}
	orig := append([]float64(nil), p...)
	Unwrap(p)
	for i := range p {
		if p[i] != orig[i] {
			t.Fatalf("continuous sequence modified at %d", i)
		}
	}
}

func TestNewRenderer_RejectsUnknownUnits(t *testing.T) {
	if _, err := NewRenderer(t.TempDir(), "parsec"); err == nil {
		t.Error("expected error for unknown units")
	}
}

func TestRenderField_WritesImages(t *testing.T) {
	monitoring.SetLogger(nil) // mute render progress logs

	g, err := modes.NewGrid(modes.Linspace(-50e-6, 50e-6, 32), modes.Linspace(-50e-6, 50e-6, 32))
	if err != nil {
		t.Fatal(err)
	}
	b := modes.HGBeam{Wx: 10e-6, Wy: 10e-6, Wavelength: 800e-9}
	f, err := b.Evaluate(g, 100e-6, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	r, err := NewRenderer(dir, units.Micrometers)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderField("hg_1_0", g, f); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"hg_1_0_intensity.png", "hg_1_0_phase.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
