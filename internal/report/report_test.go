package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beamlab/modal/internal/modes"
	"github.com/beamlab/modal/internal/monitoring"
)

func smallDecomposition(t *testing.T) *modes.Coefficients {
	t.Helper()
	g, err := modes.NewGrid(modes.Linspace(-50e-6, 50e-6, 32), modes.Linspace(-50e-6, 50e-6, 32))
	if err != nil {
		t.Fatal(err)
	}
	b := modes.HGBeam{Wx: 10e-6, Wy: 10e-6, Wavelength: 800e-9}
	f, err := b.Evaluate(g, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	co, err := b.Decompose(g, 0, f, 2, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	return co
}

func TestWrite_ProducesSpectrumPage(t *testing.T) {
	co := smallDecomposition(t)

	var buf bytes.Buffer
	err := Write(&buf, Spectrum{Title: "HG decomposition", Index1: "nx", Index2: "ny", Coeffs: co})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if len(out) == 0 {
		t.Fatal("empty report")
	}
	for _, want := range []string{"HG decomposition", "(0,0)", "(1,1)", "arg(c)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	monitoring.SetLogger(nil)
	co := smallDecomposition(t)

	path := filepath.Join(t.TempDir(), "spectrum.html")
	if err := WriteFile(path, Spectrum{Title: "LG decomposition", Index1: "p", Index2: "m", Coeffs: co}); err != nil {
		t.Fatal(err)
	}
}
