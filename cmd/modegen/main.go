// Command modegen renders a gallery of Hermite-Gaussian and Laguerre-Gaussian
// mode images: for every index pair below the requested maximum it evaluates
// the analytic mode and writes intensity and unwrapped-phase PNGs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beamlab/modal/internal/modes"
	"github.com/beamlab/modal/internal/monitoring"
	"github.com/beamlab/modal/internal/render"
	"github.com/beamlab/modal/internal/units"
)

func main() {
	outBase := flag.String("out", "img", "Base output directory for rendered images")
	basis := flag.String("basis", "both", "Mode basis to render: hg, lg, or both")
	maxOrder := flag.Int("max-order", 10, "Render all index pairs (i, j) with i, j below this bound")
	points := flag.Int("points", 256, "Samples per transverse axis")
	windowUm := flag.Float64("window-um", 50, "Transverse half-window in micrometers")
	zUm := flag.Float64("z-um", 100, "Longitudinal evaluation position in micrometers")
	waistUm := flag.Float64("waist-um", 10, "Beam waist at focus in micrometers")
	wavelengthNm := flag.Float64("wavelength-nm", 800, "Wavelength in nanometers")
	flag.Parse()

	if *basis != "hg" && *basis != "lg" && *basis != "both" {
		fmt.Fprintf(os.Stderr, "invalid -basis %q: want hg, lg, or both\n", *basis)
		os.Exit(1)
	}

	window := *windowUm * 1e-6
	z := *zUm * 1e-6
	waist := *waistUm * 1e-6
	wavelength := *wavelengthNm * 1e-9

	g, err := modes.NewGrid(
		modes.Linspace(-window, window, *points),
		modes.Linspace(-window, window, *points),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grid error: %v\n", err)
		os.Exit(1)
	}

	runDir := render.RunDir(*outBase)
	hg := modes.HGBeam{Wx: waist, Wy: waist, Wavelength: wavelength}
	lg := modes.LGBeam{W0: waist, Wavelength: wavelength}

	total := *maxOrder * *maxOrder
	count := 0
	for n := 0; n < *maxOrder; n++ {
		for m := 0; m < *maxOrder; m++ {
			count++
			monitoring.Logf("rendering mode %d/%d", count, total)

			if *basis == "hg" || *basis == "both" {
				if err := renderMode(filepath.Join(runDir, "HG"), g, fmt.Sprintf("%d_%d", m, n), func() (*modes.Field, error) {
					return hg.Evaluate(g, z, m, n)
				}); err != nil {
					fmt.Fprintf(os.Stderr, "HG(%d,%d): %v\n", m, n, err)
					os.Exit(1)
				}
			}
			if *basis == "lg" || *basis == "both" {
				if err := renderMode(filepath.Join(runDir, "LG"), g, fmt.Sprintf("%d_%d", m, n), func() (*modes.Field, error) {
					return lg.Evaluate(g, z, m, n)
				}); err != nil {
					fmt.Fprintf(os.Stderr, "LG(%d,%d): %v\n", m, n, err)
					os.Exit(1)
				}
			}
		}
	}
	monitoring.Logf("gallery complete: %s", runDir)
}

func renderMode(dir string, g *modes.Grid, name string, eval func() (*modes.Field, error)) error {
	f, err := eval()
	if err != nil {
		return err
	}
	r, err := render.NewRenderer(dir, units.Micrometers)
	if err != nil {
		return err
	}
	return r.RenderField(name, g, f)
}
