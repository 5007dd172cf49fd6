// Package render turns evaluated fields into intensity and unwrapped-phase
// heatmap images. It is a presentation collaborator: it only reads fields and
// imposes no contract back on the mode-basis core.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/beamlab/modal/internal/modes"
	"github.com/beamlab/modal/internal/monitoring"
	"github.com/beamlab/modal/internal/units"
)

// Renderer writes field images into a single output directory.
type Renderer struct {
	outputDir string
	axisUnits string
}

// NewRenderer creates the output directory and returns a renderer whose axis
// labels use the given length units (see the units package).
func NewRenderer(outputDir, axisUnits string) (*Renderer, error) {
	if !units.IsValid(axisUnits) {
		return nil, fmt.Errorf("unknown axis units %q", axisUnits)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Renderer{outputDir: outputDir, axisUnits: axisUnits}, nil
}

// RunDir returns a timestamped directory path under base for one render run,
// e.g. "img/20260828_141500".
func RunDir(base string) string {
	return filepath.Join(base, time.Now().Format("20060102_150405"))
}

// RenderField writes <name>_intensity.png and <name>_phase.png for the field.
// Intensity is |E|²; phase is the row-wise unwrapped angle in units of 2π.
func (r *Renderer) RenderField(name string, g *modes.Grid, f *modes.Field) error {
	if err := r.renderMatrix(name+"_intensity.png", "Intensity", g, f.Intensity()); err != nil {
		return err
	}
	phase := f.Phase()
	UnwrapRows(phase)
	phase.Scale(1/(2*math.Pi), phase)
	if err := r.renderMatrix(name+"_phase.png", "Phase", g, phase); err != nil {
		return err
	}
	monitoring.Logf("rendered %s into %s", name, r.outputDir)
	return nil
}

// renderMatrix plots one real matrix as a heatmap PNG.
func (r *Renderer) renderMatrix(filename, title string, g *modes.Grid, m *mat.Dense) error {
	grid := &fieldGrid{g: g, m: m, scale: units.ConvertLength(1, r.axisUnits)}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("x [%s]", unitSuffix(r.axisUnits))
	p.Y.Label.Text = fmt.Sprintf("y [%s]", unitSuffix(r.axisUnits))
	p.Add(plotter.NewHeatMap(grid, palette.Heat(255, 1)))

	out := filepath.Join(r.outputDir, filename)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	return nil
}

// fieldGrid adapts a grid and real matrix to the plotter.GridXYZ interface.
// The matrix is row-major [rows=len(Y), cols=len(X)]; axis coordinates are
// scaled from meters into the display units.
type fieldGrid struct {
	g     *modes.Grid
	m     *mat.Dense
	scale float64
}

func (fg *fieldGrid) Dims() (c, r int)   { return len(fg.g.X), len(fg.g.Y) }
func (fg *fieldGrid) Z(c, r int) float64 { return fg.m.At(r, c) }
func (fg *fieldGrid) X(c int) float64    { return fg.g.X[c] * fg.scale }
func (fg *fieldGrid) Y(r int) float64    { return fg.g.Y[r] * fg.scale }

func unitSuffix(u string) string {
	switch u {
	case units.Micrometers:
		return "µm"
	case units.Nanometers:
		return "nm"
	case units.Millimeters:
		return "mm"
	default:
		return "m"
	}
}
