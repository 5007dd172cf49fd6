// Package report renders the result of a modal decomposition as a standalone
// HTML page using go-echarts. Like the image renderer it is presentation
// only: it reads a coefficient grid and imposes nothing on the core.
package report

import (
	"fmt"
	"io"
	"math/cmplx"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/beamlab/modal/internal/modes"
	"github.com/beamlab/modal/internal/monitoring"
)

// Spectrum describes one decomposition to report on.
type Spectrum struct {
	Title  string // e.g. "HG decomposition at z=100 µm"
	Index1 string // name of the first index, "nx" or "p"
	Index2 string // name of the second index, "ny" or "m"
	Coeffs *modes.Coefficients
}

// Write renders the modal power spectrum and per-mode phase charts as a
// single HTML page to w.
func Write(w io.Writer, s Spectrum) error {
	maxI, maxJ := s.Coeffs.Dims()

	labels := make([]string, 0, maxI*maxJ)
	power := make([]opts.BarData, 0, maxI*maxJ)
	phase := make([]opts.BarData, 0, maxI*maxJ)
	total := s.Coeffs.TotalPower()
	for i := 0; i < maxI; i++ {
		for j := 0; j < maxJ; j++ {
			labels = append(labels, fmt.Sprintf("(%d,%d)", i, j))
			power = append(power, opts.BarData{Value: s.Coeffs.Power(i, j)})
			phase = append(phase, opts.BarData{Value: cmplx.Phase(s.Coeffs.At(i, j))})
		}
	}

	powerBar := charts.NewBar()
	powerBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: s.Title, Width: "1200px", Height: "450px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    s.Title,
			Subtitle: fmt.Sprintf("total modal power %.6g over %d×%d modes (%s, %s)", total, maxI, maxJ, s.Index1, s.Index2),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	powerBar.SetXAxis(labels).AddSeries("|c|²", power)

	phaseBar := charts.NewBar()
	phaseBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "450px"}),
		charts.WithTitleOpts(opts.Title{Title: "Coefficient phase", Subtitle: "arg(c) in radians"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	phaseBar.SetXAxis(labels).AddSeries("arg(c)", phase)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(powerBar, phaseBar)
	return page.Render(w)
}

// WriteFile renders the report to the given path.
func WriteFile(path string, s Spectrum) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()
	if err := Write(f, s); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	monitoring.Logf("wrote decomposition report to %s", path)
	return nil
}
