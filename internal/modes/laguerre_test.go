package modes

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamlab/modal/internal/testutil"
)

func testLGBeam() LGBeam {
	return LGBeam{W0: testWaist, Wavelength: testWavelength}
}

func TestLGEvaluate_WaistPlaneGaussian(t *testing.T) {
	g := testGrid(t, 64)
	b := testLGBeam()

	f, err := b.Evaluate(g, 0, 0, 0)
	testutil.AssertNoError(t, err)

	// LG(0,0) at the waist is the plain Gaussian √(2/π)/w0·exp(−r²/w0²) with
	// no curvature, Gouy, or azimuthal phase.
	norm := math.Sqrt(2/math.Pi) / testWaist
	for r, y := range g.Y {
		for c, x := range g.X {
			want := complex(norm*math.Exp(-(x*x+y*y)/(testWaist*testWaist)), 0)
			got := f.At(r, c)
			if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want)+1e-15 {
				t.Fatalf("waist-plane field at (%g, %g) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLGEvaluate_VortexPhase(t *testing.T) {
	g := testGrid(t, 64)
	b := testLGBeam()

	f, err := b.Evaluate(g, 0, 0, 1)
	testutil.AssertNoError(t, err)

	// m=1 carries the azimuthal phase exp(−iΘ): the local phase must equal
	// −atan2(y, x) wherever the amplitude is appreciable.
	for r, y := range g.Y {
		for c, x := range g.X {
			v := f.At(r, c)
			if cmplx.Abs(v) < 1e-3 {
				continue
			}
			want := -math.Atan2(y, x)
			got := cmplx.Phase(v)
			// Compare on the unit circle to dodge ±π wrapping.
			if cmplx.Abs(cmplx.Exp(complex(0, got))-cmplx.Exp(complex(0, want))) > 1e-9 {
				t.Fatalf("vortex phase at (%g, %g) = %g, want %g", x, y, got, want)
			}
		}
	}

	// The on-axis amplitude of any m>0 mode vanishes.
	in := f.Intensity()
	rows, cols := f.Dims()
	center := in.At(rows/2, cols/2)
	peak := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := in.At(r, c); v > peak {
				peak = v
			}
		}
	}
	if center > 1e-2*peak {
		t.Errorf("vortex core intensity %g not dark relative to peak %g", center, peak)
	}
}

func TestLGEvaluate_GouyPhase(t *testing.T) {
	g, err := NewGrid(Linspace(-1e-6, 1e-6, 3), Linspace(-1e-6, 1e-6, 3))
	testutil.AssertNoError(t, err)
	b := testLGBeam()
	zr := math.Pi * testWaist * testWaist / testWavelength

	// On axis the m=0 modes accumulate (2p+1)·atan2(z, zr).
	for _, p := range []int{0, 1, 2} {
		f, err := b.Evaluate(g, 0.5*zr, p, 0)
		testutil.AssertNoError(t, err)
		want := (2*float64(p) + 1) * math.Atan2(0.5*zr, zr)
		got := cmplx.Phase(f.At(1, 1))
		// L_p(0)=1 > 0, so no sign flip on axis; compare modulo 2π.
		d := math.Mod(got-want+3*math.Pi, 2*math.Pi) - math.Pi
		testutil.AssertInDelta(t, "on-axis Gouy phase", 0, d, 1e-9)
	}
}

func TestLGEvaluate_InvalidInput(t *testing.T) {
	g := testGrid(t, 16)
	cases := []struct {
		name string
		beam LGBeam
		p, m int
	}{
		{"zero waist", LGBeam{W0: 0, Wavelength: testWavelength}, 0, 0},
		{"negative waist", LGBeam{W0: -1e-6, Wavelength: testWavelength}, 0, 0},
		{"zero wavelength", LGBeam{W0: testWaist, Wavelength: 0}, 0, 0},
		{"negative p", testLGBeam(), -1, 0},
		{"negative m", testLGBeam(), 0, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.beam.Evaluate(g, 0, c.p, c.m); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestLGProject_Orthonormality(t *testing.T) {
	g := testGrid(t, 64)
	b := testLGBeam()
	z := 100e-6

	for p := 0; p < 3; p++ {
		for m := 0; m < 3; m++ {
			mode, err := b.Evaluate(g, z, p, m)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					c, err := b.Project(g, z, mode, i, j)
					require.NoError(t, err)
					if i == p && j == m {
						assert.InDelta(t, 1, cmplx.Abs(c), 1e-3,
							"self-projection of (%d,%d)", p, m)
					} else {
						assert.InDelta(t, 0, cmplx.Abs(c), 1e-3,
							"cross-projection of (%d,%d) onto (%d,%d)", p, m, i, j)
					}
				}
			}
		}
	}
}

func TestLGDecomposeReconstruct_RoundTrip(t *testing.T) {
	g := testGrid(t, 64)
	b := testLGBeam()
	z := 100e-6

	want := map[[2]int]complex128{
		{0, 0}: 0.6,
		{1, 0}: 0.25 - 0.3i,
		{0, 2}: 0.5i,
	}
	field := NewField(g)
	for idx, c := range want {
		mode, err := b.Evaluate(g, z, idx[0], idx[1])
		require.NoError(t, err)
		field.addScaled(c, mode)
	}

	coeffs, err := b.Decompose(g, z, field, 3, 3)
	require.NoError(t, err)

	for p := 0; p < 3; p++ {
		for m := 0; m < 3; m++ {
			expect := want[[2]int{p, m}]
			got := coeffs.At(p, m)
			assert.InDelta(t, real(expect), real(got), 1e-3, "Re c(%d,%d)", p, m)
			assert.InDelta(t, imag(expect), imag(got), 1e-3, "Im c(%d,%d)", p, m)
		}
	}

	rebuilt, err := b.Reconstruct(g, z, coeffs)
	require.NoError(t, err)
	assert.Less(t, maxAbsDiff(field, rebuilt), 1e-3*math.Sqrt(field.Power(g)))
}

func TestLGEvaluate_EnergySanity(t *testing.T) {
	g := testGrid(t, 64)
	b := testLGBeam()
	zr := math.Pi * testWaist * testWaist / testWavelength

	for _, z := range []float64{0, 100e-6, -zr} {
		for _, p := range []int{0, 1, 3, 6} {
			for _, m := range []int{0, 1, 4} {
				f, err := b.Evaluate(g, z, p, m)
				testutil.AssertNoError(t, err)
				pw := f.Power(g)
				testutil.AssertFinite(t, "power", pw)
				if pw <= 0 {
					t.Fatalf("power not positive for (p=%d, m=%d, z=%g): %g", p, m, z, pw)
				}
			}
		}
	}
}
