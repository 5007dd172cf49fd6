package render

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Unwrap corrects 2π discontinuities in a phase sequence in place: whenever a
// consecutive jump exceeds π, multiples of 2π are added to the remainder of
// the sequence to keep it continuous.
func Unwrap(phase []float64) {
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] + offset - phase[i-1]
		for d > math.Pi {
			offset -= 2 * math.Pi
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			offset += 2 * math.Pi
			d += 2 * math.Pi
		}
		phase[i] += offset
	}
}

// UnwrapRows unwraps each row of a phase matrix independently, in place.
func UnwrapRows(m *mat.Dense) {
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		Unwrap(m.RawRowView(r))
	}
}
