// Package units provides shared constants and conversion for length units.
// The mode-basis core works exclusively in meters; this package serves the
// presentation layer (axis labels, flag parsing).
package units

import "fmt"

// Unit constants
const (
	Meters      = "m"
	Millimeters = "mm"
	Micrometers = "um"
	Nanometers  = "nm"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Meters, Millimeters, Micrometers, Nanometers}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ConvertLength converts a length from meters to the target units.
// The core stores all lengths in meters.
func ConvertLength(meters float64, targetUnits string) float64 {
	switch targetUnits {
	case Millimeters:
		return meters * 1e3
	case Micrometers:
		return meters * 1e6
	case Nanometers:
		return meters * 1e9
	case Meters:
		return meters
	default:
		return meters // default to meters if unknown unit
	}
}

// Label formats a length in meters for display in the target units,
// e.g. Label(10e-6, Micrometers) == "10 µm".
func Label(meters float64, targetUnits string) string {
	v := ConvertLength(meters, targetUnits)
	switch targetUnits {
	case Millimeters:
		return fmt.Sprintf("%g mm", v)
	case Micrometers:
		return fmt.Sprintf("%g µm", v)
	case Nanometers:
		return fmt.Sprintf("%g nm", v)
	default:
		return fmt.Sprintf("%g m", v)
	}
}
