// Package testutil provides shared numeric test helpers.
//
// This package centralises the complex-valued tolerance assertions used
// across the mode-basis test suites to reduce duplication.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// AssertInDelta fails the test if got differs from want by more than tol.
func AssertInDelta(t *testing.T, name string, want, got, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (±%g)", name, got, want, tol)
	}
}

// AssertComplexInDelta fails the test if |got−want| exceeds tol.
func AssertComplexInDelta(t *testing.T, name string, want, got complex128, tol float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); math.IsNaN(d) || d > tol {
		t.Errorf("%s = %v, want %v (|Δ|=%g, tol %g)", name, got, want, d, tol)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertFinite fails the test if v is NaN or infinite.
func AssertFinite(t *testing.T, name string, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("%s is not finite: %g", name, v)
	}
}
