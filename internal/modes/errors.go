package modes

import "errors"

// ErrInvalidInput is returned when an operation is handed parameters that can
// never produce a meaningful field: empty or too-short coordinate slices,
// non-positive waist sizes or wavelength, negative mode orders, or a field
// whose shape does not match the grid.
//
// Validation is eager: every entry point checks its inputs before any
// numerical work starts. Errors from this package wrap ErrInvalidInput, so
// callers can test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
