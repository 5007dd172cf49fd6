// Package specfunc provides the special-function evaluations required by the
// Gaussian mode bases: physicists' Hermite polynomials, generalized Laguerre
// polynomials, and the integer factorial.
//
// All evaluations use the standard three-term recurrences. No overflow
// protection is attempted: polynomial values and factorials grow rapidly with
// order, and callers working above order ~30 should expect precision loss
// rather than an error.
package specfunc

import "math"

// HermitePhys evaluates the physicists' Hermite polynomial H_n(t).
//
// Recurrence: H_0 = 1, H_1 = 2t, H_{n+1}(t) = 2t·H_n(t) − 2n·H_{n−1}(t).
// Panics if n is negative (mode orders are validated upstream).
func HermitePhys(n int, t float64) float64 {
	if n < 0 {
		panic("specfunc: negative Hermite order")
	}
	if n == 0 {
		return 1
	}
	prev, cur := 1.0, 2*t
	for k := 1; k < n; k++ {
		prev, cur = cur, 2*t*cur-2*float64(k)*prev
	}
	return cur
}

// LaguerreAssoc evaluates the generalized (associated) Laguerre polynomial
// L_p^m(t) for integer p ≥ 0, m ≥ 0.
//
// Recurrence: L_0^m = 1, L_1^m = 1 + m − t,
// (k+1)·L_{k+1}^m(t) = (2k+1+m−t)·L_k^m(t) − (k+m)·L_{k−1}^m(t).
// Panics if p or m is negative (mode orders are validated upstream).
func LaguerreAssoc(p, m int, t float64) float64 {
	if p < 0 || m < 0 {
		panic("specfunc: negative Laguerre order")
	}
	if p == 0 {
		return 1
	}
	fm := float64(m)
	prev, cur := 1.0, 1+fm-t
	for k := 1; k < p; k++ {
		fk := float64(k)
		prev, cur = cur, ((2*fk+1+fm-t)*cur-(fk+fm)*prev)/(fk+1)
	}
	return cur
}

// Factorial returns n! as a float64. Exact for n ≤ 20 (within float64 integer
// range) and correctly rounded well beyond that; overflows to +Inf past
// n = 170, matching the float64 range.
func Factorial(n int) float64 {
	if n < 0 {
		panic("specfunc: negative factorial")
	}
	if n > 170 {
		return math.Inf(1)
	}
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}
	return f
}
