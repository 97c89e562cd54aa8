// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package komplex implements an immutable complex number value that
// carries both of its representations at once: cartesian (real and
// imaginary parts) and polar (modulus and argument). Both views are
// computed eagerly at construction and every operation returns a fresh
// value, so a Complex is safe to share between goroutines without
// synchronization.
//
// Values are built with FromCartesian or FromPolar; the zero value
// Complex{} is the usable zero complex number. The package-level I is
// the imaginary unit:
//
//	z, _ := komplex.Add(2, komplex.MustParse("3i"))
//	fmt.Println(z) // 2.00 + 3.00 i
package komplex

import "math"

// Complex is a complex number holding cartesian and polar coordinates
// simultaneously. The invariant re = r·cos(th), im = r·sin(th) is
// established at construction and never broken, with one documented
// exception: FromPolar accepts a negative modulus as-is, so values
// produced by scaling with a negative real carry a negative cached r
// (the cartesian parts stay correct).
type Complex struct {
	re float64
	im float64
	r  float64
	th float64
}

// I is the imaginary unit, 0 + 1i.
var I = FromCartesian(0, 1)

// FromCartesian builds a complex number from its real and imaginary
// parts. The polar view is derived with Hypot and Atan2, so the
// argument lands in (-π, π].
func FromCartesian(re, im float64) Complex {
	return Complex{
		re: re,
		im: im,
		r:  math.Hypot(re, im),
		th: math.Atan2(im, re),
	}
}

// FromPolar builds a complex number from a modulus and an argument in
// radians. A negative modulus is not normalized; the cartesian parts
// are the literal r·cos(th), r·sin(th).
func FromPolar(r, th float64) Complex {
	return Complex{
		re: r * math.Cos(th),
		im: r * math.Sin(th),
		r:  r,
		th: th,
	}
}

// Real returns the real part.
func (c Complex) Real() float64 { return c.re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.im }

// Abs returns the cached modulus. It is negative only for values built
// through FromPolar with a negative modulus, see the type comment.
func (c Complex) Abs() float64 { return c.r }

// Arg returns the argument in radians.
func (c Complex) Arg() float64 { return c.th }

// tolerance for Equal. Polar round trips through cos/sin/atan2 leave
// rounding error in the last ulp or two, so comparisons are absolute
// within this bound rather than bitwise.
const epsilon = 1e-15

// Equal reports whether c and d have real and imaginary parts within
// an absolute tolerance of 1e-15 of each other.
func (c Complex) Equal(d Complex) bool {
	return math.Abs(c.re-d.re) <= epsilon && math.Abs(c.im-d.im) <= epsilon
}

// EqualReal reports whether c equals the real number k, treated as
// k + 0i, under the same tolerance as Equal.
func (c Complex) EqualReal(k float64) bool {
	return math.Abs(c.re-k) <= epsilon && math.Abs(c.im) <= epsilon
}
