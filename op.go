// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package komplex

import (
	"fmt"
	"math"
)

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return FromCartesian(c.re+d.re, c.im+d.im)
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return FromCartesian(c.re-d.re, c.im-d.im)
}

// Mul returns c·d in polar form: moduli multiply, arguments add and
// are reduced into [0, 2π).
func (c Complex) Mul(d Complex) Complex {
	return FromPolar(c.r*d.r, mod2pi(c.th+d.th))
}

// mulReal scales the modulus by k and keeps the argument. The plain
// number rides the polar path as a bare factor, so a negative k leaves
// a negative cached modulus behind (see the Complex type comment).
func (c Complex) mulReal(k float64) Complex {
	return FromPolar(k*c.r, c.th)
}

// Div returns c/d in polar form: moduli divide, arguments subtract and
// are reduced into [0, 2π). A zero-modulus divisor reports
// ErrDivisionByZero.
func (c Complex) Div(d Complex) (Complex, error) {
	if d.r == 0 {
		return Complex{}, ErrDivisionByZero
	}
	return FromPolar(c.r/d.r, mod2pi(c.th-d.th)), nil
}

func (c Complex) divReal(k float64) (Complex, error) {
	if k == 0 {
		return Complex{}, ErrDivisionByZero
	}
	return FromPolar(c.r/k, c.th), nil
}

// Neg returns -c, defined as multiplication by -1.
func (c Complex) Neg() Complex {
	return c.mulReal(-1)
}

// Conj returns the complex conjugate, computed from the cartesian
// parts directly.
func (c Complex) Conj() Complex {
	return FromCartesian(c.re, -c.im)
}

// Inv returns the reciprocal 1/c as conj(c) divided by the squared
// modulus. The zero value reports ErrDivisionByZero. The square
// overflows for |r| beyond about 1.3e154, collapsing the reciprocal of
// such huge values to exact zero even though the true result is
// representable.
func (c Complex) Inv() (Complex, error) {
	return c.Conj().divReal(c.r * c.r)
}

// PowReal returns c raised to the real exponent n: modulus r^n at
// argument th·n. A negative exponent routes through Inv, so the zero
// value raised to a negative power reports ErrDivisionByZero rather
// than silently producing an infinite modulus. For a value carrying a
// negative cached modulus (see the Complex type comment) a fractional
// exponent takes math.Pow of a negative base and yields NaN parts.
func (c Complex) PowReal(n float64) (Complex, error) {
	if n < 0 {
		p, err := c.PowReal(-n)
		if err != nil {
			return Complex{}, err
		}
		return p.Inv()
	}
	return FromPolar(math.Pow(c.r, n), c.th*n), nil
}

// powBase returns b^c for a real base b. Only a strictly positive base
// is defined: b^x·(cos(y·ln b) + i·sin(y·ln b)) for c = x + yi. The
// general complex-base case needs a branch cut choice and is out of
// scope, as is a complex exponent on a complex base.
func (c Complex) powBase(b float64) (Complex, error) {
	if b <= 0 {
		return Complex{}, fmt.Errorf("%w: non-positive real base %v under a complex exponent", ErrUnsupported, b)
	}
	return FromPolar(math.Pow(b, c.re), c.im*math.Log(b)), nil
}

// mod2pi reduces an angle into [0, 2π).
func mod2pi(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// operand is the closed set of things an operator accepts: a Complex
// value or a real scalar.
type operand struct {
	c      Complex
	k      float64
	scalar bool
}

func toOperand(v interface{}) (operand, bool) {
	switch v := v.(type) {
	case Complex:
		return operand{c: v}, true
	case int:
		return operand{k: float64(v), scalar: true}, true
	case int8:
		return operand{k: float64(v), scalar: true}, true
	case int16:
		return operand{k: float64(v), scalar: true}, true
	case int32:
		return operand{k: float64(v), scalar: true}, true
	case int64:
		return operand{k: float64(v), scalar: true}, true
	case uint:
		return operand{k: float64(v), scalar: true}, true
	case uint8:
		return operand{k: float64(v), scalar: true}, true
	case uint16:
		return operand{k: float64(v), scalar: true}, true
	case uint32:
		return operand{k: float64(v), scalar: true}, true
	case uint64:
		return operand{k: float64(v), scalar: true}, true
	case float32:
		return operand{k: float64(v), scalar: true}, true
	case float64:
		return operand{k: v, scalar: true}, true
	}
	return operand{}, false
}

func operands(op string, x, y interface{}) (operand, operand, error) {
	a, ok := toOperand(x)
	if !ok {
		return operand{}, operand{}, fmt.Errorf("%w: %T on the left of %s", ErrUnsupported, x, op)
	}
	b, ok := toOperand(y)
	if !ok {
		return operand{}, operand{}, fmt.Errorf("%w: %T on the right of %s", ErrUnsupported, y, op)
	}
	return a, b, nil
}

// Add returns x + y. Operands are Complex values or any Go real
// numeric kind; anything else reports ErrUnsupported. A plain number
// added to a complex value moves only the real part, in either order.
func Add(x, y interface{}) (Complex, error) {
	a, b, err := operands("+", x, y)
	if err != nil {
		return Complex{}, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return a.c.Add(b.c), nil
	case !a.scalar:
		return FromCartesian(a.c.re+b.k, a.c.im), nil
	case !b.scalar:
		return FromCartesian(a.k+b.c.re, b.c.im), nil
	}
	return FromCartesian(a.k+b.k, 0), nil
}

// Sub returns x - y. Both mixed orders are computed by their own
// cartesian expression so sign placement is exact.
func Sub(x, y interface{}) (Complex, error) {
	a, b, err := operands("-", x, y)
	if err != nil {
		return Complex{}, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return a.c.Sub(b.c), nil
	case !a.scalar:
		return FromCartesian(a.c.re-b.k, a.c.im), nil
	case !b.scalar:
		return FromCartesian(a.k-b.c.re, -b.c.im), nil
	}
	return FromCartesian(a.k-b.k, 0), nil
}

// Mul returns x·y. A plain number scales the complex operand's modulus
// through the polar path, in either order.
func Mul(x, y interface{}) (Complex, error) {
	a, b, err := operands("*", x, y)
	if err != nil {
		return Complex{}, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return a.c.Mul(b.c), nil
	case !a.scalar:
		return a.c.mulReal(b.k), nil
	case !b.scalar:
		return b.c.mulReal(a.k), nil
	}
	return FromCartesian(a.k*b.k, 0), nil
}

// Div returns x/y. A zero-modulus divisor, plain or complex, reports
// ErrDivisionByZero. The reversed form k/z is computed as the
// reciprocal of z/k and inherits both zero checks.
func Div(x, y interface{}) (Complex, error) {
	a, b, err := operands("/", x, y)
	if err != nil {
		return Complex{}, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return a.c.Div(b.c)
	case !a.scalar:
		return a.c.divReal(b.k)
	case !b.scalar:
		q, err := b.c.divReal(a.k)
		if err != nil {
			return Complex{}, err
		}
		return q.Inv()
	}
	if b.k == 0 {
		return Complex{}, ErrDivisionByZero
	}
	return FromCartesian(a.k/b.k, 0), nil
}

// Pow returns x^y. A complex base takes a real exponent (PowReal); a
// real base takes a complex exponent only when the base is strictly
// positive. A complex exponent on a complex base reports
// ErrUnsupported.
func Pow(x, y interface{}) (Complex, error) {
	a, b, err := operands("^", x, y)
	if err != nil {
		return Complex{}, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return Complex{}, fmt.Errorf("%w: complex exponent on a complex base", ErrUnsupported)
	case !a.scalar:
		return a.c.PowReal(b.k)
	case !b.scalar:
		return b.c.powBase(a.k)
	}
	return FromCartesian(math.Pow(a.k, b.k), 0), nil
}

// Equal reports whether x and y are equal within the package
// tolerance. A plain number compares as a complex value with zero
// imaginary part; foreign operand types report ErrUnsupported.
func Equal(x, y interface{}) (bool, error) {
	a, b, err := operands("==", x, y)
	if err != nil {
		return false, err
	}
	switch {
	case !a.scalar && !b.scalar:
		return a.c.Equal(b.c), nil
	case !a.scalar:
		return a.c.EqualReal(b.k), nil
	case !b.scalar:
		return b.c.EqualReal(a.k), nil
	}
	return math.Abs(a.k-b.k) <= epsilon, nil
}
