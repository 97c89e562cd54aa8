// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package komplex

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Mode selects which representation Sprint renders.
type Mode int

const (
	// Cartesian renders "<re> <+|-> <|im|> i".
	Cartesian Mode = iota
	// Polar renders "<r> e ^ (i <th>)".
	Polar
)

func (m Mode) String() string {
	switch m {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Format configures Sprint: a representation mode and a number of
// decimal places. A negative Prec renders each part in its shortest
// exact form.
type Format struct {
	Mode Mode
	Prec int
}

// DefaultFormat is the display used by String: cartesian at two
// decimal places.
var DefaultFormat = Format{Mode: Cartesian, Prec: 2}

// Sprint renders c according to f. The cartesian form carries the sign
// of the imaginary part as its own token, with the magnitude after it:
// "2.00 - 3.00 i".
func (c Complex) Sprint(f Format) string {
	if f.Mode == Polar {
		return num(c.r, f.Prec) + " e ^ (i " + num(c.th, f.Prec) + ")"
	}
	sign := "+"
	if c.im < 0 {
		sign = "-"
	}
	return num(c.re, f.Prec) + " " + sign + " " + num(math.Abs(c.im), f.Prec) + " i"
}

func num(v float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// String renders c with DefaultFormat.
func (c Complex) String() string {
	return c.Sprint(DefaultFormat)
}

// GoString exposes all four cached fields at fixed two-decimal
// precision, for diagnostics rather than arithmetic-consuming output.
func (c Complex) GoString() string {
	return fmt.Sprintf("komplex.Complex{re: %.2f, im: %.2f, r: %.2f, th: %.2f}", c.re, c.im, c.r, c.th)
}

// Format implements fmt.Formatter as a thin adapter over Sprint. The
// verbs 'v', 's' and 'c' render cartesian, 'P' renders polar, and an
// explicit precision is honored: %.3P. %#v falls through to GoString.
// Lowercase 'p' cannot serve as the polar verb: fmt reserves it for
// pointers and never hands it to a Formatter. ParseFormat's
// mini-language still spells the polar mode 'p'.
func (c Complex) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		io.WriteString(f, c.GoString())
		return
	}
	prec, ok := f.Precision()
	if !ok {
		prec = DefaultFormat.Prec
	}
	switch verb {
	case 'v', 's', 'c':
		io.WriteString(f, c.Sprint(Format{Mode: Cartesian, Prec: prec}))
	case 'P':
		io.WriteString(f, c.Sprint(Format{Mode: Polar, Prec: prec}))
	default:
		fmt.Fprintf(f, "%%!%c(komplex.Complex=%s)", verb, c.Sprint(DefaultFormat))
	}
}

// ParseFormat decodes the compact format mini-language: an optional
// precision of the form ".N" followed by an optional trailing mode
// character, 'c' for cartesian or 'p' for polar. The empty spec is
// DefaultFormat; ".0", "p", ".3p" and ".2c" are all valid.
func ParseFormat(spec string) (Format, error) {
	f := DefaultFormat
	rest := spec
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case 'c':
			rest = rest[:n-1]
		case 'p':
			f.Mode = Polar
			rest = rest[:n-1]
		}
	}
	if rest == "" {
		return f, nil
	}
	if rest[0] != '.' {
		return Format{}, fmt.Errorf("komplex: invalid format spec %q", spec)
	}
	prec, err := strconv.Atoi(rest[1:])
	if err != nil || prec < 0 {
		return Format{}, fmt.Errorf("komplex: invalid precision in format spec %q", spec)
	}
	f.Prec = prec
	return f, nil
}
