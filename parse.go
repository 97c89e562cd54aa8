// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package komplex

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a complex literal to a Complex. It accepts "a+bi",
// "a-bi", "bi", plain reals, "i" and "-i", exponent forms such as
// "1e-3+2.5i", and the spaced cartesian rendering produced by Sprint
// ("2.00 + 3.00 i"). Whitespace is insignificant.
func Parse(s string) (Complex, error) {
	t := strings.Join(strings.Fields(s), "")
	if t == "" {
		return Complex{}, fmt.Errorf("komplex: empty complex literal")
	}
	switch t {
	case "i", "+i":
		return FromCartesian(0, 1), nil
	case "-i":
		return FromCartesian(0, -1), nil
	}
	if !strings.HasSuffix(t, "i") {
		re, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Complex{}, fmt.Errorf("komplex: invalid complex literal %q", s)
		}
		return FromCartesian(re, 0), nil
	}
	core := t[:len(t)-1]
	if idx := lastSignOutsideExponent(core); idx > 0 {
		re, err := strconv.ParseFloat(core[:idx], 64)
		if err != nil {
			return Complex{}, fmt.Errorf("komplex: invalid real part in %q", s)
		}
		im := 0.0
		switch part := core[idx:]; part {
		case "+":
			im = 1
		case "-":
			im = -1
		default:
			im, err = strconv.ParseFloat(part, 64)
			if err != nil {
				return Complex{}, fmt.Errorf("komplex: invalid imaginary part in %q", s)
			}
		}
		return FromCartesian(re, im), nil
	}
	im, err := strconv.ParseFloat(core, 64)
	if err != nil {
		return Complex{}, fmt.Errorf("komplex: invalid complex literal %q", s)
	}
	return FromCartesian(0, im), nil
}

// MustParse is Parse that panics on a malformed literal. Intended for
// constants in tests and package setup.
func MustParse(s string) Complex {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// lastSignOutsideExponent finds the last '+' or '-' that is neither
// part of an exponent nor the leading sign of the whole literal.
func lastSignOutsideExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != 'e' && s[i-1] != 'E' {
			return i
		}
	}
	return -1
}

// MarshalText renders c as a compact literal such as "2+3i", each part
// in its shortest exact form, so a round trip through UnmarshalText
// recovers the cartesian parts bit-for-bit.
func (c Complex) MarshalText() ([]byte, error) {
	re := strconv.FormatFloat(c.re, 'g', -1, 64)
	im := strconv.FormatFloat(c.im, 'g', -1, 64)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return []byte(re + im + "i"), nil
}

// UnmarshalText parses a complex literal in any form Parse accepts.
// The value is rebuilt through FromCartesian, restoring the polar
// cache.
func (c *Complex) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = z
	return nil
}
