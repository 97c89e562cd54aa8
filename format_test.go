// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package komplex_test

import (
	"fmt"
	"testing"

	"github.com/elkhadiy/komplex"
)

func TestSprint(t *testing.T) {
	tests := []struct {
		c    komplex.Complex
		f    komplex.Format
		want string
	}{
		{komplex.FromCartesian(2, 3), komplex.Format{Mode: komplex.Cartesian, Prec: 0}, "2 + 3 i"},
		{komplex.I, komplex.Format{Mode: komplex.Cartesian, Prec: 2}, "0.00 + 1.00 i"},
		{komplex.I, komplex.Format{Mode: komplex.Polar, Prec: 2}, "1.00 e ^ (i 1.57)"},
		{komplex.FromCartesian(2, -3), komplex.Format{Mode: komplex.Cartesian, Prec: 1}, "2.0 - 3.0 i"},
		{komplex.FromCartesian(2, 3), komplex.Format{Mode: komplex.Cartesian, Prec: -1}, "2 + 3 i"},
		{komplex.FromCartesian(-2.5, 0), komplex.Format{Mode: komplex.Cartesian, Prec: 2}, "-2.50 + 0.00 i"},
		{komplex.FromPolar(2, 0.5), komplex.Format{Mode: komplex.Polar, Prec: 1}, "2.0 e ^ (i 0.5)"},
	}
	for _, tt := range tests {
		if got := tt.c.Sprint(tt.f); got != tt.want {
			t.Errorf("Sprint(%+v) = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := komplex.FromCartesian(2, 3).String(), "2.00 + 3.00 i"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGoString(t *testing.T) {
	got := komplex.FromCartesian(2, 3).GoString()
	want := "komplex.Complex{re: 2.00, im: 3.00, r: 3.61, th: 0.98}"
	if got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestFormatVerbs(t *testing.T) {
	z := komplex.FromCartesian(2, 3)
	tests := []struct {
		format string
		arg    komplex.Complex
		want   string
	}{
		{"%v", z, "2.00 + 3.00 i"},
		{"%s", z, "2.00 + 3.00 i"},
		{"%.0c", z, "2 + 3 i"},
		{"%.3c", z, "2.000 + 3.000 i"},
		{"%.2P", komplex.I, "1.00 e ^ (i 1.57)"},
		{"%P", komplex.I, "1.00 e ^ (i 1.57)"},
		{"%#v", z, "komplex.Complex{re: 2.00, im: 3.00, r: 3.61, th: 0.98}"},
		{"%d", z, "%!d(komplex.Complex=2.00 + 3.00 i)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		spec string
		want komplex.Format
	}{
		{"", komplex.Format{Mode: komplex.Cartesian, Prec: 2}},
		{"c", komplex.Format{Mode: komplex.Cartesian, Prec: 2}},
		{"p", komplex.Format{Mode: komplex.Polar, Prec: 2}},
		{".0", komplex.Format{Mode: komplex.Cartesian, Prec: 0}},
		{".2c", komplex.Format{Mode: komplex.Cartesian, Prec: 2}},
		{".3p", komplex.Format{Mode: komplex.Polar, Prec: 3}},
	}
	for _, tt := range tests {
		got, err := komplex.ParseFormat(tt.spec)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}

	for _, spec := range []string{"x", "2c", ".x", ".-1p", "."} {
		if _, err := komplex.ParseFormat(spec); err == nil {
			t.Errorf("ParseFormat(%q): expected error", spec)
		}
	}
}

func TestModeString(t *testing.T) {
	if komplex.Cartesian.String() != "cartesian" || komplex.Polar.String() != "polar" {
		t.Error("Mode.String mismatch")
	}
}
