// Copyright 2026 The Komplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package komplex

import "errors"

// ErrUnsupported reports an operand of a type an operator does not
// recognize, or an operation deliberately left out of scope (a complex
// exponent, or a reversed power with a non-positive or complex base).
var ErrUnsupported = errors.New("komplex: unsupported operand")

// ErrDivisionByZero reports a division or inversion whose divisor has
// zero modulus. The check is explicit; no operation ever returns an
// Inf or NaN in place of this error.
var ErrDivisionByZero = errors.New("komplex: division by zero")
