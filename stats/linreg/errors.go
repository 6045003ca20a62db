// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linreg

import "cogentcore.org/regplot/base/errors"

var (
	ErrLengthMismatch = errors.New("x and y have different lengths")
	ErrTooFewPoints   = errors.New("too few points for the degrees of freedom")
	ErrZeroSpread     = errors.New("x values have zero spread")
	ErrConstantY      = errors.New("y values are constant")
	ErrNonFinite      = errors.New("non-finite value in data")
	ErrLevel          = errors.New("confidence level must be in (0, 1)")
)

// InvalidInputError is returned when the data passed to a fit cannot
// produce a finite result. Err is one of the Err* values of this package,
// so errors.Is can be used to distinguish the cases.
type InvalidInputError struct {
	// Op is the operation that rejected the input.
	Op string

	// Err is the underlying reason.
	Err error

	// Detail is optional extra context, such as the offending counts.
	Detail string
}

func (e *InvalidInputError) Error() string {
	s := e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
