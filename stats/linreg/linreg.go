// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linreg fits a straight line to paired samples, either with a
// free offset (ordinary least squares) or through the origin, and computes
// the two-sided Student-t confidence band around the fitted line.
package linreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultLevel is the confidence level of the band.
	DefaultLevel = 0.95

	// DefaultSamples is the number of x samples used to draw the band.
	DefaultSamples = 100
)

// Result contains the fitted line y = A*x + B and the statistics needed
// to compute its confidence band. Make one with [Fit] or [FitLevel].
type Result struct {
	// A is the slope of the fitted line.
	A float64

	// B is the offset of the fitted line, always 0 when ZeroOffset is set.
	B float64

	// R2 is the coefficient of determination. With a free offset it is the
	// squared Pearson correlation of x and y. Through the origin it is
	// sum((A*x)^2) / sum(y^2), which is not the usual uncentered R².
	R2 float64

	// ZeroOffset indicates the line was forced through the origin.
	ZeroOffset bool

	// N is the number of samples.
	N int

	// DOF is the residual degrees of freedom: N-2, or N-1 through the origin.
	DOF int

	// Level is the two-sided confidence level of the band.
	Level float64

	// TCrit is the Student-t quantile at (1+Level)/2 with DOF degrees of freedom.
	TCrit float64

	// SE is the residual standard error sqrt(SSE / DOF).
	SE float64

	// Sxx is the spread of x: sum((x-mean)^2), or sum(x^2) through the origin.
	Sxx float64

	// Center is the x value where the band is narrowest:
	// mean(x), or 0 through the origin.
	Center float64
}

// Fit fits a line to x, y at the default 95% confidence level.
// If zeroOffset is true the line is forced through the origin.
func Fit(x, y []float64, zeroOffset bool) (*Result, error) {
	return FitLevel(x, y, zeroOffset, DefaultLevel)
}

// FitLevel is [Fit] with an explicit two-sided confidence level in (0, 1).
// The inputs are only read. An [InvalidInputError] is returned when the
// lengths differ, a value is not finite, there are not enough samples
// for at least one degree of freedom, x has no spread, or y is constant
// (all zero through the origin), for which R² is undefined.
func FitLevel(x, y []float64, zeroOffset bool, level float64) (*Result, error) {
	const op = "linreg.Fit"
	if len(x) != len(y) {
		return nil, &InvalidInputError{Op: op, Err: ErrLengthMismatch, Detail: fmt.Sprintf("len(x) = %d, len(y) = %d", len(x), len(y))}
	}
	if !(level > 0 && level < 1) {
		return nil, &InvalidInputError{Op: op, Err: ErrLevel, Detail: fmt.Sprintf("level = %g", level)}
	}
	n := len(x)
	params := 2
	if zeroOffset {
		params = 1
	}
	dof := n - params
	if dof < 1 {
		return nil, &InvalidInputError{Op: op, Err: ErrTooFewPoints, Detail: fmt.Sprintf("n = %d, need at least %d", n, params+1)}
	}
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			return nil, &InvalidInputError{Op: op, Err: ErrNonFinite, Detail: fmt.Sprintf("index %d", i)}
		}
	}

	r := &Result{ZeroOffset: zeroOffset, N: n, DOF: dof, Level: level}
	if zeroOffset {
		r.Sxx = floats.Dot(x, x)
		if r.Sxx == 0 {
			return nil, &InvalidInputError{Op: op, Err: ErrZeroSpread}
		}
		syy := floats.Dot(y, y)
		if syy == 0 {
			return nil, &InvalidInputError{Op: op, Err: ErrConstantY, Detail: "all y are 0"}
		}
		r.A = floats.Dot(x, y) / r.Sxx
		fit := 0.0
		for _, xv := range x {
			fv := r.A * xv
			fit += fv * fv
		}
		r.R2 = fit / syy
	} else {
		r.Center = stat.Mean(x, nil)
		for _, xv := range x {
			d := xv - r.Center
			r.Sxx += d * d
		}
		if r.Sxx == 0 {
			return nil, &InvalidInputError{Op: op, Err: ErrZeroSpread}
		}
		if stat.Variance(y, nil) == 0 {
			return nil, &InvalidInputError{Op: op, Err: ErrConstantY, Detail: fmt.Sprintf("all y are %g", y[0])}
		}
		r.B, r.A = stat.LinearRegression(x, y, nil, false)
		c := stat.Correlation(x, y, nil)
		r.R2 = c * c
	}

	sse := 0.0
	for i, xv := range x {
		e := y[i] - r.Predict(xv)
		sse += e * e
	}
	r.SE = math.Sqrt(sse / float64(dof))
	r.TCrit = TCritical(level, dof)
	return r, nil
}

// TCritical returns the two-sided critical value of the Student-t
// distribution with dof degrees of freedom at the given confidence level,
// i.e., the (1+level)/2 quantile.
func TCritical(level float64, dof int) float64 {
	st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	return st.Quantile(0.5 + level/2)
}

// Predict returns the fitted y value at x0.
func (r *Result) Predict(x0 float64) float64 {
	return r.A*x0 + r.B
}

// HalfWidth returns the half-width of the confidence band at x0:
// TCrit * SE * sqrt(1/N + (x0-Center)^2 / Sxx).
func (r *Result) HalfWidth(x0 float64) float64 {
	d := x0 - r.Center
	return r.TCrit * r.SE * math.Sqrt(1/float64(r.N)+d*d/r.Sxx)
}

// Equation returns the fitted equation and R² as two lines of text,
// with two decimal places, e.g., "y = 2.00x + 0.50\nR² = 0.98".
func (r *Result) Equation() string {
	return r.equation(false)
}

// LatexEquation is [Result.Equation] as LaTeX math, one $-delimited
// expression per line, e.g., "$y = 2.00x + 0.50$\n$R^2 = 0.98$".
func (r *Result) LatexEquation() string {
	return r.equation(true)
}

func (r *Result) equation(latex bool) string {
	eq := fmt.Sprintf("y = %.2fx", r.A)
	if !r.ZeroOffset {
		// rounded first so that a tiny negative intercept reads "+ 0.00"
		if b := math.Round(r.B*100) / 100; b < 0 {
			eq += fmt.Sprintf(" - %.2f", -b)
		} else {
			eq += fmt.Sprintf(" + %.2f", math.Abs(b))
		}
	}
	if latex {
		return "$" + eq + "$\n" + fmt.Sprintf("$R^2 = %.2f$", r.R2)
	}
	return eq + "\n" + fmt.Sprintf("R² = %.2f", r.R2)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
