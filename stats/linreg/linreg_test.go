// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linreg

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"cogentcore.org/regplot/base/errors"
)

const tol = 1.0e-9

// noisy data with a known, non-trivial fit
var (
	noisyX = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	noisyY = []float64{2.3, 3.9, 6.4, 7.7, 10.6, 11.8, 14.5, 15.7, 18.4, 20.2}
)

func seq(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return x
}

// normalEquations solves (X'X) b = X'y for the design [x 1].
func normalEquations(t *testing.T, x, y []float64) (slope, offset float64) {
	n := len(x)
	X := mat.NewDense(n, 2, nil)
	for i, xv := range x {
		X.Set(i, 0, xv)
		X.Set(i, 1, 1)
	}
	var xtx mat.Dense
	xtx.Mul(X.T(), X)
	var xty mat.VecDense
	xty.MulVec(X.T(), mat.NewVecDense(n, y))
	var beta mat.VecDense
	require.NoError(t, beta.SolveVec(&xtx, &xty))
	return beta.AtVec(0), beta.AtVec(1)
}

func TestFitMatchesNormalEquations(t *testing.T) {
	datasets := [][2][]float64{
		{noisyX, noisyY},
		{{0.5, 1.5, 2.0, 4.0}, {1.0, -2.0, 0.3, 7.5}},
		{{-3, -1, 0, 2, 5, 8}, {10, 7, 7.5, 3, -1, -4.2}},
	}
	for i, ds := range datasets {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			r, err := Fit(ds[0], ds[1], false)
			require.NoError(t, err)
			slope, offset := normalEquations(t, ds[0], ds[1])
			assert.InDelta(t, slope, r.A, tol)
			assert.InDelta(t, offset, r.B, tol)
		})
	}
}

func TestFitNoiseless(t *testing.T) {
	x := seq(10)
	y := make([]float64, len(x))
	for i, xv := range x {
		y[i] = 2 * xv
	}
	r, err := Fit(x, y, false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r.A, tol)
	assert.InDelta(t, 0.0, r.B, tol)
	assert.InDelta(t, 1.0, r.R2, tol)
	assert.InDelta(t, 0.0, r.SE, tol)

	b := r.BandFor(x, DefaultSamples)
	assert.Equal(t, DefaultSamples, b.Len())
	for _, ci := range b.CI {
		assert.InDelta(t, 0.0, ci, 1.0e-8)
	}
	assert.Equal(t, 1.0, b.X[0])
	assert.Equal(t, 10.0, b.X[len(b.X)-1])
	assert.InDelta(t, 2.0, b.Y[0], tol)
	assert.InDelta(t, 20.0, b.Y[len(b.Y)-1], tol)
}

func TestFitZeroOffset(t *testing.T) {
	r, err := Fit(noisyX, noisyY, true)
	require.NoError(t, err)

	sxy, sxx, syy := 0.0, 0.0, 0.0
	for i, xv := range noisyX {
		sxy += xv * noisyY[i]
		sxx += xv * xv
		syy += noisyY[i] * noisyY[i]
	}
	a := sxy / sxx
	fit := 0.0
	for _, xv := range noisyX {
		fit += (a * xv) * (a * xv)
	}
	assert.InDelta(t, a, r.A, tol)
	assert.Equal(t, 0.0, r.B)
	assert.InDelta(t, fit/syy, r.R2, tol)
	assert.InDelta(t, sxx, r.Sxx, tol)
	assert.Equal(t, 0.0, r.Center)
	assert.Equal(t, fmt.Sprintf("y = %.2fx\nR² = %.2f", r.A, r.R2), r.Equation())
}

func TestFitR2FreeOffset(t *testing.T) {
	r, err := Fit(noisyX, noisyY, false)
	require.NoError(t, err)

	mx, my := 5.5, 0.0
	for _, v := range noisyY {
		my += v
	}
	my /= float64(len(noisyY))
	sxy, sxx, syy := 0.0, 0.0, 0.0
	for i := range noisyX {
		dx, dy := noisyX[i]-mx, noisyY[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	corr := sxy / math.Sqrt(sxx*syy)
	assert.InDelta(t, corr*corr, r.R2, tol)
	assert.InDelta(t, sxx, r.Sxx, tol)
	assert.InDelta(t, mx, r.Center, tol)
}

func TestDOF(t *testing.T) {
	x := seq(10)
	r, err := Fit(x, noisyY, false)
	require.NoError(t, err)
	assert.Equal(t, 10, r.N)
	assert.Equal(t, 8, r.DOF)
	assert.InDelta(t, 2.306004135, r.TCrit, 1.0e-6)

	r, err = Fit(x, noisyY, true)
	require.NoError(t, err)
	assert.Equal(t, 9, r.DOF)
	assert.InDelta(t, 2.262157163, r.TCrit, 1.0e-6)
}

func TestTCritical(t *testing.T) {
	assert.InDelta(t, 12.70620474, TCritical(0.95, 1), 1.0e-6)
	assert.InDelta(t, 4.30265273, TCritical(0.95, 2), 1.0e-6)
	assert.InDelta(t, 3.16927267, TCritical(0.99, 10), 1.0e-6)
}

func TestHalfWidth(t *testing.T) {
	for _, zero := range []bool{false, true} {
		r, err := Fit(noisyX, noisyY, zero)
		require.NoError(t, err)

		sse := 0.0
		for i, xv := range noisyX {
			e := noisyY[i] - r.Predict(xv)
			sse += e * e
		}
		se := math.Sqrt(sse / float64(r.DOF))
		assert.InDelta(t, se, r.SE, tol)

		// the cross term vanishes at the center
		assert.InDelta(t, r.TCrit*se*math.Sqrt(1/float64(r.N)), r.HalfWidth(r.Center), tol)

		x0 := 12.5
		want := r.TCrit * se * math.Sqrt(1/float64(r.N)+(x0-r.Center)*(x0-r.Center)/r.Sxx)
		assert.InDelta(t, want, r.HalfWidth(x0), tol)
		assert.Greater(t, r.HalfWidth(x0), r.HalfWidth(r.Center))
	}
}

func TestBand(t *testing.T) {
	r, err := Fit(noisyX, noisyY, false)
	require.NoError(t, err)

	b := r.Band(5, 0, 4)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, b.X)
	lo, hi := b.Lower(), b.Upper()
	for i := range b.X {
		assert.InDelta(t, r.Predict(b.X[i]), b.Y[i], tol)
		assert.InDelta(t, r.HalfWidth(b.X[i]), b.CI[i], tol)
		assert.InDelta(t, b.Y[i]-b.CI[i], lo[i], tol)
		assert.InDelta(t, b.Y[i]+b.CI[i], hi[i], tol)
	}

	assert.Equal(t, []float64{3}, r.Band(1, 3, 9).X)
	assert.Zero(t, r.Band(0, 3, 9).Len())
	assert.Zero(t, r.BandFor(nil, 10).Len())
}

func TestEquation(t *testing.T) {
	r := &Result{A: 2, B: 0.5, R2: 0.981}
	assert.Equal(t, "y = 2.00x + 0.50\nR² = 0.98", r.Equation())
	r.B = -1.234
	assert.Equal(t, "y = 2.00x - 1.23\nR² = 0.98", r.Equation())
	r.ZeroOffset = true
	r.B = 0
	assert.Equal(t, "y = 2.00x\nR² = 0.98", r.Equation())
}

func TestEquationRoundedIntercept(t *testing.T) {
	r := &Result{A: 2, B: -0.001, R2: 0.5}
	assert.Equal(t, "y = 2.00x + 0.00\nR² = 0.50", r.Equation())
	r.B = -0.004999
	assert.Equal(t, "y = 2.00x + 0.00\nR² = 0.50", r.Equation())
	r.B = -0.006
	assert.Equal(t, "y = 2.00x - 0.01\nR² = 0.50", r.Equation())
}

func TestLatexEquation(t *testing.T) {
	r := &Result{A: 2, B: 0.5, R2: 0.981}
	assert.Equal(t, "$y = 2.00x + 0.50$\n$R^2 = 0.98$", r.LatexEquation())
	r.B = -1.234
	assert.Equal(t, "$y = 2.00x - 1.23$\n$R^2 = 0.98$", r.LatexEquation())
	r.ZeroOffset = true
	assert.Equal(t, "$y = 2.00x$\n$R^2 = 0.98$", r.LatexEquation())
}

// These cases return errors instead of propagating NaN or Inf.
func TestFitInvalid(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		zero bool
		want error
	}{
		{"length", []float64{1, 2, 3}, []float64{1, 2}, false, ErrLengthMismatch},
		{"empty", nil, nil, false, ErrTooFewPoints},
		{"two points", []float64{1, 2}, []float64{1, 2}, false, ErrTooFewPoints},
		{"one point origin", []float64{1}, []float64{1}, true, ErrTooFewPoints},
		{"constant x", []float64{2, 2, 2}, []float64{1, 2, 3}, false, ErrZeroSpread},
		{"zero x origin", []float64{0, 0}, []float64{1, 2}, true, ErrZeroSpread},
		{"constant y", []float64{1, 2, 3, 4}, []float64{5, 5, 5, 5}, false, ErrConstantY},
		{"zero y origin", []float64{1, 2, 3}, []float64{0, 0, 0}, true, ErrConstantY},
		{"nan", []float64{1, math.NaN(), 3}, []float64{1, 2, 3}, false, ErrNonFinite},
		{"inf", []float64{1, 2, 3}, []float64{1, math.Inf(1), 3}, false, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Fit(tt.x, tt.y, tt.zero)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var ie *InvalidInputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, "linreg.Fit", ie.Op)
		})
	}

	// two points through the origin leave one degree of freedom
	r, err := Fit([]float64{1, 2}, []float64{2, 4}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, r.DOF)

	_, err = FitLevel(noisyX, noisyY, false, 1)
	assert.ErrorIs(t, err, ErrLevel)
}

func ExampleFit() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	r, _ := Fit(x, y, false)
	fmt.Println(r.Equation())
	fmt.Println(r.DOF)
	// Output:
	// y = 2.00x + 0.00
	// R² = 1.00
	// 3
}
