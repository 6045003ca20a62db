// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linreg

import (
	"gonum.org/v1/gonum/floats"

	"cogentcore.org/regplot/math32/minmax"
)

// Band is the fitted line sampled at evenly spaced x values,
// with the confidence half-width at each sample.
type Band struct {
	// X are the sample positions.
	X []float64

	// Y are the fitted values at X.
	Y []float64

	// CI are the confidence half-widths at X.
	CI []float64
}

// Band samples the fitted line and its confidence half-width at n evenly
// spaced points spanning [xmin, xmax], inclusive.
func (r *Result) Band(n int, xmin, xmax float64) *Band {
	if n < 0 {
		n = 0
	}
	b := &Band{X: make([]float64, n), Y: make([]float64, n), CI: make([]float64, n)}
	switch n {
	case 0:
		return b
	case 1:
		b.X[0] = xmin
	default:
		floats.Span(b.X, xmin, xmax)
		b.X[n-1] = xmax
	}
	for i, xv := range b.X {
		b.Y[i] = r.Predict(xv)
		b.CI[i] = r.HalfWidth(xv)
	}
	return b
}

// BandFor is [Result.Band] over the range of the given x values,
// which are typically the ones that were fit.
func (r *Result) BandFor(x []float64, n int) *Band {
	rng := minmax.Of(x...)
	if !rng.IsValid() {
		return r.Band(0, 0, 0)
	}
	return r.Band(n, rng.Min, rng.Max)
}

// Len returns the number of samples.
func (b *Band) Len() int { return len(b.X) }

// Lower returns Y - CI at each sample.
func (b *Band) Lower() []float64 {
	lo := make([]float64, len(b.Y))
	floats.SubTo(lo, b.Y, b.CI)
	return lo
}

// Upper returns Y + CI at each sample.
func (b *Band) Upper() []float64 {
	hi := make([]float64, len(b.Y))
	floats.AddTo(hi, b.Y, b.CI)
	return hi
}
