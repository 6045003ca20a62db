// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record provides a [plot.Axes] that records the calls made on it,
// for testing formatting and plotting code without a rendering backend.
package record

import (
	"image/color"
	"slices"

	"cogentcore.org/regplot/math32/minmax"
	"cogentcore.org/regplot/plot"
)

var _ plot.Axes = (*Axes)(nil)

// Call is one recorded method call on an [Axes].
type Call struct {
	// Op is the method name.
	Op string

	// Args are the arguments, with slices copied.
	Args []any
}

// State is the result of all the setting calls made so far.
// Drawing calls are only in the call list.
type State struct {
	SpineVisible [plot.SidesN]bool
	SpineWidth   [plot.SidesN]float64

	// Ticks is indexed by [plot.Dims] then [plot.TickKinds].
	Ticks [2][2]plot.TickStyle

	MinorTicks bool
	Scales     [2]plot.Scales

	// Limits holds the limits of each dimension for which HasLimits is set.
	Limits    [2]minmax.F64
	HasLimits [2]bool

	MajorTickers [2]plot.Ticker
	MinorTickers [2]plot.Ticker

	// Grids is indexed by [plot.TickKinds]; GridOn marks the layers drawn.
	Grids  [2]plot.LineStyle
	GridOn [2]bool
}

// Axes is a [plot.Axes] that records every call.
// The zero value is not ready to use: use [New].
type Axes struct {
	// Calls are all the calls in order.
	Calls []Call

	// State is the current state of the settings.
	State State
}

// New returns a new Axes with all spines visible at the
// default width of 0.8 points, as a fresh plot would have.
func New() *Axes {
	ax := &Axes{}
	for i := range ax.State.SpineVisible {
		ax.State.SpineVisible[i] = true
		ax.State.SpineWidth[i] = 0.8
	}
	return ax
}

// Reset clears the recorded calls, keeping the state.
func (ax *Axes) Reset() {
	ax.Calls = nil
}

// Ops returns the names of the recorded calls.
func (ax *Axes) Ops() []string {
	ops := make([]string, len(ax.Calls))
	for i, c := range ax.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns the recorded calls with the given op.
func (ax *Axes) Find(op string) []Call {
	var cs []Call
	for _, c := range ax.Calls {
		if c.Op == op {
			cs = append(cs, c)
		}
	}
	return cs
}

func (ax *Axes) add(op string, args ...any) {
	ax.Calls = append(ax.Calls, Call{Op: op, Args: args})
}

func (ax *Axes) SetSpineVisible(side plot.Sides, visible bool) {
	ax.add("SetSpineVisible", side, visible)
	ax.State.SpineVisible[side] = visible
}

func (ax *Axes) SetSpineWidth(side plot.Sides, width float64) {
	ax.add("SetSpineWidth", side, width)
	ax.State.SpineWidth[side] = width
}

func (ax *Axes) SetTickStyle(dim plot.Dims, kind plot.TickKinds, ts plot.TickStyle) {
	ax.add("SetTickStyle", dim, kind, ts)
	ax.State.Ticks[dim][kind] = ts
}

func (ax *Axes) SetMinorTicks(on bool) {
	ax.add("SetMinorTicks", on)
	ax.State.MinorTicks = on
}

func (ax *Axes) SetScale(dim plot.Dims, sc plot.Scales) {
	ax.add("SetScale", dim, sc)
	ax.State.Scales[dim] = sc
}

func (ax *Axes) SetLimits(dim plot.Dims, min, max float64) {
	ax.add("SetLimits", dim, min, max)
	ax.State.Limits[dim] = minmax.F64{Min: min, Max: max}
	ax.State.HasLimits[dim] = true
}

func (ax *Axes) SetMajorTicker(dim plot.Dims, tk plot.Ticker) {
	ax.add("SetMajorTicker", dim, tk)
	ax.State.MajorTickers[dim] = tk
}

func (ax *Axes) SetMinorTicker(dim plot.Dims, tk plot.Ticker) {
	ax.add("SetMinorTicker", dim, tk)
	ax.State.MinorTickers[dim] = tk
}

func (ax *Axes) Grid(kind plot.TickKinds, ls plot.LineStyle) {
	ax.add("Grid", kind, ls)
	ax.State.Grids[kind] = ls
	ax.State.GridOn[kind] = true
}

func (ax *Axes) Scatter(x, y []float64, c color.Color) {
	ax.add("Scatter", slices.Clone(x), slices.Clone(y), c)
}

func (ax *Axes) Line(x, y []float64, ls plot.LineStyle, label string) {
	ax.add("Line", slices.Clone(x), slices.Clone(y), ls, label)
}

func (ax *Axes) FillBetween(x, lower, upper []float64, c color.Color, label string) {
	ax.add("FillBetween", slices.Clone(x), slices.Clone(lower), slices.Clone(upper), c, label)
}

func (ax *Axes) Text(pos plot.Point, txt string, ts plot.TextStyle) {
	ax.add("Text", pos, txt, ts)
}
