// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides cosmetic axis formatting and regression plotting
// on top of an externally owned drawing surface, described by the [Axes]
// interface. The [Formatter] styles numeric and date axes, and the
// [Manager] draws scatter plots with a fitted line and its confidence band.
//
// This package never creates a surface: see the gonumplot package for
// one that renders images, and the record package for one that records
// the calls made on it.
package plot

import "image/color"

// Axes is the drawing surface that formatting and plotting operate on.
// It accumulates settings and drawn primitives as side effects.
// Setting methods replace any previous value, so applying the same
// settings twice has the same result as applying them once.
type Axes interface {
	// SetSpineVisible shows or hides the border line on the given side.
	SetSpineVisible(side Sides, visible bool)

	// SetSpineWidth sets the width in points of the border line on the given side.
	SetSpineWidth(side Sides, width float64)

	// SetTickStyle sets the style of the major or minor ticks of an axis.
	SetTickStyle(dim Dims, kind TickKinds, ts TickStyle)

	// SetMinorTicks turns minor ticks on or off on both axes.
	SetMinorTicks(on bool)

	// SetScale sets the transform of an axis.
	SetScale(dim Dims, sc Scales)

	// SetLimits fixes the visible data range of an axis.
	SetLimits(dim Dims, min, max float64)

	// SetMajorTicker installs a ticker for the major ticks of an axis.
	// A nil ticker restores the surface default.
	SetMajorTicker(dim Dims, tk Ticker)

	// SetMinorTicker installs a ticker for the minor ticks of an axis.
	// A nil ticker restores the surface default.
	SetMinorTicker(dim Dims, tk Ticker)

	// Grid draws grid lines at the ticks of the given kind, behind the data.
	Grid(kind TickKinds, ls LineStyle)

	// Scatter draws a point at each x, y pair.
	Scatter(x, y []float64, c color.Color)

	// Line draws a line through the x, y pairs.
	Line(x, y []float64, ls LineStyle, label string)

	// FillBetween fills the region between the lower and upper curves.
	FillBetween(x, lower, upper []float64, c color.Color, label string)

	// Text draws text at a position given in axes fractions.
	Text(pos Point, txt string, ts TextStyle)
}

// Dims are the axis dimensions.
type Dims int32

const (
	// X is the horizontal axis.
	X Dims = iota

	// Y is the vertical axis.
	Y
)

func (d Dims) String() string {
	if d == Y {
		return "Y"
	}
	return "X"
}

// Sides are the sides of the axes box, each with its own spine.
type Sides int32

const (
	Bottom Sides = iota
	Left
	Top
	Right
	SidesN
)

func (s Sides) String() string {
	switch s {
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	}
	return "Sides(?)"
}

// TickKinds distinguishes major from minor ticks.
type TickKinds int32

const (
	Major TickKinds = iota
	Minor
)

func (k TickKinds) String() string {
	if k == Minor {
		return "Minor"
	}
	return "Major"
}

// Scales are the transforms of a single axis.
type Scales int32

const (
	// LinearScale maps data linearly.
	LinearScale Scales = iota

	// LogScale maps data logarithmically. Data must be positive.
	LogScale
)

func (sc Scales) String() string {
	if sc == LogScale {
		return "Log"
	}
	return "Linear"
}

// Point is a position in axes fractions: (0, 0) is the bottom left
// of the data area and (1, 1) the top right.
type Point struct {
	X, Y float64
}

// Aligns specifies alignment of text relative to its anchor point.
// For vertical alignment, Start is the top.
type Aligns int32

const (
	Start Aligns = iota
	Center
	End
)
