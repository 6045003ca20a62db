// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"

	"cogentcore.org/regplot/stats/linreg"
)

// DefaultTextLoc is the default position of the regression annotation,
// near the top right corner.
var DefaultTextLoc = Point{X: 0.95, Y: 0.95}

// Manager draws scatter plots with a fitted line and its confidence band
// on an [Axes].
type Manager struct {
	// Axes is the surface being drawn on.
	Axes Axes

	// Style has the settings to apply. LineWidth is also used
	// for the fitted line and TextSize for the annotation.
	Style AxisStyle

	// BandSamples is the number of x samples of the fitted line and band.
	BandSamples int

	// Level is the two-sided confidence level of the band.
	Level float64

	// MathText writes the annotation as LaTeX math,
	// using [linreg.Result.LatexEquation].
	MathText bool
}

// NewManager returns a Manager for the given axes. If st is nil,
// the default AxisStyle is used.
func NewManager(ax Axes, st *AxisStyle) *Manager {
	mg := &Manager{Axes: ax}
	if st != nil {
		mg.Style = *st
	} else {
		mg.Style.Defaults()
	}
	mg.BandSamples = linreg.DefaultSamples
	mg.Level = linreg.DefaultLevel
	return mg
}

// AxSetting formats the axes for a scatter plot: the common cosmetics,
// minor ticks and both grid layers. If minor is non-nil it sets the
// x axis minor tick spacing.
func (mg *Manager) AxSetting(minor Ticker) {
	applyNumeric(mg.Axes, &mg.Style, minor)
}

// ScatterPlot draws a point in color c at each x, y pair.
func (mg *Manager) ScatterPlot(x, y []float64, c color.Color) error {
	if len(x) != len(y) {
		return &linreg.InvalidInputError{Op: "plot.ScatterPlot", Err: linreg.ErrLengthMismatch, Detail: fmt.Sprintf("len(x) = %d, len(y) = %d", len(x), len(y))}
	}
	mg.Axes.Scatter(x, y, c)
	return nil
}

// PlotRegressionWithCI fits a line to x, y (through the origin if
// zeroOffset), fills its confidence band in c at 20% opacity, draws the
// line over it, and writes the equation and R² at textLoc, aligned by
// its top right corner, as LaTeX math if MathText is set.
// The fit is returned for further use.
// Nothing is drawn if the fit fails.
func (mg *Manager) PlotRegressionWithCI(x, y []float64, c color.Color, zeroOffset bool, textLoc Point) (*linreg.Result, error) {
	r, err := linreg.FitLevel(x, y, zeroOffset, mg.Level)
	if err != nil {
		return nil, err
	}
	b := r.BandFor(x, mg.BandSamples)
	label := fmt.Sprintf("%.6g%% CI", 100*mg.Level)
	mg.Axes.FillBetween(b.X, b.Lower(), b.Upper(), WithAlpha(c, 0.2), label)
	mg.Axes.Line(b.X, b.Y, LineStyle{Color: c, Width: mg.Style.LineWidth}, "regression line")
	eq := r.Equation()
	if mg.MathText {
		eq = r.LatexEquation()
	}
	mg.Axes.Text(textLoc, eq, TextStyle{Size: mg.Style.TextSize, Color: color.Black, XAlign: End, YAlign: Start, Math: mg.MathText})
	return r, nil
}
