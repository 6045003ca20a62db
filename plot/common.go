// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"log/slog"
)

var (
	// MajorGrid is the style of the grid lines at major ticks.
	MajorGrid = LineStyle{Color: WithAlpha(color.Black, 0.2), Width: 0.5}

	// MinorGrid is the style of the grid lines at minor ticks.
	MinorGrid = LineStyle{Color: WithAlpha(color.Black, 0.2), Width: 0.3}
)

// ApplyCommonAxis applies the cosmetics shared by all axis styles:
// top and right spines hidden, bottom and left spines and the major ticks
// at st.LineWidth, tick labels at st.LabelSize, the scale of each axis
// per st.Scale, and the limits of each axis whose min and max are both fixed.
func ApplyCommonAxis(ax Axes, st *AxisStyle) {
	ax.SetSpineVisible(Right, false)
	ax.SetSpineVisible(Top, false)
	ax.SetSpineWidth(Bottom, st.LineWidth)
	ax.SetSpineWidth(Left, st.LineWidth)
	for _, dim := range []Dims{X, Y} {
		ax.SetTickStyle(dim, Major, TickStyle{Width: st.LineWidth, LabelSize: st.LabelSize})
	}
	for _, dim := range []Dims{X, Y} {
		ax.SetScale(dim, st.Scale.Scale(dim))
	}
	ApplyLimits(ax, st)
}

// ApplyLimits sets the limits of each axis whose min and max are both
// fixed in st. A pair with only one end fixed is skipped with a warning.
func ApplyLimits(ax Axes, st *AxisStyle) {
	for _, dim := range []Dims{X, Y} {
		rng := st.Limits(dim)
		switch {
		case rng.IsFixed():
			ax.SetLimits(dim, rng.Min, rng.Max)
		case rng.IsPartial():
			slog.Warn("plot: axis limits need both min and max, not applied", "axis", dim.String(), "fixMin", rng.FixMin, "fixMax", rng.FixMax)
		}
	}
}

// ApplyGrid draws the major and minor grid layers behind the data.
func ApplyGrid(ax Axes) {
	ax.Grid(Major, MajorGrid)
	ax.Grid(Minor, MinorGrid)
}

// applyNumeric is the numeric axis setup used by both the Formatter and
// the Manager: common cosmetics, minor ticks on at st.LineWidth, an
// optional X minor ticker, and the grid.
func applyNumeric(ax Axes, st *AxisStyle, minor Ticker) {
	ApplyCommonAxis(ax, st)
	ax.SetMinorTicks(true)
	for _, dim := range []Dims{X, Y} {
		ax.SetTickStyle(dim, Minor, TickStyle{Width: st.LineWidth})
	}
	if minor != nil {
		ax.SetMinorTicker(X, minor)
	}
	ApplyGrid(ax)
}
