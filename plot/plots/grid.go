// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides gonum/plot plotters for the axes cosmetics
// that the standard plotters lack: major and minor grid layers, the top
// and right spines, a filled band between two curves, and text placed
// in axes fractions.
package plots

import (
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// Grid implements the plot.Plotter interface, drawing grid lines at the
// major and minor ticks of both axes. Add it before the data so the
// lines are drawn behind it.
type Grid struct {
	// Major is the style of the lines at labeled ticks.
	// A zero width or nil color turns the layer off.
	Major draw.LineStyle

	// Minor is the style of the lines at unlabeled ticks.
	// A zero width or nil color turns the layer off.
	Minor draw.LineStyle
}

// Plot implements the plot.Plotter interface.
func (g *Grid) Plot(c draw.Canvas, plt *gplot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		ls := g.style(tk)
		if ls == nil || tk.Value < plt.X.Min || tk.Value > plt.X.Max {
			continue
		}
		x := trX(tk.Value)
		c.StrokeLine2(*ls, x, c.Min.Y, x, c.Max.Y)
	}
	for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		ls := g.style(tk)
		if ls == nil || tk.Value < plt.Y.Min || tk.Value > plt.Y.Max {
			continue
		}
		y := trY(tk.Value)
		c.StrokeLine2(*ls, c.Min.X, y, c.Max.X, y)
	}
}

// style returns the line style for the given tick, nil if its layer is off.
func (g *Grid) style(tk gplot.Tick) *draw.LineStyle {
	ls := &g.Major
	if tk.IsMinor() {
		ls = &g.Minor
	}
	if !Visible(*ls) {
		return nil
	}
	return ls
}

// Visible returns true if lines drawn with the given style can be seen.
func Visible(ls draw.LineStyle) bool {
	return ls.Width > 0 && ls.Color != nil
}
