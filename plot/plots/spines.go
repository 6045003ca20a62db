// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// Spines implements the plot.Plotter interface, drawing the top and
// right borders of the data area. The bottom and left borders are the
// axis lines of the plot itself.
type Spines struct {
	// Top is the style of the top border; a zero width hides it.
	Top draw.LineStyle

	// Right is the style of the right border; a zero width hides it.
	Right draw.LineStyle
}

// Plot implements the plot.Plotter interface.
func (sp *Spines) Plot(c draw.Canvas, plt *gplot.Plot) {
	if Visible(sp.Top) {
		c.StrokeLine2(sp.Top, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if Visible(sp.Right) {
		c.StrokeLine2(sp.Right, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}
