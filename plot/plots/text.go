// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AxesText implements the plot.Plotter interface, drawing text at a
// position given in fractions of the data area, independent of the
// data range. Lines are separated by "\n".
type AxesText struct {
	// X, Y is the anchor position: 0, 0 is the bottom left
	// of the data area and 1, 1 the top right.
	X, Y float64

	// Text is the text to draw.
	Text string

	// Size is the font size; the tick label size of the plot if 0.
	Size vg.Length

	// Color is the text color; the tick label color of the plot if nil.
	Color color.Color

	// XAlign and YAlign position the text relative to the anchor,
	// e.g., text.XRight and text.YTop put its top right corner there.
	XAlign text.XAlignment
	YAlign text.YAlignment

	// Math renders each line as LaTeX math, e.g., "$R^2 = 0.98$".
	Math bool
}

// Anchor returns the anchor point of the text on the given canvas.
func (at *AxesText) Anchor(c draw.Canvas) vg.Point {
	return vg.Point{
		X: c.Min.X + vg.Length(at.X)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(at.Y)*(c.Max.Y-c.Min.Y),
	}
}

// Plot implements the plot.Plotter interface.
func (at *AxesText) Plot(c draw.Canvas, plt *gplot.Plot) {
	if at.Text == "" {
		return
	}
	sty := plt.X.Tick.Label
	sty.Rotation = 0
	sty.XAlign = at.XAlign
	sty.YAlign = at.YAlign
	if at.Size > 0 {
		sty.Font.Size = at.Size
	}
	if at.Color != nil {
		sty.Color = at.Color
	}
	pt := at.Anchor(c)
	if !at.Math {
		c.FillText(sty, pt, at.Text)
		return
	}
	// The LaTeX handler draws a single line, so lines are stacked here
	// from the bottom of the aligned block.
	sty = MathStyle(sty)
	lines := sty.Handler.Lines(at.Text)
	lh := sty.Handler.Extents(sty.Font).Height
	n := vg.Length(len(lines))
	bottom := pt.Y + vg.Length(at.YAlign)*n*lh
	sty.YAlign = text.YBottom
	for i, ln := range lines {
		c.FillText(sty, vg.Point{X: pt.X, Y: bottom + (n-1-vg.Length(i))*lh}, ln)
	}
}
