// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"cogentcore.org/regplot/base/errors"
	"cogentcore.org/regplot/math32/minmax"
)

// Band implements the plot.Plotter interface, filling the region
// between a Low and a High curve sampled at the same X values.
type Band struct {
	// copies of data for this band
	X, Low, High []float64

	// Color is the fill color, typically partly transparent.
	Color color.Color
}

// NewBand returns a Band for the given curves, which must have the same
// length and contain only finite values. The data are copied.
func NewBand(x, low, high []float64) (*Band, error) {
	if len(x) != len(low) || len(x) != len(high) {
		return nil, errors.New("plots: band x, low and high have different lengths")
	}
	if len(x) == 0 {
		return nil, plotter.ErrNoData
	}
	b := &Band{X: make([]float64, len(x)), Low: make([]float64, len(x)), High: make([]float64, len(x))}
	for i := range x {
		if err := plotter.CheckFloats(x[i], low[i], high[i]); err != nil {
			return nil, err
		}
	}
	copy(b.X, x)
	copy(b.Low, low)
	copy(b.High, high)
	return b, nil
}

// Polygon returns the outline of the band in data coordinates:
// along Low in order, then back along High.
func (b *Band) Polygon() plotter.XYs {
	n := len(b.X)
	xys := make(plotter.XYs, 0, 2*n)
	for i := range n {
		xys = append(xys, plotter.XY{X: b.X[i], Y: b.Low[i]})
	}
	for i := n - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: b.X[i], Y: b.High[i]})
	}
	return xys
}

// Plot implements the plot.Plotter interface.
func (b *Band) Plot(c draw.Canvas, plt *gplot.Plot) {
	if b.Color == nil {
		return
	}
	trX, trY := plt.Transforms(&c)
	xys := b.Polygon()
	pts := make([]vg.Point, len(xys))
	for i, xy := range xys {
		pts[i] = vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
	}
	c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
}

// DataRange returns the minimum and maximum x and y values,
// implementing the plot.DataRanger interface.
func (b *Band) DataRange() (xmin, xmax, ymin, ymax float64) {
	xr := minmax.Of(b.X...)
	yr := minmax.Of(b.Low...)
	yr.FitInRange(minmax.Of(b.High...))
	return xr.Min, xr.Max, yr.Min, yr.Max
}

// Thumbnail fills the legend entry with the band color,
// implementing the plot.Thumbnailer interface.
func (b *Band) Thumbnail(c *draw.Canvas) {
	if b.Color == nil {
		return
	}
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}
