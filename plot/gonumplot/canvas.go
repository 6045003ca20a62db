// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumplot provides a [plot.Axes] surface that renders
// images and vector files using gonum.org/v1/plot.
package gonumplot

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"slices"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	errs "cogentcore.org/regplot/base/errors"
	"cogentcore.org/regplot/math32/minmax"
	"cogentcore.org/regplot/plot"
	"cogentcore.org/regplot/plot/plots"
)

var _ plot.Axes = (*Canvas)(nil)

// DefaultSpineWidth is the width in points of a spine that has not been set.
const DefaultSpineWidth = 0.8

// Canvas implements [plot.Axes] on a gonum plot. Settings are stored
// and applied to the plot when it is saved, so they can be given in
// any order relative to the drawing calls.
//
// On a log axis, data at or below 0 cannot be placed: scatter points
// there are dropped, and line and band values are raised to the
// smallest positive value drawn on that axis.
type Canvas struct {
	// Plot is the underlying gonum plot, which can be further
	// customized, e.g., with a title and axis labels. Data must be
	// drawn with the Canvas methods to be included in the axis ranges.
	Plot *gplot.Plot

	// ShowLegend adds a legend entry for each labeled line and band.
	ShowLegend bool

	// GlyphRadius is the radius of scatter points.
	GlyphRadius vg.Length

	spines     [plot.SidesN]spine
	minorTicks bool
	axes       [2]axisState

	grid  *plots.Grid
	frame *plots.Spines

	series     []*series
	legend     []legendEntry
	legendDone bool
}

// series is the data of a drawn plotter, kept unchanged so that the
// plotter can be reset from it for the current axis scales.
type series struct {
	x, y []float64

	// high is the upper curve of a band, whose lower curve is y.
	high []float64

	pl gplot.DataRanger
}

type spine struct {
	visible bool
	width   float64
}

type axisState struct {
	scale     plot.Scales
	limits    minmax.F64
	hasLimits bool
	major     plot.Ticker
	minor     plot.Ticker
	ticks     [2]plot.TickStyle
}

type legendEntry struct {
	label string
	thumb gplot.Thumbnailer
}

// New returns a new Canvas on a new gonum plot, with all spines visible.
func New() *Canvas {
	p := gplot.New()
	p.X.Padding = 0
	p.Y.Padding = 0
	cv := &Canvas{Plot: p, GlyphRadius: vg.Points(3), grid: &plots.Grid{}, frame: &plots.Spines{}}
	for i := range cv.spines {
		cv.spines[i] = spine{visible: true, width: DefaultSpineWidth}
	}
	p.Add(cv.grid, cv.frame)
	return cv
}

func (cv *Canvas) SetSpineVisible(side plot.Sides, visible bool) {
	cv.spines[side].visible = visible
}

func (cv *Canvas) SetSpineWidth(side plot.Sides, width float64) {
	cv.spines[side].width = width
}

// SetTickStyle sets the tick style. gonum draws minor ticks with the
// major tick line style, so only the major width is used.
func (cv *Canvas) SetTickStyle(dim plot.Dims, kind plot.TickKinds, ts plot.TickStyle) {
	cv.axes[dim].ticks[kind] = ts
}

func (cv *Canvas) SetMinorTicks(on bool) {
	cv.minorTicks = on
}

func (cv *Canvas) SetScale(dim plot.Dims, sc plot.Scales) {
	cv.axes[dim].scale = sc
}

func (cv *Canvas) SetLimits(dim plot.Dims, min, max float64) {
	cv.axes[dim].limits.Set(min, max)
	cv.axes[dim].hasLimits = true
}

func (cv *Canvas) SetMajorTicker(dim plot.Dims, tk plot.Ticker) {
	cv.axes[dim].major = tk
}

func (cv *Canvas) SetMinorTicker(dim plot.Dims, tk plot.Ticker) {
	cv.axes[dim].minor = tk
}

func (cv *Canvas) Grid(kind plot.TickKinds, ls plot.LineStyle) {
	if kind == plot.Minor {
		cv.grid.Minor = lineStyle(ls)
		return
	}
	cv.grid.Major = lineStyle(ls)
}

func (cv *Canvas) Scatter(x, y []float64, c color.Color) {
	xys, err := xyPairs(x, y)
	if errs.Log(err) != nil {
		return
	}
	s, err := plotter.NewScatter(xys)
	if errs.Log(err) != nil {
		return
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = cv.GlyphRadius
	cv.Plot.Add(s)
	cv.series = append(cv.series, &series{x: slices.Clone(x), y: slices.Clone(y), pl: s})
}

func (cv *Canvas) Line(x, y []float64, ls plot.LineStyle, label string) {
	xys, err := xyPairs(x, y)
	if errs.Log(err) != nil {
		return
	}
	l, err := plotter.NewLine(xys)
	if errs.Log(err) != nil {
		return
	}
	l.LineStyle = lineStyle(ls)
	cv.Plot.Add(l)
	cv.series = append(cv.series, &series{x: slices.Clone(x), y: slices.Clone(y), pl: l})
	cv.addLegend(label, l)
}

func (cv *Canvas) FillBetween(x, lower, upper []float64, c color.Color, label string) {
	b, err := plots.NewBand(x, lower, upper)
	if errs.Log(err) != nil {
		return
	}
	b.Color = c
	cv.Plot.Add(b)
	cv.series = append(cv.series, &series{x: slices.Clone(b.X), y: slices.Clone(b.Low), high: slices.Clone(b.High), pl: b})
	cv.addLegend(label, b)
}

func (cv *Canvas) Text(pos plot.Point, txt string, ts plot.TextStyle) {
	cv.Plot.Add(&plots.AxesText{
		X:      pos.X,
		Y:      pos.Y,
		Text:   txt,
		Size:   vg.Points(ts.Size),
		Color:  ts.Color,
		XAlign: xAlign(ts.XAlign),
		YAlign: yAlign(ts.YAlign),
		Math:   ts.Math,
	})
}

func (cv *Canvas) addLegend(label string, thumb gplot.Thumbnailer) {
	if label == "" {
		return
	}
	cv.legend = append(cv.legend, legendEntry{label: label, thumb: thumb})
}

// axis returns the gonum axis for the given dimension
// and the side of its spine.
func (cv *Canvas) axis(dim plot.Dims) (*gplot.Axis, plot.Sides) {
	if dim == plot.Y {
		return &cv.Plot.Y, plot.Left
	}
	return &cv.Plot.X, plot.Bottom
}

// apply transfers the stored settings to the gonum plot.
// It is called before every render and can be called repeatedly.
func (cv *Canvas) apply() {
	var floor [2]float64
	for d := range cv.axes {
		floor[d] = cv.logFloor(plot.Dims(d))
	}
	for _, s := range cv.series {
		s.clip(floor)
	}
	for d := range cv.axes {
		as := &cv.axes[d]
		ax, side := cv.axis(plot.Dims(d))
		var base gplot.Ticker = gplot.DefaultTicks{}
		if as.scale == plot.LogScale {
			ax.Scale = gplot.LogScale{}
			base = gplot.LogTicks{Prec: -1}
		} else {
			ax.Scale = gplot.LinearScale{}
		}
		ax.Tick.Marker = &ticker{major: as.major, minor: as.minor, base: base, minorOn: cv.minorTicks, log: floor[d] > 0}
		ax.LineStyle = spineStyle(cv.spines[side])
		if w := as.ticks[plot.Major].Width; w > 0 {
			ax.Tick.LineStyle.Width = vg.Points(w)
		}
		if sz := as.ticks[plot.Major].LabelSize; sz > 0 {
			ax.Tick.Label.Font.Size = vg.Points(sz)
		}
		if !as.hasLimits {
			rng := cv.dataRange(plot.Dims(d))
			ax.Min, ax.Max = rng.Min, rng.Max
			continue
		}
		mn, mx := as.limits.Min, as.limits.Max
		if floor[d] > 0 && (mn <= 0 || mx <= 0) {
			mn, mx = logLimits(mn, mx, floor[d])
			slog.Warn("gonumplot: clamped non-positive limits of log axis", "axis", plot.Dims(d), "min", as.limits.Min, "max", as.limits.Max, "to_min", mn, "to_max", mx)
		}
		ax.Min, ax.Max = mn, mx
	}
	cv.frame.Top = spineStyle(cv.spines[plot.Top])
	cv.frame.Right = spineStyle(cv.spines[plot.Right])
	if cv.ShowLegend && !cv.legendDone {
		for _, le := range cv.legend {
			cv.Plot.Legend.Add(le.label, le.thumb)
		}
		cv.legendDone = true
	}
}

// logFloor returns the smallest positive value drawn on the given
// axis if it has a log scale, 1 if there is none, and 0 for a
// linear axis.
func (cv *Canvas) logFloor(dim plot.Dims) float64 {
	if cv.axes[dim].scale != plot.LogScale {
		return 0
	}
	var rng minmax.F64
	rng.SetEmpty()
	for _, s := range cv.series {
		if dim == plot.X {
			rng.FitInRange(minmax.OfPositive(s.x...))
			continue
		}
		rng.FitInRange(minmax.OfPositive(s.y...))
		rng.FitInRange(minmax.OfPositive(s.high...))
	}
	if !rng.IsValid() {
		return 1
	}
	return rng.Min
}

// dataRange returns the range of the drawn data on the given axis,
// after clipping.
func (cv *Canvas) dataRange(dim plot.Dims) minmax.F64 {
	var rng minmax.F64
	rng.SetEmpty()
	for _, s := range cv.series {
		xmin, xmax, ymin, ymax := s.pl.DataRange()
		if dim == plot.X {
			rng.FitInRange(minmax.F64{Min: xmin, Max: xmax})
		} else {
			rng.FitInRange(minmax.F64{Min: ymin, Max: ymax})
		}
	}
	return rng
}

// logLimits replaces the non-positive ends of the given limits
// with values a log axis can show, based on floor.
func logLimits(mn, mx, floor float64) (float64, float64) {
	if mx <= 0 {
		mx = 10 * floor
	}
	if mn <= 0 {
		mn = math.Min(floor, mx/10)
	}
	return mn, mx
}

// clip resets the plotter data from the series, for the given floors
// of the X and Y axes. A zero floor leaves that axis unclipped.
func (s *series) clip(floor [2]float64) {
	fx, fy := floor[plot.X], floor[plot.Y]
	switch pl := s.pl.(type) {
	case *plotter.Scatter:
		pl.XYs = pl.XYs[:0]
		for i := range s.x {
			if (fx == 0 || s.x[i] > 0) && (fy == 0 || s.y[i] > 0) {
				pl.XYs = append(pl.XYs, plotter.XY{X: s.x[i], Y: s.y[i]})
			}
		}
	case *plotter.Line:
		pl.XYs, _ = xyPairs(raise(s.x, fx), raise(s.y, fy))
	case *plots.Band:
		pl.X, pl.Low, pl.High = raise(s.x, fx), raise(s.y, fy), raise(s.high, fy)
	}
}

// raise returns vals with the values below floor set to floor.
// It returns vals itself for a zero floor.
func raise(vals []float64, floor float64) []float64 {
	if floor == 0 {
		return vals
	}
	r := make([]float64, len(vals))
	for i, v := range vals {
		r[i] = math.Max(v, floor)
	}
	return r
}

// Ticks returns the ticks that will be drawn on the given axis,
// nil if its range is not yet known.
func (cv *Canvas) Ticks(dim plot.Dims) []plot.Tick {
	cv.apply()
	ax, _ := cv.axis(dim)
	if !(ax.Min <= ax.Max) {
		return nil
	}
	gt := ax.Tick.Marker.Ticks(ax.Min, ax.Max)
	ticks := make([]plot.Tick, len(gt))
	for i, t := range gt {
		ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return ticks
}

// Save saves the plot to an image file of the given size in inches.
// The format is determined by the file extension: eps, jpg, jpeg, pdf,
// png, svg, tex, tif or tiff.
func (cv *Canvas) Save(width, height float64, file string) error {
	cv.apply()
	return cv.Plot.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, file)
}

// WriterTo returns an io.WriterTo that writes the plot in the given
// format, at the given size in inches.
func (cv *Canvas) WriterTo(width, height float64, format string) (io.WriterTo, error) {
	cv.apply()
	return cv.Plot.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
}

func xyPairs(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, errs.New("gonumplot: x and y have different lengths")
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

func lineStyle(ls plot.LineStyle) draw.LineStyle {
	return draw.LineStyle{Color: ls.Color, Width: vg.Points(ls.Width)}
}

func spineStyle(sp spine) draw.LineStyle {
	if !sp.visible {
		return draw.LineStyle{Color: color.Transparent}
	}
	return draw.LineStyle{Color: color.Black, Width: vg.Points(sp.width)}
}

func xAlign(a plot.Aligns) text.XAlignment {
	switch a {
	case plot.Center:
		return text.XCenter
	case plot.End:
		return text.XRight
	}
	return text.XLeft
}

func yAlign(a plot.Aligns) text.YAlignment {
	switch a {
	case plot.Center:
		return text.YCenter
	case plot.End:
		return text.YBottom
	}
	return text.YTop
}
