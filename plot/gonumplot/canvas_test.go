// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonumplot

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"cogentcore.org/regplot/math32/minmax"
	"cogentcore.org/regplot/plot"
	"cogentcore.org/regplot/plot/plots"
)

func TestFormatCommonAxis(t *testing.T) {
	cv := New()
	st := plot.NewAxisStyle()
	st.Scale = plot.XLog
	st.Y = minmax.Fixed(0, 35)
	plot.NewFormatter(cv, st).FormatCommonAxis()
	cv.apply()

	assert.IsType(t, gplot.LogScale{}, cv.Plot.X.Scale)
	assert.IsType(t, gplot.LinearScale{}, cv.Plot.Y.Scale)
	assert.Equal(t, vg.Points(1.5), cv.Plot.X.LineStyle.Width)
	assert.Equal(t, vg.Points(1.5), cv.Plot.Y.LineStyle.Width)
	assert.Equal(t, vg.Points(1.5), cv.Plot.X.Tick.LineStyle.Width)
	assert.Equal(t, vg.Points(12), cv.Plot.Y.Tick.Label.Font.Size)
	assert.Equal(t, 0.0, cv.Plot.Y.Min)
	assert.Equal(t, 35.0, cv.Plot.Y.Max)
	assert.Equal(t, vg.Length(0), cv.frame.Top.Width, "top spine hidden")
	assert.Equal(t, vg.Length(0), cv.frame.Right.Width, "right spine hidden")
}

func TestLimitsSurviveData(t *testing.T) {
	cv := New()
	cv.SetLimits(plot.X, 0, 10)
	cv.Scatter([]float64{-5, 20}, []float64{1, 2}, color.Black)
	cv.apply()
	assert.Equal(t, 0.0, cv.Plot.X.Min)
	assert.Equal(t, 10.0, cv.Plot.X.Max)
	assert.Equal(t, 1.0, cv.Plot.Y.Min, "autoscaled from data")
	assert.Equal(t, 2.0, cv.Plot.Y.Max)
}

func TestNumericTicks(t *testing.T) {
	cv := New()
	cv.SetLimits(plot.X, 0, 4)
	cv.SetLimits(plot.Y, 0, 4)
	for _, tk := range cv.Ticks(plot.X) {
		assert.False(t, tk.IsMinor(), "minor ticks off by default")
	}

	plot.NewManager(cv, nil).AxSetting(plot.MultipleTicks{Base: 0.5})
	var minor []float64
	for _, tk := range cv.Ticks(plot.X) {
		if tk.IsMinor() {
			minor = append(minor, tk.Value)
		}
	}
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}, minor)
}

func TestDateTicks(t *testing.T) {
	cv := New()
	fm := plot.NewFormatter(cv, nil)
	fm.DateMinor = plot.DayTicks{Interval: 15}
	fm.ConfigureDateAxis()
	start := plot.TimeValue(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC))
	end := plot.TimeValue(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	cv.SetLimits(plot.X, start, end)

	var labels []string
	nminor := 0
	for _, tk := range cv.Ticks(plot.X) {
		if tk.IsMinor() {
			nminor++
			continue
		}
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"2023-07", "2023-08", "2023-09", "2023-10", "2023-11", "2023-12"}, labels)
	assert.Greater(t, nminor, 10)
}

func TestInvalidDataIgnored(t *testing.T) {
	cv := New()
	cv.Scatter([]float64{1, 2}, []float64{1}, color.Black)
	cv.Line([]float64{1, 2}, []float64{1}, plot.LineStyle{Color: color.Black, Width: 1}, "line")
	cv.FillBetween([]float64{1}, []float64{1}, nil, color.Black, "band")
	assert.Empty(t, cv.legend)
	assert.Nil(t, cv.Ticks(plot.X), "no data range")
}

func TestRegressionPlot(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 12.0}
	cv := New()
	cv.ShowLegend = true
	mg := plot.NewManager(cv, nil)
	mg.AxSetting(nil)
	blue := color.RGBA{B: 255, A: 255}
	require.NoError(t, mg.ScatterPlot(x, y, blue))
	res, err := mg.PlotRegressionWithCI(x, y, blue, false, plot.DefaultTextLoc)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.A, 0.1)
	require.Len(t, cv.legend, 2)
	assert.Equal(t, "95% CI", cv.legend[0].label)
	assert.Equal(t, "regression line", cv.legend[1].label)

	fn := filepath.Join(t.TempDir(), "regression.png")
	require.NoError(t, cv.Save(5, 4, fn))
	assert.FileExists(t, fn)

	wt, err := cv.WriterTo(5, 4, "svg")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestLogScaleBandCrossingZero(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{0.2, 5, 0.3, 8, 0.5}
	cv := New()
	st := plot.NewAxisStyle()
	st.Scale = plot.YLog
	mg := plot.NewManager(cv, st)
	mg.MathText = true
	mg.AxSetting(nil)
	require.NoError(t, mg.ScatterPlot(x, y, color.Black))
	_, err := mg.PlotRegressionWithCI(x, y, color.Black, false, plot.DefaultTextLoc)
	require.NoError(t, err)

	cv.apply()
	assert.Greater(t, cv.Plot.Y.Min, 0.0)
	assert.Equal(t, 0.2, cv.Plot.Y.Min, "raised to the smallest positive value")
	band := cv.series[1].pl.(*plots.Band)
	assert.Less(t, cv.series[1].y[0], 0.0, "the band crosses zero")
	for i := range band.X {
		assert.GreaterOrEqual(t, band.Low[i], 0.2)
	}
	for _, tk := range cv.Ticks(plot.Y) {
		assert.Greater(t, tk.Value, 0.0)
	}

	wt, err := cv.WriterTo(4, 3, "png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestLogScaleLimits(t *testing.T) {
	cv := New()
	cv.SetScale(plot.Y, plot.LogScale)
	cv.SetLimits(plot.Y, 0, 35)
	cv.Line([]float64{1, 2, 3}, []float64{-1, 0.5, 20}, plot.LineStyle{Color: color.Black, Width: 1}, "")
	cv.apply()
	assert.Equal(t, 0.5, cv.Plot.Y.Min, "non-positive limit clamped")
	assert.Equal(t, 35.0, cv.Plot.Y.Max)
	line := cv.series[0].pl.(*plotter.Line)
	assert.Equal(t, 0.5, line.XYs[0].Y)
	assert.Equal(t, -1.0, cv.series[0].y[0], "drawn data kept")

	cv.SetLimits(plot.Y, -10, -1)
	cv.apply()
	assert.Equal(t, 0.5, cv.Plot.Y.Min)
	assert.Equal(t, 5.0, cv.Plot.Y.Max)

	cv.SetScale(plot.Y, plot.LinearScale)
	cv.apply()
	assert.Equal(t, -1.0, line.XYs[0].Y, "unclipped on a linear axis")

	fn := filepath.Join(t.TempDir(), "log.png")
	cv.SetScale(plot.Y, plot.LogScale)
	cv.SetLimits(plot.Y, 0, 35)
	require.NoError(t, cv.Save(4, 3, fn))
}

func TestLogScaleScatter(t *testing.T) {
	cv := New()
	cv.SetScale(plot.X, plot.LogScale)
	cv.Scatter([]float64{-2, 0, 1, 10}, []float64{1, 2, 3, 4}, color.Black)
	cv.apply()
	sc := cv.series[0].pl.(*plotter.Scatter)
	assert.Equal(t, plotter.XYs{{X: 1, Y: 3}, {X: 10, Y: 4}}, sc.XYs, "points at or below 0 dropped")
	assert.Equal(t, 1.0, cv.Plot.X.Min)
	assert.Equal(t, 10.0, cv.Plot.X.Max)
	assert.Equal(t, 3.0, cv.Plot.Y.Min, "dropped points leave the y range too")

	tk := &ticker{major: plot.MultipleTicks{Base: 5}, base: gplot.LogTicks{}, log: true}
	for _, t0 := range tk.Ticks(-10, 10) {
		assert.Greater(t, t0.Value, 0.0)
	}
}
