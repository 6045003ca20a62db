// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"

	"cogentcore.org/regplot/math32/minmax"
	"cogentcore.org/regplot/plot"
	"cogentcore.org/regplot/plot/gonumplot"
)

// scatterData returns n samples of y = 2x plus normal noise with
// standard deviation 2, at x evenly spaced over [1, 10].
func scatterData(n int, seed uint64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	if n == 1 {
		x[0] = 1
	} else if n > 1 {
		floats.Span(x, 1, 10)
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	for i, xi := range x {
		y[i] = 2*xi + 2*rng.NormFloat64()
	}
	return
}

// datesData returns two daily series from start to end inclusive,
// with time values as given by [plot.TimeValue]: a seasonal one
// around 15 and a slowly rising one from 10.
func datesData(start, end time.Time, seed uint64) (t, a, b []float64) {
	rng := rand.New(rand.NewPCG(seed, seed))
	for d := 0; !start.AddDate(0, 0, d).After(end); d++ {
		t = append(t, plot.TimeValue(start.AddDate(0, 0, d)))
		a = append(a, 15+8*math.Sin(2*math.Pi*float64(d)/60)+rng.NormFloat64())
		b = append(b, 10+0.1*float64(d)+rng.NormFloat64())
	}
	return
}

// Scatter renders a scatter plot of synthetic data with its fitted
// line, confidence band and fit annotation.
func Scatter(c *Config) error {
	pc, err := plot.ParseColor(c.PointColor)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	lc, err := plot.ParseColor(c.Color)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	cv := gonumplot.New()
	cv.ShowLegend = c.Legend
	cv.Plot.X.Label.Text = "x"
	cv.Plot.Y.Label.Text = "y"

	mg := plot.NewManager(cv, c.Style())
	mg.Level = c.Level
	mg.MathText = c.MathText
	var minor plot.Ticker
	if c.MinorStep > 0 {
		minor = plot.MultipleTicks{Base: c.MinorStep}
	}
	mg.AxSetting(minor)

	x, y := scatterData(c.Points, c.Seed)
	if err := mg.ScatterPlot(x, y, pc); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	res, err := mg.PlotRegressionWithCI(x, y, lc, c.ZeroOffset, plot.DefaultTextLoc)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	slog.Debug("fitted", "a", res.A, "b", res.B, "r2", res.R2, "n", res.N, "tcrit", res.TCrit)
	return save(cv, c, "scatter.png")
}

// Dates renders two synthetic daily series on a date axis with
// monthly labels.
func Dates(c *Config) error {
	start, end, err := c.Dates()
	if err != nil {
		return fmt.Errorf("dates: %w", err)
	}
	st := c.Style()
	if !st.X.IsFixed() && !st.X.IsPartial() {
		st.X = minmax.Fixed(plot.TimeValue(start), plot.TimeValue(end))
	}
	if !st.Y.IsFixed() && !st.Y.IsPartial() {
		st.Y = minmax.Fixed(0, 35)
	}
	cv := gonumplot.New()
	cv.ShowLegend = c.Legend
	fm := plot.NewFormatter(cv, st)
	if c.DayInterval > 0 {
		fm.DateMinor = plot.DayTicks{Interval: c.DayInterval}
	}
	fm.ConfigureDateAxis()

	t, a, b := datesData(start, end, c.Seed)
	cv.Line(t, a, plot.LineStyle{Color: color.Gray{Y: 128}, Width: st.LineWidth}, "seasonal")
	cv.Line(t, b, plot.LineStyle{Color: color.RGBA{B: 255, A: 255}, Width: st.LineWidth}, "trend")
	slog.Debug("dates", "start", start, "end", end, "days", len(t))
	return save(cv, c, "dates.png")
}

func save(cv *gonumplot.Canvas, c *Config, def string) error {
	out := c.Out
	if out == "" {
		out = def
	}
	if err := cv.Save(c.Width, c.Height, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	slog.Info("wrote plot", "file", out)
	return nil
}
