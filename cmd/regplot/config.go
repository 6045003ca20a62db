// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/regplot/base/iox/tomlx"
	"cogentcore.org/regplot/base/iox/yamlx"
	"cogentcore.org/regplot/plot"
)

// Config has the settings of the regplot commands.
// It can be loaded from a TOML or YAML file.
type Config struct {
	// Out is the output image file; the format is set by its extension.
	// The command name plus ".png" if empty.
	Out string `toml:"out" yaml:"out"`

	// Width and Height are the image size in inches.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// Scale selects the log axes: linear, xlog, ylog or loglog.
	Scale plot.ScaleModes `toml:"scale" yaml:"scale"`

	LineWidth float64 `toml:"line_width" yaml:"line_width"`
	LabelSize float64 `toml:"label_size" yaml:"label_size"`
	TextSize  float64 `toml:"text_size" yaml:"text_size"`

	// optional axis limits, each pair only applied when both are given
	XMin *float64 `toml:"x_min" yaml:"x_min"`
	XMax *float64 `toml:"x_max" yaml:"x_max"`
	YMin *float64 `toml:"y_min" yaml:"y_min"`
	YMax *float64 `toml:"y_max" yaml:"y_max"`

	// Color is the color of the fitted line and band, and PointColor
	// that of the scatter points: a name, a single letter, or #rrggbb.
	Color      string `toml:"color" yaml:"color"`
	PointColor string `toml:"point_color" yaml:"point_color"`

	// ZeroOffset fits a line through the origin.
	ZeroOffset bool `toml:"zero_offset" yaml:"zero_offset"`

	// Level is the confidence level of the band.
	Level float64 `toml:"level" yaml:"level"`

	// MinorStep is the x minor tick spacing of the scatter plot;
	// the default minor ticks if 0.
	MinorStep float64 `toml:"minor_step" yaml:"minor_step"`

	// Points is the number of synthetic scatter samples.
	Points int `toml:"points" yaml:"points"`

	// Seed seeds the synthetic noise.
	Seed uint64 `toml:"seed" yaml:"seed"`

	// Start and End are the date range of the dates plot, as YYYY-MM-DD.
	Start string `toml:"start" yaml:"start"`
	End   string `toml:"end" yaml:"end"`

	// DayInterval is the spacing in days of the date axis minor ticks;
	// no minor ticks if 0.
	DayInterval int `toml:"day_interval" yaml:"day_interval"`

	// Legend shows a legend of the labeled lines and bands.
	Legend bool `toml:"legend" yaml:"legend"`

	// MathText typesets the fit annotation as LaTeX math.
	MathText bool `toml:"math_text" yaml:"math_text"`
}

func (c *Config) Defaults() {
	c.Width = 6
	c.Height = 4.5
	c.Scale = plot.Linear
	c.LineWidth = 1.5
	c.LabelSize = 12
	c.TextSize = 10
	c.Color = "r"
	c.PointColor = "r"
	c.Level = 0.95
	c.Points = 20
	c.Seed = 1
	c.Start = "2023-07-01"
	c.End = "2023-12-01"
	c.MathText = true
}

// Style returns the axis style for the config.
func (c *Config) Style() *plot.AxisStyle {
	st := plot.NewAxisStyle()
	st.LineWidth = c.LineWidth
	st.LabelSize = c.LabelSize
	st.TextSize = c.TextSize
	st.Scale = c.Scale
	if c.XMin != nil {
		st.X.SetMin(*c.XMin)
	}
	if c.XMax != nil {
		st.X.SetMax(*c.XMax)
	}
	if c.YMin != nil {
		st.Y.SetMin(*c.YMin)
	}
	if c.YMax != nil {
		st.Y.SetMax(*c.YMax)
	}
	return st
}

// Dates returns the parsed Start and End dates.
func (c *Config) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(time.DateOnly, c.Start)
	if err != nil {
		return
	}
	end, err = time.Parse(time.DateOnly, c.End)
	if err != nil {
		return
	}
	if !end.After(start) {
		err = fmt.Errorf("end date %s is not after start date %s", c.End, c.Start)
	}
	return
}

// OpenConfig reads the config from the given TOML or YAML file,
// over the values already in c.
func OpenConfig(c *Config, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Open(c, filename)
	case ".yaml", ".yml":
		return yamlx.Open(c, filename)
	default:
		return fmt.Errorf("config file %q: unsupported type %q, want .toml or .yaml", filename, ext)
	}
}
