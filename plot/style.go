// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"cogentcore.org/regplot/math32/minmax"
)

// AxisStyle contains the cosmetic settings applied to an axes by the
// [Formatter] and the [Manager]. Widths and sizes are in points.
type AxisStyle struct {
	// LineWidth is the width of the spines, the ticks and the fitted line.
	LineWidth float64

	// LabelSize is the font size of the major tick labels.
	LabelSize float64

	// TextSize is the font size of the regression annotation.
	TextSize float64

	// Scale selects which axes are logarithmic.
	Scale ScaleModes

	// X and Y are the optional axis limits. A pair is only applied
	// when both ends are fixed.
	X, Y minmax.Range64
}

// NewAxisStyle returns a new AxisStyle with defaults applied.
func NewAxisStyle() *AxisStyle {
	st := &AxisStyle{}
	st.Defaults()
	return st
}

func (st *AxisStyle) Defaults() {
	st.LineWidth = 1.5
	st.LabelSize = 12
	st.TextSize = 10
	st.Scale = Linear
}

// Limits returns the limits for the given dimension.
func (st *AxisStyle) Limits(dim Dims) *minmax.Range64 {
	if dim == Y {
		return &st.Y
	}
	return &st.X
}

// ScaleModes are the combinations of linear and log axes.
type ScaleModes int32

const (
	Linear ScaleModes = iota
	XLog
	YLog
	LogLog
	ScaleModesN
)

var scaleModeNames = [ScaleModesN]string{"linear", "xlog", "ylog", "loglog"}

func (sm ScaleModes) String() string {
	if sm < 0 || sm >= ScaleModesN {
		return fmt.Sprintf("ScaleModes(%d)", int32(sm))
	}
	return scaleModeNames[sm]
}

// SetString sets the mode from its name: linear, xlog, ylog or loglog.
// The empty string is linear.
func (sm *ScaleModes) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		*sm = Linear
		return nil
	}
	for i, nm := range scaleModeNames {
		if nm == s {
			*sm = ScaleModes(i)
			return nil
		}
	}
	return fmt.Errorf("plot: unknown scale mode %q", s)
}

func (sm ScaleModes) MarshalText() ([]byte, error) {
	return []byte(sm.String()), nil
}

func (sm *ScaleModes) UnmarshalText(text []byte) error {
	return sm.SetString(string(text))
}

// Scale returns the transform this mode uses for the given dimension.
func (sm ScaleModes) Scale(dim Dims) Scales {
	switch {
	case sm == LogLog:
		return LogScale
	case sm == XLog && dim == X:
		return LogScale
	case sm == YLog && dim == Y:
		return LogScale
	}
	return LinearScale
}

// LineStyle has style properties for drawing lines. Transparency is
// carried by the alpha of Color.
type LineStyle struct {
	Color color.Color

	// Width is the line width in points.
	Width float64
}

// TickStyle has style properties for the ticks of an axis.
type TickStyle struct {
	// Width is the tick line width in points.
	Width float64

	// LabelSize is the tick label font size in points; 0 leaves it unchanged.
	LabelSize float64
}

// TextStyle has style properties for free text.
type TextStyle struct {
	// Size is the font size in points.
	Size float64

	Color color.Color

	// XAlign aligns the text horizontally around its anchor;
	// End puts the right edge of the text at the anchor.
	XAlign Aligns

	// YAlign aligns the text vertically around its anchor;
	// Start puts the top of the text at the anchor.
	YAlign Aligns

	// Math renders each line as LaTeX math, delimited by $,
	// in the Latin Modern typeface.
	Math bool
}

// WithAlpha returns c with its opacity multiplied by alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = math.Max(0, math.Min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
