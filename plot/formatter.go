// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Formatter applies a fixed cosmetic style to an [Axes],
// with variants for numeric and date x axes.
type Formatter struct {
	// Axes is the surface being formatted.
	Axes Axes

	// Style has the settings to apply.
	Style AxisStyle

	// DateMinor is an optional ticker for the minor ticks of a date axis,
	// e.g., DayTicks{Interval: 15}. Date axes have no minor ticks when nil.
	DateMinor Ticker
}

// NewFormatter returns a Formatter for the given axes. If st is nil,
// the default AxisStyle is used.
func NewFormatter(ax Axes, st *AxisStyle) *Formatter {
	fm := &Formatter{Axes: ax}
	if st != nil {
		fm.Style = *st
	} else {
		fm.Style.Defaults()
	}
	return fm
}

// FormatCommonAxis applies the cosmetics shared by numeric and date axes.
func (fm *Formatter) FormatCommonAxis() {
	ApplyCommonAxis(fm.Axes, &fm.Style)
}

// ConfigureNumericAxis formats a numeric axis with minor ticks and both
// grid layers. If minor is non-nil it sets the x axis minor tick spacing,
// e.g., MultipleTicks{Base: 0.5}.
func (fm *Formatter) ConfigureNumericAxis(minor Ticker) {
	applyNumeric(fm.Axes, &fm.Style, minor)
}

// ConfigureDateAxis formats a date x axis, with one major tick per
// calendar month labeled as YYYY-MM, and both grid layers.
// X values are time values as given by [TimeValue].
func (fm *Formatter) ConfigureDateAxis() {
	fm.FormatCommonAxis()
	fm.Axes.SetMajorTicker(X, MonthTicks{Format: DefaultMonthFormat})
	if fm.DateMinor != nil {
		fm.Axes.SetMinorTicks(true)
		fm.Axes.SetMinorTicker(X, fm.DateMinor)
	}
	ApplyGrid(fm.Axes)
}
