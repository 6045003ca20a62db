// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"
	"time"
)

// maxTicks bounds the number of ticks a ticker generates.
const maxTicks = 10000

// Tick is a single tick mark on an axis.
type Tick struct {
	// Value is the data value of the tick.
	Value float64

	// Label is the text of the tick. Minor ticks have no label.
	Label string
}

// IsMinor returns true if this is a minor tick.
func (t Tick) IsMinor() bool {
	return t.Label == ""
}

// Ticker generates the ticks for a data range.
type Ticker interface {
	// Ticks returns the ticks within [min, max].
	Ticks(min, max float64) []Tick
}

// MultipleTicks places a tick at every integer multiple of Base.
type MultipleTicks struct {
	Base float64
}

func (mt MultipleTicks) Ticks(min, max float64) []Tick {
	if !(mt.Base > 0) || min > max {
		return nil
	}
	var ticks []Tick
	slop := 1.0e-9 * mt.Base
	for i := math.Ceil((min - slop) / mt.Base); len(ticks) < maxTicks; i++ {
		v := i * mt.Base
		if v > max+slop {
			break
		}
		if v == 0 {
			v = 0 // no -0
		}
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 12, 64)})
	}
	return ticks
}

// DefaultMonthFormat is the tick label layout for [MonthTicks].
const DefaultMonthFormat = "2006-01"

// MonthTicks places a tick at the start of every calendar month.
// Values are time values as given by [TimeValue].
type MonthTicks struct {
	// Format is the time layout of the labels; DefaultMonthFormat if empty.
	Format string
}

func (mt MonthTicks) Ticks(min, max float64) []Tick {
	if min > max {
		return nil
	}
	format := mt.Format
	if format == "" {
		format = DefaultMonthFormat
	}
	t0 := ValueTime(min)
	m := time.Date(t0.Year(), t0.Month(), 1, 0, 0, 0, 0, time.UTC)
	if m.Before(t0) {
		m = m.AddDate(0, 1, 0)
	}
	var ticks []Tick
	for v := TimeValue(m); v <= max && len(ticks) < maxTicks; v = TimeValue(m) {
		ticks = append(ticks, Tick{Value: v, Label: m.Format(format)})
		m = m.AddDate(0, 1, 0)
	}
	return ticks
}

// DayTicks places an unlabeled tick at midnight on days 1, 1+Interval,
// 1+2*Interval, and so on, of each month.
type DayTicks struct {
	// Interval is the number of days between ticks; 1 if <= 0.
	Interval int
}

func (dt DayTicks) Ticks(min, max float64) []Tick {
	if min > max {
		return nil
	}
	iv := dt.Interval
	if iv <= 0 {
		iv = 1
	}
	t0 := ValueTime(min)
	d := time.Date(t0.Year(), t0.Month(), t0.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(t0) {
		d = d.AddDate(0, 0, 1)
	}
	var ticks []Tick
	for v := TimeValue(d); v <= max && len(ticks) < maxTicks; v = TimeValue(d) {
		if (d.Day()-1)%iv == 0 {
			ticks = append(ticks, Tick{Value: v})
		}
		d = d.AddDate(0, 0, 1)
	}
	return ticks
}

// TimeValue returns the plot value of a time: seconds since the Unix epoch.
func TimeValue(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// ValueTime returns the UTC time of a plot value, the inverse of [TimeValue].
func ValueTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
