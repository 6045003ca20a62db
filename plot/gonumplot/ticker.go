// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonumplot

import (
	"slices"

	gplot "gonum.org/v1/plot"

	"cogentcore.org/regplot/plot"
)

// ticker is a gonum Ticker combining an optional major and minor
// [plot.Ticker] with the default gonum ticks of the axis scale.
type ticker struct {
	major, minor plot.Ticker

	// base is used for the major ticks when major is nil,
	// and for the minor ticks when minor is nil.
	base gplot.Ticker

	// minorOn enables minor ticks.
	minorOn bool

	// log drops the ticks at or below 0, which a log axis cannot place.
	log bool
}

func (tk *ticker) Ticks(min, max float64) []gplot.Tick {
	var ticks []gplot.Tick
	if tk.major != nil {
		for _, t := range tk.major.Ticks(min, max) {
			ticks = append(ticks, gplot.Tick{Value: t.Value, Label: t.Label})
		}
	}
	baseMinor := tk.minorOn && tk.minor == nil
	if tk.major == nil || baseMinor {
		for _, t := range tk.base.Ticks(min, max) {
			if t.IsMinor() {
				if baseMinor {
					ticks = append(ticks, t)
				}
			} else if tk.major == nil {
				ticks = append(ticks, t)
			}
		}
	}
	if tk.minorOn && tk.minor != nil {
		for _, t := range tk.minor.Ticks(min, max) {
			ticks = append(ticks, gplot.Tick{Value: t.Value})
		}
	}
	if tk.log {
		ticks = slices.DeleteFunc(ticks, func(t gplot.Tick) bool { return t.Value <= 0 })
	}
	return ticks
}
