// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

// Range64 represents a range of values for plotting, where the min or max
// can optionally be fixed to a specific value. Each end is only meaningful
// when its Fix flag is set.
type Range64 struct {
	// Min value
	Min float64

	// Max value
	Max float64

	// fix the minimum end of the range
	FixMin bool

	// fix the maximum end of the range
	FixMax bool
}

// Fixed returns a Range64 with both ends fixed at the given values.
func Fixed(mn, mx float64) Range64 {
	return Range64{Min: mn, Max: mx, FixMin: true, FixMax: true}
}

// SetMin sets a fixed min value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed max value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// Clear unfixes both ends.
func (rr *Range64) Clear() {
	*rr = Range64{}
}

// IsFixed returns true if both ends of the range are fixed.
func (rr *Range64) IsFixed() bool {
	return rr.FixMin && rr.FixMax
}

// IsPartial returns true if exactly one end of the range is fixed.
func (rr *Range64) IsPartial() bool {
	return rr.FixMin != rr.FixMax
}

// Range returns Max - Min.
func (rr *Range64) Range() float64 {
	return rr.Max - rr.Min
}

// F64 returns the Min, Max values as an F64.
func (rr *Range64) F64() F64 {
	return F64{Min: rr.Min, Max: rr.Max}
}
