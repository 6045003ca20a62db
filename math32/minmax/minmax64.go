// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides structs that hold Min and Max values.
package minmax

import "math"

// F64 is a range of float64 values from Min to Max.
// The empty range has Min = +Inf and Max = -Inf, the same
// convention as gonum plot axes before any data is added.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetEmpty sets the range to the empty range, ready for
// iteratively calling FitValInRange and FitInRange.
func (mr *F64) SetEmpty() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns true if Min <= Max, which is false for the empty range.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange extends the range to include val,
// returning true if it had to be extended.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange extends the range to include oth,
// returning true if it had to be extended.
func (mr *F64) FitInRange(oth F64) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// Of returns the range spanned by the given values.
// An empty slice returns the empty range.
func Of(vals ...float64) F64 {
	var mr F64
	mr.SetEmpty()
	for _, v := range vals {
		mr.FitValInRange(v)
	}
	return mr
}

// OfPositive returns the range spanned by the values greater than 0,
// which is what a log axis can show. It is empty if there are none.
func OfPositive(vals ...float64) F64 {
	var mr F64
	mr.SetEmpty()
	for _, v := range vals {
		if v > 0 {
			mr.FitValInRange(v)
		}
	}
	return mr
}
