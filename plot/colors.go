// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// shortColors are the single letter color codes used by many plotting tools.
var shortColors = map[string]color.RGBA{
	"k": colornames.Black,
	"w": colornames.White,
	"r": colornames.Red,
	"g": colornames.Green,
	"b": colornames.Blue,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
	"y": colornames.Yellow,
}

// ParseColor returns the color for a standard SVG / CSS color name
// (e.g., "red", "grey"), a single letter code (e.g., "k"),
// or a hex value of the form #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("plot: empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("plot: unknown color %q", s)
}

func parseHex(s string) (color.Color, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("plot: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("plot: invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
