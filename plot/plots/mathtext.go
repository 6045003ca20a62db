// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"sync"

	"codeberg.org/go-fonts/latin-modern/lmroman10bold"
	"codeberg.org/go-fonts/latin-modern/lmroman10bolditalic"
	"codeberg.org/go-fonts/latin-modern/lmroman10italic"
	"codeberg.org/go-fonts/latin-modern/lmroman10regular"
	stdfnt "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"

	"cogentcore.org/regplot/base/errors"
)

// LatinModern is the typeface of math text.
const LatinModern font.Typeface = "Latin Modern"

var (
	mathOnce  sync.Once
	mathCache *font.Cache
)

// MathFonts returns the font cache used for math text: Latin Modern
// Roman in the Serif variant, which is what [text.Latex] looks up for
// its roman, italic and bold faces.
func MathFonts() *font.Cache {
	mathOnce.Do(func() {
		var coll font.Collection
		add := func(style stdfnt.Style, weight stdfnt.Weight, ttf []byte) {
			fnt := font.Font{Typeface: LatinModern, Variant: "Serif", Style: style, Weight: weight}
			coll = append(coll, font.Face{Font: fnt, Face: errors.Must1(opentype.Parse(ttf))})
		}
		add(stdfnt.StyleNormal, stdfnt.WeightNormal, lmroman10regular.TTF)
		add(stdfnt.StyleItalic, stdfnt.WeightNormal, lmroman10italic.TTF)
		add(stdfnt.StyleNormal, stdfnt.WeightBold, lmroman10bold.TTF)
		add(stdfnt.StyleItalic, stdfnt.WeightBold, lmroman10bolditalic.TTF)
		mathCache = font.NewCache(coll)
	})
	return mathCache
}

// MathStyle returns sty set up to render LaTeX math, keeping its
// size, color, alignment and rotation.
func MathStyle(sty text.Style) text.Style {
	sty.Font = font.Font{Typeface: LatinModern, Variant: "Serif", Size: sty.Font.Size}
	sty.Handler = text.Latex{Fonts: MathFonts()}
	return sty
}
