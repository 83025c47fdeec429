// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text by shaping it with go-text/typesetting.
// The measured width includes kerning and ligature substitution.
//
// Shaper is safe for concurrent use. The parsed font is shared and each
// call gets its own go-text face; HarfBuzz shapers are pooled.
type Shaper struct {
	font *font.Font
	lang language.Language
	pool sync.Pool
}

// NewShaper parses font data into a Shaper.
func NewShaper(data []byte) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Shaper{
		font: face.Font,
		lang: language.NewLanguage("en"),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// LayoutBox implements ggplot.Layout. The box spans the shaped advance
// horizontally and the line ascent plus descent vertically, with its top at 0.
func (s *Shaper) LayoutBox(str string, size float64) (text.Rect, error) {
	if err := checkInput(str, size); err != nil {
		return text.Rect{}, err
	}

	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  s.lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	// go-text reports the descent as a negative offset from the baseline.
	return text.Rect{
		MinX: 0,
		MinY: 0,
		MaxX: fromFixed(out.Advance),
		MaxY: fromFixed(out.LineBounds.Ascent - out.LineBounds.Descent),
	}, nil
}

// scriptOf returns the script of the first non-space rune, Latin if none.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
