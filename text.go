// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"image"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggplot/drawlist"
)

// DrawText implements DrawingBackend.
//
// The text box is measured by the Layout, shifted so that the style's anchor
// lands on pos, rotated by the style's transform and printed with a bounding
// box the size of the whole surface; the engine clips glyphs to it.
// Fully transparent text returns immediately without measuring.
func (b *Backend) DrawText(s string, style BackendTextStyle, pos image.Point) error {
	color := style.Color()
	if color.A == 0 {
		return nil
	}

	s = norm.NFC.String(s)
	box, err := b.layout.LayoutBox(s, style.Size())
	if err != nil {
		return &DrawingError{Kind: KindFont, Err: err}
	}

	minX, minY := int(box.MinX), int(box.MinY)
	width := int(box.MaxX) - minX
	height := int(box.MaxY) - minY
	dx, dy := style.Anchor().Offset(width, height)
	x, y := style.Transform().Apply(pos.X+dx-minX, pos.Y+dy-minY)

	vw, vh := b.dc.Viewport().Dimensions()
	bounds := drawlist.Rect{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(vw),
		Height: float32(vh),
	}

	b.list.SetColor(ConvertColor(color))
	b.list.Print(s, b.font, float32(style.Size()), bounds)
	b.list.SetColor(drawlist.White)
	return nil
}
