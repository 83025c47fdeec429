// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import "github.com/gogpu/ggplot/drawlist"

// Color is a frontend color: 8-bit RGB channels and a fractional alpha.
type Color struct {
	R, G, B uint8
	// A is the opacity from 0 (transparent) to 1 (opaque).
	A float64
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ConvertColor maps a frontend color to the engine's float color.
// Channels are divided by 255; alpha passes through unchanged.
func ConvertColor(c Color) drawlist.Color {
	return drawlist.Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A),
	}
}
