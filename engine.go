// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/drawlist"
)

// Engine is the retained-mode graphics engine that rasterizes draw lists.
//
// The raster package provides an Engine on gg.Context and the vector
// package one on gg/recording.
type Engine interface {
	// AddFont registers font data and returns its handle.
	// Called once per Backend at construction.
	AddFont(data []byte) (drawlist.FontID, error)

	// Process submits a frame's draw list to the device.
	Process(dc device.Context, list *drawlist.List) error

	// SetWidthHeight updates the engine's notion of the surface size.
	SetWidthHeight(width, height float32)
}

// Layout measures text for placement.
type Layout interface {
	// LayoutBox returns the unscaled bounding box of s at the given size,
	// relative to the top-left corner of the line. The baseline lies one
	// font ascent below the top.
	LayoutBox(s string, size float64) (text.Rect, error)
}
