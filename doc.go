// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggplot is a plotting backend for gg: it lets a generic 2D
// charting frontend draw onto a GPU-backed gg surface.
//
// The frontend talks to a [DrawingBackend]. Each primitive (pixel, line,
// rectangle, path, circle, anchored text) is translated into draw records
// and appended to a per-frame [drawlist.List]. Present hands the whole list
// to an [Engine] and starts a new, empty list.
//
// # Architecture
//
//	frontend -> Backend -> drawlist.List -> Engine.Process -> device.Context
//
// The collaborators are interfaces:
//
//   - device.Context owns the viewport (the drawable size)
//   - Engine rasterizes or records draw lists
//   - Layout measures text for anchoring
//
// Engines register themselves by name, like database/sql drivers:
//
//	import _ "github.com/gogpu/ggplot/raster"
//
//	engine, _ := ggplot.NewEngine("raster", 800, 600)
//
// # Usage
//
//	dc := device.NewHeadless(800, 600)
//	engine := raster.New(800, 600)
//	faces, _ := layout.NewFaces(layout.DefaultFont)
//
//	b, err := ggplot.New(dc, engine, faces, layout.DefaultFont, ggplot.Config{
//	    Width:  800,
//	    Height: 600,
//	})
//	if err != nil {
//	    return err
//	}
//
//	style := ggplot.ShapeStyle{Fill: ggplot.RGB(255, 0, 0), Width: 2}
//	_ = b.DrawLine(image.Pt(10, 10), image.Pt(200, 120), style)
//	_ = b.DrawText("y = f(x)", ggplot.TextStyle{
//	    FontSize: 14,
//	    Fill:     ggplot.RGB(0, 0, 0),
//	    Pos:      ggplot.Anchor{H: ggplot.HPosCenter, V: ggplot.VPosCenter},
//	}, image.Pt(400, 20))
//	if err := b.Present(); err != nil {
//	    return err
//	}
//
// # Clipping
//
// Only pixels are clipped against the viewport. Lines, paths, rectangles and
// circles are passed to the engine unchanged, and text is clipped by the
// engine against a surface-sized box.
//
// # Errors
//
// Failures come back as *DrawingError. KindFont means the text could not be
// measured; KindDrawing means the engine rejected a frame. The draw list is
// cleared by Present whether or not the engine succeeds.
//
// # Thread Safety
//
// Backend is NOT safe for concurrent use. SetLogger and the engine registry
// are safe for concurrent use.
package ggplot
