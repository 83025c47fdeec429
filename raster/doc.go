// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a ggplot.Engine that renders draw lists with
// gg.Context.
//
// Each Process call clears the context, replays the draw list and, when
// the device context is a device.FrameSink, uploads the RGBA pixels.
// The last frame stays available through Image, SavePNG and EncodePNG.
//
// # Example
//
//	// Import to register the engine
//	import _ "github.com/gogpu/ggplot/raster"
//
//	// Create via registry
//	engine, _ := ggplot.NewEngine("raster", 800, 600)
//
//	// Or create directly
//	engine := raster.New(800, 600, raster.WithBackground(gg.White))
//	defer engine.Close()
package raster
