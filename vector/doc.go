// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vector provides a ggplot.Engine that records each presented
// frame with gg/recording instead of rasterizing it.
//
// The last frame is kept as a *recording.Recording and can be replayed to
// any registered recording backend. The "raster" recording backend is
// always available; PDF and SVG backends register themselves when their
// modules are imported.
//
//	engine := vector.New(800, 600)
//	// ... draw through a ggplot.Backend and Present ...
//	if err := engine.SaveToFile("raster", "plot.png"); err != nil {
//	    return err
//	}
//
// When the device context is a device.FrameSink, each frame is also
// replayed to the raster recording backend and uploaded.
package vector
