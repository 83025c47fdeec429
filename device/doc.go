// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package device defines the drawing-surface context consumed by ggplot and
// provides two implementations.
//
// A Context owns the viewport: the rectangle of the surface that rendering
// engines draw into. The viewport is the single source of truth for the
// drawable size reported to plotting frontends.
//
//   - Headless keeps the viewport in memory and optionally retains the last
//     presented frame. Use it for offscreen rendering and tests.
//   - GPU binds to a gpucontext.DeviceProvider and uploads presented frames
//     to a GPU texture that is drawn into a gogpu window.
//
// Engines that produce pixels hand them to a context through the optional
// FrameSink interface.
//
// # Thread Safety
//
// Contexts are NOT safe for concurrent use.
package device
