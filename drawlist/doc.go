// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drawlist holds the per-frame list of draw records produced by the
// ggplot backend and consumed by rendering engines.
//
// A List is an append-only, order-preserving sequence of commands:
//
//   - GeometryCommand: a filled or stroked Rect or Circle
//   - LineCommand: a line strip with per-vertex width and color
//   - PrintCommand: a text run clipped to a bounding rectangle
//
// Besides the commands, a List carries shared state that is applied to
// later appends: the current color (used by Print) and the current line
// width (used by StrokeWithColor). The state starts as opaque white and a
// 1px width, so a fresh List is always in a known state at a frame boundary.
//
// Engines walk a List with Playback, which dispatches each command to a
// Painter in call order.
//
// # Thread Safety
//
// List is NOT safe for concurrent use. A List is owned by exactly one
// backend until it is handed to an engine on present.
package drawlist
