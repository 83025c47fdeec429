// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import "errors"

// ErrNoFrame is returned when a frame is requested before any was uploaded.
var ErrNoFrame = errors.New("device: no frame uploaded")

// Viewport is the drawable rectangle of a surface in pixels.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Dimensions returns the viewport width and height.
func (v Viewport) Dimensions() (width, height int) {
	return v.Width, v.Height
}

// Context is a drawing-surface context.
type Context interface {
	// SetViewport sets the drawable rectangle.
	SetViewport(x, y, width, height int)

	// Viewport returns the current drawable rectangle.
	Viewport() Viewport
}

// FrameSink is implemented by contexts that accept rasterized frames.
// Engines producing pixels call Upload once per presented frame.
type FrameSink interface {
	// Upload receives a frame of premultiplied RGBA pixels, 4 bytes per
	// pixel, row-major. The sink must copy data if it retains it.
	Upload(width, height int, data []byte) error
}

// Headless is an in-memory Context. It implements FrameSink and retains
// a copy of the last uploaded frame.
type Headless struct {
	viewport Viewport

	frame       []byte
	frameWidth  int
	frameHeight int
	uploads     int
}

var (
	_ Context   = (*Headless)(nil)
	_ FrameSink = (*Headless)(nil)
)

// NewHeadless creates a Headless context with a viewport of the given size.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		viewport: Viewport{Width: width, Height: height},
	}
}

// SetViewport implements Context.
func (h *Headless) SetViewport(x, y, width, height int) {
	h.viewport = Viewport{X: x, Y: y, Width: width, Height: height}
}

// Viewport implements Context.
func (h *Headless) Viewport() Viewport {
	return h.viewport
}

// Upload implements FrameSink.
func (h *Headless) Upload(width, height int, data []byte) error {
	if cap(h.frame) < len(data) {
		h.frame = make([]byte, len(data))
	}
	h.frame = h.frame[:len(data)]
	copy(h.frame, data)
	h.frameWidth = width
	h.frameHeight = height
	h.uploads++
	return nil
}

// Frame returns the last uploaded frame and its size.
// Returns ErrNoFrame if nothing has been uploaded yet.
func (h *Headless) Frame() (data []byte, width, height int, err error) {
	if h.uploads == 0 {
		return nil, 0, 0, ErrNoFrame
	}
	return h.frame, h.frameWidth, h.frameHeight, nil
}

// Uploads returns the number of frames uploaded so far.
func (h *Headless) Uploads() int {
	return h.uploads
}
