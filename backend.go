// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"image"

	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/drawlist"
)

// DrawingBackend is the surface a plotting frontend draws onto.
// Every operation returns nil or a *DrawingError.
type DrawingBackend interface {
	// Size returns the drawable size in pixels.
	Size() (width, height uint32)

	// EnsurePrepared is called by the frontend before drawing a frame.
	EnsurePrepared() error

	// Present flushes the frame drawn so far.
	Present() error

	DrawPixel(p image.Point, c Color) error
	DrawLine(from, to image.Point, style BackendStyle) error
	DrawRect(upperLeft, bottomRight image.Point, style BackendStyle, fill bool) error
	DrawPath(path []image.Point, style BackendStyle) error
	DrawCircle(center image.Point, radius uint32, style BackendStyle, fill bool) error
	DrawText(s string, style BackendTextStyle, pos image.Point) error
}

// minCircleSegments keeps small circles round.
const minCircleSegments = 10

// Backend translates frontend primitives into a draw list and presents it
// through an Engine.
//
// Backend is NOT safe for concurrent use. Callers drawing from several
// goroutines must serialize access themselves.
type Backend struct {
	dc     device.Context
	engine Engine
	layout Layout
	font   drawlist.FontID
	cfg    Config
	list   *drawlist.List
}

var _ DrawingBackend = (*Backend)(nil)

// New creates a Backend bound to a device context, an engine and a layout
// service. The viewport and the engine are sized to cfg.Width x cfg.Height
// and fontData is registered with the engine once.
func New(dc device.Context, engine Engine, layout Layout, fontData []byte, cfg Config) (*Backend, error) {
	switch {
	case dc == nil:
		return nil, ErrNilDevice
	case engine == nil:
		return nil, ErrNilEngine
	case layout == nil:
		return nil, ErrNilLayout
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	dc.SetViewport(0, 0, int(cfg.Width), int(cfg.Height))
	engine.SetWidthHeight(cfg.Width, cfg.Height)

	font, err := engine.AddFont(fontData)
	if err != nil {
		return nil, err
	}

	Logger().Info("ggplot: backend created",
		"width", cfg.Width, "height", cfg.Height, "font", font)

	return &Backend{
		dc:     dc,
		engine: engine,
		layout: layout,
		font:   font,
		cfg:    cfg,
		list:   drawlist.New(cfg.capacity()),
	}, nil
}

// Font returns the handle of the font registered at construction.
func (b *Backend) Font() drawlist.FontID {
	return b.font
}

// Pending returns the number of draw records waiting for Present.
func (b *Backend) Pending() int {
	return b.list.Len()
}

// Size implements DrawingBackend. It reads the device viewport.
func (b *Backend) Size() (width, height uint32) {
	w, h := b.dc.Viewport().Dimensions()
	return uint32(max(w, 0)), uint32(max(h, 0))
}

// Resize updates the device viewport and the engine together.
func (b *Backend) Resize(width, height float32) {
	b.dc.SetViewport(0, 0, int(width), int(height))
	b.engine.SetWidthHeight(width, height)
	Logger().Debug("ggplot: resized", "width", width, "height", height)
}

// EnsurePrepared implements DrawingBackend. No setup is needed.
func (b *Backend) EnsurePrepared() error {
	return nil
}

// Present implements DrawingBackend. The draw list is replaced by an
// empty one before submission, so a failed frame is dropped rather than
// replayed into the next one.
func (b *Backend) Present() error {
	list := b.list
	b.list = drawlist.New(b.cfg.capacity())

	if err := b.engine.Process(b.dc, list); err != nil {
		Logger().Warn("ggplot: present failed", "commands", list.Len(), "err", err)
		return &DrawingError{Kind: KindDrawing, Err: err}
	}
	Logger().Debug("ggplot: presented", "commands", list.Len(), "vertices", list.Vertices())
	return nil
}

// DrawPixel implements DrawingBackend. Points outside the viewport are
// dropped silently.
func (b *Backend) DrawPixel(p image.Point, c Color) error {
	w, h := b.Size()
	if p.X < 0 || p.Y < 0 || uint32(p.X) >= w || uint32(p.Y) >= h {
		return nil
	}
	b.list.DrawWithColor(drawlist.Rect{
		X:      float32(p.X),
		Y:      float32(p.Y),
		Width:  1,
		Height: 1,
	}, ConvertColor(c))
	return nil
}

// DrawLine implements DrawingBackend.
func (b *Backend) DrawLine(from, to image.Point, style BackendStyle) error {
	width := float32(style.StrokeWidth())
	color := ConvertColor(style.Color())
	b.list.Line2D([]drawlist.LineVertex{
		vertex(from, width, color),
		vertex(to, width, color),
	})
	return nil
}

// DrawRect implements DrawingBackend. Corners may be given in any order;
// the rectangle is normalized to a non-negative width and height.
func (b *Backend) DrawRect(upperLeft, bottomRight image.Point, style BackendStyle, fill bool) error {
	r := image.Rectangle{Min: upperLeft, Max: bottomRight}.Canon()
	geometry := drawlist.Rect{
		X:      float32(r.Min.X),
		Y:      float32(r.Min.Y),
		Width:  float32(r.Dx()),
		Height: float32(r.Dy()),
	}
	b.emit(geometry, style, fill)
	return nil
}

// DrawPath implements DrawingBackend. Paths with fewer than two points
// draw nothing.
func (b *Backend) DrawPath(path []image.Point, style BackendStyle) error {
	if len(path) < 2 {
		return nil
	}
	width := float32(style.StrokeWidth())
	color := ConvertColor(style.Color())
	vertices := make([]drawlist.LineVertex, len(path))
	for i, p := range path {
		vertices[i] = vertex(p, width, color)
	}
	b.list.Line2D(vertices)
	return nil
}

// DrawCircle implements DrawingBackend. The circle is tessellated with one
// segment per pixel of radius, and never fewer than 10.
func (b *Backend) DrawCircle(center image.Point, radius uint32, style BackendStyle, fill bool) error {
	geometry := drawlist.Circle{
		X:        float32(center.X),
		Y:        float32(center.Y),
		Radius:   float32(radius),
		Segments: max(radius, minCircleSegments),
	}
	b.emit(geometry, style, fill)
	return nil
}

// emit appends a filled or stroked shape. The stroke width is set on the
// list only for strokes.
func (b *Backend) emit(s drawlist.Shape, style BackendStyle, fill bool) {
	color := ConvertColor(style.Color())
	if fill {
		b.list.DrawWithColor(s, color)
		return
	}
	b.list.SetLineWidth(float32(style.StrokeWidth()))
	b.list.StrokeWithColor(s, color)
}

func vertex(p image.Point, width float32, color drawlist.Color) drawlist.LineVertex {
	return drawlist.LineVertex{
		Position: [3]float32{float32(p.X), float32(p.Y), 0},
		Width:    width,
		Color:    color,
	}
}
