// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/drawlist"
)

// ErrUnknownFont is returned when a print record names a font that was
// never added to the engine.
var ErrUnknownFont = errors.New("raster: unknown font")

func init() {
	ggplot.RegisterEngine("raster", func(width, height int) (ggplot.Engine, error) {
		return New(width, height), nil
	})
}

// Option configures an Engine.
type Option func(*Engine)

// WithBackground sets the color each frame is cleared to.
// The default is transparent.
func WithBackground(c gg.RGBA) Option {
	return func(e *Engine) {
		e.background = c
	}
}

type faceKey struct {
	font drawlist.FontID
	size float32
}

// Engine renders draw lists onto a gg.Context.
//
// Engine is NOT safe for concurrent use.
type Engine struct {
	ctx        *gg.Context
	background gg.RGBA
	fonts      []*text.FontSource
	faces      map[faceKey]text.Face
	frames     int
}

var _ ggplot.Engine = (*Engine)(nil)

// New creates an engine with a width x height surface.
// Dimensions below one pixel are raised to one.
func New(width, height int, opts ...Option) *Engine {
	e := &Engine{
		ctx:        gg.NewContext(max(width, 1), max(height, 1)),
		background: gg.Transparent,
		faces:      make(map[faceKey]text.Face),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddFont implements ggplot.Engine. Handles are assigned in order from zero.
func (e *Engine) AddFont(data []byte) (drawlist.FontID, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return 0, fmt.Errorf("raster: add font: %w", err)
	}
	id := drawlist.FontID(len(e.fonts))
	e.fonts = append(e.fonts, source)
	ggplot.Logger().Debug("raster: font added", "id", id, "name", source.Name())
	return id, nil
}

// SetWidthHeight implements ggplot.Engine. The surface is reallocated only
// when the integer size changes.
func (e *Engine) SetWidthHeight(width, height float32) {
	if err := e.ctx.Resize(int(width), int(height)); err != nil {
		ggplot.Logger().Warn("raster: resize ignored", "width", width, "height", height, "err", err)
	}
}

// Process implements ggplot.Engine.
func (e *Engine) Process(dc device.Context, list *drawlist.List) error {
	e.ctx.ClearWithColor(e.background)
	if err := list.Playback(&painter{engine: e}); err != nil {
		return err
	}
	if err := e.ctx.FlushGPU(); err != nil {
		return fmt.Errorf("raster: flush: %w", err)
	}
	e.frames++

	sink, ok := dc.(device.FrameSink)
	if !ok {
		return nil
	}
	pm := e.ctx.ResizeTarget()
	if err := sink.Upload(pm.Width(), pm.Height(), pm.Data()); err != nil {
		return fmt.Errorf("raster: upload: %w", err)
	}
	return nil
}

// Frames returns the number of frames processed.
func (e *Engine) Frames() int {
	return e.frames
}

// Context returns the underlying gg.Context.
func (e *Engine) Context() *gg.Context {
	return e.ctx
}

// Image returns the last rendered frame.
func (e *Engine) Image() image.Image {
	return e.ctx.Image()
}

// SavePNG saves the last rendered frame to a PNG file.
func (e *Engine) SavePNG(path string) error {
	return e.ctx.SavePNG(path)
}

// EncodePNG writes the last rendered frame as PNG.
func (e *Engine) EncodePNG(w io.Writer) error {
	return e.ctx.EncodePNG(w)
}

// Close releases the fonts and the context.
func (e *Engine) Close() error {
	var errs []error
	for _, source := range e.fonts {
		errs = append(errs, source.Close())
	}
	e.fonts = nil
	clear(e.faces)
	errs = append(errs, e.ctx.Close())
	return errors.Join(errs...)
}

func (e *Engine) face(id drawlist.FontID, size float32) (text.Face, error) {
	if int(id) >= len(e.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	key := faceKey{font: id, size: size}
	face, ok := e.faces[key]
	if !ok {
		face = e.fonts[id].Face(float64(size))
		e.faces[key] = face
	}
	return face, nil
}
