// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/drawlist"
)

var (
	// ErrNoRecording is returned when an export is requested before any
	// frame was processed.
	ErrNoRecording = errors.New("vector: no recording")

	// ErrUnknownFont is returned when a print record names a font that
	// was never added to the engine.
	ErrUnknownFont = errors.New("vector: unknown font")

	// ErrNotFileBackend is returned by SaveToFile for recording backends
	// that cannot write files.
	ErrNotFileBackend = errors.New("vector: backend does not support files")
)

// uploadBackend is the recording backend used to rasterize frames for a
// device.FrameSink.
const uploadBackend = "raster"

func init() {
	ggplot.RegisterEngine("vector", func(width, height int) (ggplot.Engine, error) {
		return New(width, height), nil
	})
}

// Option configures an Engine.
type Option func(*Engine)

// WithClear fills every frame with c before replaying the draw list.
// By default frames start transparent.
func WithClear(c gg.RGBA) Option {
	return func(e *Engine) {
		e.clear = &c
	}
}

// Engine records draw lists as gg recordings.
//
// Engine is NOT safe for concurrent use.
type Engine struct {
	width, height int
	clear         *gg.RGBA
	fonts         []*text.FontSource
	last          *recording.Recording
	frames        int
}

var _ ggplot.Engine = (*Engine)(nil)

// New creates an engine recording width x height frames.
func New(width, height int, opts ...Option) *Engine {
	e := &Engine{
		width:  max(width, 1),
		height: max(height, 1),
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
		return 0, fmt.Errorf("vector: add font: %w", err)
	}
	e.fonts = append(e.fonts, source)
	return drawlist.FontID(len(e.fonts) - 1), nil
}

// SetWidthHeight implements ggplot.Engine. It applies to the next frame.
func (e *Engine) SetWidthHeight(width, height float32) {
	if width < 1 || height < 1 {
		ggplot.Logger().Warn("vector: resize ignored", "width", width, "height", height)
		return
	}
	e.width, e.height = int(width), int(height)
}

// Size returns the size of the next recorded frame.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// Process implements ggplot.Engine. The frame replaces the previous
// recording only when it is recorded without error.
func (e *Engine) Process(dc device.Context, list *drawlist.List) error {
	rec := recording.NewRecorder(e.width, e.height)
	if e.clear != nil {
		rec.SetColor(*e.clear)
		rec.FillRectangle(0, 0, float64(e.width), float64(e.height))
	}
	if err := list.Playback(&recorderPainter{engine: e, rec: rec}); err != nil {
		return err
	}
	e.last = rec.FinishRecording()
	e.frames++
	ggplot.Logger().Debug("vector: frame recorded", "frame", e.frames, "commands", len(e.last.Commands()))

	sink, ok := dc.(device.FrameSink)
	if !ok {
		return nil
	}
	return e.upload(sink)
}

func (e *Engine) upload(sink device.FrameSink) error {
	backend, err := e.Export(uploadBackend)
	if err != nil {
		return err
	}
	pb, ok := backend.(recording.PixmapBackend)
	if !ok {
		return fmt.Errorf("vector: %s backend has no pixmap", uploadBackend)
	}
	pm := pb.Pixmap()
	if err := sink.Upload(pm.Width(), pm.Height(), pm.Data()); err != nil {
		return fmt.Errorf("vector: upload: %w", err)
	}
	return nil
}

// Frames returns the number of frames recorded.
func (e *Engine) Frames() int {
	return e.frames
}

// Recording returns the last recorded frame.
func (e *Engine) Recording() (*recording.Recording, error) {
	if e.last == nil {
		return nil, ErrNoRecording
	}
	return e.last, nil
}

// Export replays the last frame to a new instance of the named recording
// backend and returns it after End.
func (e *Engine) Export(name string) (recording.Backend, error) {
	rec, err := e.Recording()
	if err != nil {
		return nil, err
	}
	backend, err := recording.NewBackend(name)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	if err := rec.Playback(backend); err != nil {
		return nil, fmt.Errorf("vector: playback to %s: %w", name, err)
	}
	return backend, nil
}

// SaveToFile exports the last frame with the named backend and writes it
// to path.
func (e *Engine) SaveToFile(name, path string) error {
	backend, err := e.Export(name)
	if err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFileBackend, name)
	}
	return fb.SaveToFile(path)
}

// Close releases the fonts and the last recording.
func (e *Engine) Close() error {
	var errs []error
	for _, source := range e.fonts {
		errs = append(errs, source.Close())
	}
	e.fonts = nil
	e.last = nil
	return errors.Join(errs...)
}

func (e *Engine) font(id drawlist.FontID) (*text.FontSource, error) {
	if int(id) >= len(e.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return e.fonts[id], nil
}
