// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"sync"

	"github.com/gogpu/gg/text"
)

// Faces measures text with gg/text face metrics.
//
// Faces is safe for concurrent use.
type Faces struct {
	source *text.FontSource

	mu    sync.Mutex
	faces map[float64]text.Face
}

// NewFaces parses font data into a Faces layout service.
func NewFaces(data []byte) (*Faces, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return &Faces{
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Source returns the underlying font source.
func (f *Faces) Source() *text.FontSource {
	return f.source
}

// Face returns the face at size, creating it on first use.
func (f *Faces) Face(size float64) text.Face {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// LayoutBox implements ggplot.Layout. The box spans the advance
// horizontally and the face ascent plus descent vertically, with its top at 0.
func (f *Faces) LayoutBox(s string, size float64) (text.Rect, error) {
	if err := checkInput(s, size); err != nil {
		return text.Rect{}, err
	}

	face := f.Face(size)
	m := face.Metrics()
	return text.Rect{
		MinX: 0,
		MinY: 0,
		MaxX: face.Advance(s),
		MaxY: m.Ascent + m.Descent,
	}, nil
}

// Close releases the font source.
func (f *Faces) Close() error {
	f.mu.Lock()
	clear(f.faces)
	f.mu.Unlock()
	return f.source.Close()
}
