// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// GPU errors.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("device: nil DeviceProvider")

	// ErrClosed is returned when a closed GPU context is used.
	ErrClosed = errors.New("device: context is closed")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("device: draw context has no TextureCreator")

	// ErrInvalidTexture is returned when a created texture cannot be drawn.
	ErrInvalidTexture = errors.New("device: texture does not implement gpucontext.Texture")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// pendingFrame holds uploaded pixels until a texture can be created.
type pendingFrame struct {
	width  int
	height int
	data   []byte
}

// GPU is a Context backed by a gogpu device. Frames uploaded by an engine
// are kept on the CPU until RenderTo creates or updates the GPU texture and
// draws it into the window.
//
// GPU is NOT safe for concurrent use.
type GPU struct {
	provider gpucontext.DeviceProvider
	viewport Viewport

	pending    *pendingFrame
	texture    any // *gogpu.Texture once created
	oldTexture any // awaiting destruction after the next texture write
	texWidth   int
	texHeight  int
	closed     bool
}

var (
	_ Context   = (*GPU)(nil)
	_ FrameSink = (*GPU)(nil)
)

// NewGPU creates a GPU context for the given provider with a viewport of
// width x height. The provider should come from gogpu.App.GPUContextProvider().
func NewGPU(provider gpucontext.DeviceProvider, width, height int) (*GPU, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &GPU{
		provider: provider,
		viewport: Viewport{Width: width, Height: height},
	}, nil
}

// SetViewport implements Context.
func (g *GPU) SetViewport(x, y, width, height int) {
	g.viewport = Viewport{X: x, Y: y, Width: width, Height: height}
}

// Viewport implements Context.
func (g *GPU) Viewport() Viewport {
	return g.viewport
}

// SurfaceFormat returns the texture format of the window surface.
func (g *GPU) SurfaceFormat() gputypes.TextureFormat {
	return g.provider.SurfaceFormat()
}

// Provider returns the DeviceProvider. Returns nil once the context is closed.
func (g *GPU) Provider() gpucontext.DeviceProvider {
	if g.closed {
		return nil
	}
	return g.provider
}

// Upload implements FrameSink. The pixels are copied and kept until the
// next RenderTo.
func (g *GPU) Upload(width, height int, data []byte) error {
	if g.closed {
		return ErrClosed
	}
	if g.pending == nil {
		g.pending = &pendingFrame{}
	}
	p := g.pending
	if cap(p.data) < len(data) {
		p.data = make([]byte, len(data))
	}
	p.data = p.data[:len(data)]
	copy(p.data, data)
	p.width = width
	p.height = height

	// A size change invalidates the texture. It may still be referenced by
	// in-flight command buffers, so destruction waits until RenderTo has
	// written the replacement.
	if g.texture != nil && (width != g.texWidth || height != g.texHeight) {
		g.destroyOld()
		g.oldTexture = g.texture
		g.texture = nil
	}
	return nil
}

// HasPendingFrame reports whether an uploaded frame has not been rendered yet.
func (g *GPU) HasPendingFrame() bool {
	return g.pending != nil && g.pending.width > 0
}

// RenderTo writes the pending frame to the GPU texture, creating it when
// needed, and draws the texture at the viewport origin.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func (g *GPU) RenderTo(dc gpucontext.TextureDrawer) error {
	if g.closed {
		return ErrClosed
	}

	if g.HasPendingFrame() {
		if err := g.writeTexture(dc); err != nil {
			return err
		}
	}
	if g.texture == nil {
		return ErrNoFrame
	}

	tex, ok := g.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(tex, float32(g.viewport.X), float32(g.viewport.Y))
}

func (g *GPU) writeTexture(dc gpucontext.TextureDrawer) error {
	p := g.pending
	defer func() { p.width, p.height = 0, 0 }()

	if g.texture != nil {
		if updater, ok := g.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.data); err != nil {
				return fmt.Errorf("device: texture update failed: %w", err)
			}
			return nil
		}
		// Not updatable in place: retire it until the replacement is written.
		g.destroyOld()
		g.oldTexture = g.texture
		g.texture = nil
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	tex, err := creator.NewTextureFromRGBA(p.width, p.height, p.data)
	if err != nil {
		return fmt.Errorf("device: NewTextureFromRGBA failed: %w", err)
	}

	// gg pixmaps are premultiplied.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	g.texture = tex
	g.texWidth = p.width
	g.texHeight = p.height

	// The texture write waited for the GPU, so the old texture is idle now.
	g.destroyOld()
	return nil
}

func (g *GPU) destroyOld() {
	if g.oldTexture == nil {
		return
	}
	if d, ok := g.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	g.oldTexture = nil
}

// Close releases the GPU textures. Close is idempotent.
func (g *GPU) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.destroyOld()
	if d, ok := g.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	g.texture = nil
	g.pending = nil
	g.provider = nil
	return nil
}
