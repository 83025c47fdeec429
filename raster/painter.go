// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/gogpu/ggplot/drawlist"
)

// painter replays draw records onto the engine's context.
type painter struct {
	engine *Engine
}

var _ drawlist.Painter = (*painter)(nil)

func (p *painter) FillShape(s drawlist.Shape, c drawlist.Color) error {
	ctx := p.engine.ctx
	p.setColor(c)
	if err := p.shapePath(s); err != nil {
		return err
	}
	return ctx.Fill()
}

func (p *painter) StrokeShape(s drawlist.Shape, width float32, c drawlist.Color) error {
	ctx := p.engine.ctx
	p.setColor(c)
	ctx.SetLineWidth(float64(width))
	if err := p.shapePath(s); err != nil {
		return err
	}
	return ctx.Stroke()
}

// Polyline strokes a vertex strip. Consecutive segments that share a
// width and color are stroked as one path; a segment takes the style of
// its first vertex.
func (p *painter) Polyline(v []drawlist.LineVertex) error {
	ctx := p.engine.ctx
	last := len(v) - 1
	for start := 0; start < last; {
		end := start + 1
		for end < last && sameStyle(v[end], v[start]) {
			end++
		}

		p.setColor(v[start].Color)
		ctx.SetLineWidth(float64(v[start].Width))
		ctx.MoveTo(float64(v[start].Position[0]), float64(v[start].Position[1]))
		for _, vert := range v[start+1 : end+1] {
			ctx.LineTo(float64(vert.Position[0]), float64(vert.Position[1]))
		}
		if err := ctx.Stroke(); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// Print draws text with its top-left corner at the bounds origin, clipped
// to the bounds.
func (p *painter) Print(cmd drawlist.PrintCommand) error {
	face, err := p.engine.face(cmd.Font, cmd.Scale)
	if err != nil {
		return err
	}

	ctx := p.engine.ctx
	b := cmd.Bounds
	ctx.Push()
	defer ctx.Pop()

	ctx.ClipRect(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height))
	ctx.SetFont(face)
	p.setColor(cmd.Color)
	ctx.DrawString(cmd.Text, float64(b.X), float64(b.Y)+face.Metrics().Ascent)
	return nil
}

// shapePath replaces the current path with the outline of s.
func (p *painter) shapePath(s drawlist.Shape) error {
	ctx := p.engine.ctx
	ctx.ClearPath()
	switch s := s.(type) {
	case drawlist.Rect:
		ctx.DrawRectangle(float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height))
	case drawlist.Circle:
		pts := s.Points()
		if len(pts) == 0 {
			return nil
		}
		ctx.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		for _, pt := range pts[1:] {
			ctx.LineTo(float64(pt.X), float64(pt.Y))
		}
		ctx.ClosePath()
	default:
		return fmt.Errorf("raster: unsupported shape %T", s)
	}
	return nil
}

func (p *painter) setColor(c drawlist.Color) {
	p.engine.ctx.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func sameStyle(a, b drawlist.LineVertex) bool {
	return a.Width == b.Width && a.Color == b.Color
}
