// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggplot/drawlist"
)

// recorderPainter re-records draw records onto a recording.Recorder.
type recorderPainter struct {
	engine *Engine
	rec    *recording.Recorder
}

var _ drawlist.Painter = (*recorderPainter)(nil)

func (p *recorderPainter) FillShape(s drawlist.Shape, c drawlist.Color) error {
	p.rec.SetColor(toRGBA(c))
	if r, ok := s.(drawlist.Rect); ok {
		p.rec.FillRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
		return nil
	}
	if err := p.shapePath(s); err != nil {
		return err
	}
	p.rec.Fill()
	return nil
}

func (p *recorderPainter) StrokeShape(s drawlist.Shape, width float32, c drawlist.Color) error {
	p.rec.SetColor(toRGBA(c))
	p.rec.SetLineWidth(float64(width))
	if err := p.shapePath(s); err != nil {
		return err
	}
	p.rec.Stroke()
	return nil
}

func (p *recorderPainter) Polyline(v []drawlist.LineVertex) error {
	last := len(v) - 1
	for start := 0; start < last; {
		end := start + 1
		for end < last && v[end].Width == v[start].Width && v[end].Color == v[start].Color {
			end++
		}

		p.rec.SetColor(toRGBA(v[start].Color))
		p.rec.SetLineWidth(float64(v[start].Width))
		p.rec.MoveTo(float64(v[start].Position[0]), float64(v[start].Position[1]))
		for _, vert := range v[start+1 : end+1] {
			p.rec.LineTo(float64(vert.Position[0]), float64(vert.Position[1]))
		}
		p.rec.Stroke()
		start = end
	}
	return nil
}

func (p *recorderPainter) Print(cmd drawlist.PrintCommand) error {
	source, err := p.engine.font(cmd.Font)
	if err != nil {
		return err
	}
	face := source.Face(float64(cmd.Scale))
	b := cmd.Bounds

	p.rec.Push()
	defer p.rec.Pop()

	p.rec.DrawRectangle(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height))
	p.rec.Clip()
	p.rec.SetFont(face)
	p.rec.SetFontSize(float64(cmd.Scale))
	p.rec.SetFontFamily(source.Name())
	p.rec.SetColor(toRGBA(cmd.Color))
	p.rec.DrawString(cmd.Text, float64(b.X), float64(b.Y)+face.Metrics().Ascent)
	p.rec.ResetClip()
	return nil
}

func (p *recorderPainter) shapePath(s drawlist.Shape) error {
	p.rec.ClearPath()
	switch s := s.(type) {
	case drawlist.Rect:
		p.rec.DrawRectangle(float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height))
	case drawlist.Circle:
		pts := s.Points()
		if len(pts) == 0 {
			return nil
		}
		p.rec.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		for _, pt := range pts[1:] {
			p.rec.LineTo(float64(pt.X), float64(pt.Y))
		}
		p.rec.ClosePath()
	default:
		return fmt.Errorf("vector: unsupported shape %T", s)
	}
	return nil
}

func toRGBA(c drawlist.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}
