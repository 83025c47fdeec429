// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"testing"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/layout"
)

// inkBounds returns the bounding box of all non-transparent pixels.
func inkBounds(data []byte, width, height int) image.Rectangle {
	var r image.Rectangle
	for y := range height {
		for x := range width {
			if rgba8(data, width, x, y)[3] == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if r.Empty() {
				r = px
			} else {
				r = r.Union(px)
			}
		}
	}
	return r
}

func TestDrawTextLandsOnAnchor(t *testing.T) {
	const (
		label = "HHHH"
		size  = 20
	)
	at := image.Pt(100, 100)

	faces, err := layout.NewFaces(layout.DefaultFont)
	if err != nil {
		t.Fatalf("NewFaces() error = %v", err)
	}
	t.Cleanup(func() { _ = faces.Close() })

	box, err := faces.LayoutBox(label, size)
	if err != nil {
		t.Fatalf("LayoutBox() error = %v", err)
	}
	w, h := int(box.MaxX), int(box.MaxY)
	ascent := int(faces.Face(size).Metrics().Ascent)

	tests := []struct {
		name    string
		anchor  ggplot.Anchor
		wantTop image.Point // top-left corner of the line box
	}{
		{"top left", ggplot.Anchor{H: ggplot.HPosLeft, V: ggplot.VPosTop}, at},
		{"center center", ggplot.Anchor{H: ggplot.HPosCenter, V: ggplot.VPosCenter}, at.Sub(image.Pt(w/2, h/2))},
		{"right bottom", ggplot.Anchor{H: ggplot.HPosRight, V: ggplot.VPosBottom}, at.Sub(image.Pt(w, h))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, 300, 200)
			dc := device.NewHeadless(300, 200)
			b, err := ggplot.New(dc, e, faces, layout.DefaultFont, ggplot.Config{Width: 300, Height: 200})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			style := ggplot.TextStyle{FontSize: size, Fill: ggplot.RGB(0, 0, 0), Pos: tt.anchor}
			if err := b.DrawText(label, style, at); err != nil {
				t.Fatalf("DrawText() error = %v", err)
			}
			if err := b.Present(); err != nil {
				t.Fatalf("Present() error = %v", err)
			}

			data, fw, fh, err := dc.Frame()
			if err != nil {
				t.Fatalf("Frame() error = %v", err)
			}
			ink := inkBounds(data, fw, fh)
			if ink.Empty() {
				t.Fatal("text drew no pixels")
			}

			// Antialiasing may bleed one pixel past the line box.
			want := image.Rectangle{Min: tt.wantTop, Max: tt.wantTop.Add(image.Pt(w, h))}.Inset(-1)
			if !ink.In(want) {
				t.Errorf("ink %v outside line box %v", ink, want)
			}
			// Capital letters sit on the baseline.
			if baseline := tt.wantTop.Y + ascent; ink.Max.Y < baseline-1 || ink.Max.Y > baseline+2 {
				t.Errorf("ink bottom = %d, want the baseline %d", ink.Max.Y, baseline)
			}
		})
	}
}
