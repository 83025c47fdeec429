// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot_test

import (
	"fmt"
	"image"
	"testing"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/raster"
)

func Example() {
	dc := device.NewHeadless(0, 0)
	engine := raster.New(200, 100)
	defer engine.Close()

	faces, err := layout.NewFaces(layout.DefaultFont)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer faces.Close()

	b, err := ggplot.New(dc, engine, faces, layout.DefaultFont, ggplot.Config{Width: 200, Height: 100})
	if err != nil {
		fmt.Println(err)
		return
	}

	style := ggplot.ShapeStyle{Fill: ggplot.RGB(255, 0, 0), Width: 2}
	_ = b.DrawRect(image.Pt(10, 10), image.Pt(50, 30), style, true)
	_ = b.DrawLine(image.Pt(0, 90), image.Pt(199, 90), style)
	_ = b.DrawText("f(x)", ggplot.TextStyle{
		FontSize: 14,
		Fill:     ggplot.RGB(0, 0, 0),
		Pos:      ggplot.Anchor{H: ggplot.HPosCenter, V: ggplot.VPosCenter},
	}, image.Pt(100, 50))

	fmt.Println("pending:", b.Pending())
	if err := b.Present(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("pending:", b.Pending())
	// Output:
	// pending: 3
	// pending: 0
}

func TestRasterPipeline(t *testing.T) {
	dc := device.NewHeadless(0, 0)
	engine := raster.New(100, 100)
	t.Cleanup(func() { _ = engine.Close() })

	faces, err := layout.NewFaces(layout.DefaultFont)
	if err != nil {
		t.Fatalf("NewFaces() error = %v", err)
	}
	t.Cleanup(func() { _ = faces.Close() })

	b, err := ggplot.New(dc, engine, faces, layout.DefaultFont, ggplot.Config{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	red := ggplot.ShapeStyle{Fill: ggplot.RGB(255, 0, 0), Width: 1}
	if err := b.DrawRect(image.Pt(50, 30), image.Pt(10, 10), red, true); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawPixel(image.Pt(500, 500), ggplot.RGB(0, 0, 255)); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawText("label", ggplot.TextStyle{FontSize: 12, Fill: ggplot.RGB(0, 0, 0)}, image.Pt(60, 60)); err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}
	if err := b.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	data, w, h, err := dc.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if w != 100 || h != 100 {
		t.Fatalf("frame = %dx%d, want 100x100", w, h)
	}
	i := (20*w + 30) * 4
	if got := [4]byte(data[i : i+4]); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("pixel (30, 20) = %v, want opaque red from the normalized rect", got)
	}

	b.Resize(40, 30)
	if w, h := b.Size(); w != 40 || h != 30 {
		t.Errorf("Size() after Resize = (%d, %d), want (40, 30)", w, h)
	}
	if err := b.Present(); err != nil {
		t.Fatalf("Present() after Resize error = %v", err)
	}
	if _, w, h, _ := dc.Frame(); w != 40 || h != 30 {
		t.Errorf("frame after Resize = %dx%d, want 40x30", w, h)
	}
}
