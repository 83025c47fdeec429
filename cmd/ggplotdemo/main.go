// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggplotdemo renders a plot scene to PNG through a ggplot engine.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/device"
	"github.com/gogpu/ggplot/internal/scene"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/raster"
	"github.com/gogpu/ggplot/vector"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (default: built-in demo)")
		output    = flag.String("output", "plot.png", "output file")
		engine    = flag.String("engine", "raster", "rendering engine (raster, vector, or any registered name)")
		shaper    = flag.Bool("shape", false, "measure text with HarfBuzz shaping")
		width     = flag.Int("width", 0, "override scene width")
		height    = flag.Int("height", 0, "override scene height")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}

	if err := render(s, *engine, *shaper, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Plot saved to %s (%dx%d, %s engine)\n", *output, s.Width, s.Height, *engine)
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Load(bytes.NewReader(scene.DefaultYAML))
	}
	return scene.LoadFile(path)
}

func newLayout(shape bool) (ggplot.Layout, error) {
	if shape {
		return layout.NewShaper(layout.DefaultFont)
	}
	return layout.NewFaces(layout.DefaultFont)
}

func render(s *scene.Scene, name string, shape bool, output string) error {
	var (
		eng  ggplot.Engine
		save func(dc *device.Headless) error
	)
	switch name {
	case "raster":
		e := raster.New(s.Width, s.Height, raster.WithBackground(s.BackgroundColor()))
		defer e.Close()
		eng = e
		save = func(*device.Headless) error { return e.SavePNG(output) }
	case "vector":
		e := vector.New(s.Width, s.Height, vector.WithClear(s.BackgroundColor()))
		defer e.Close()
		eng = e
		save = func(*device.Headless) error { return e.SaveToFile("raster", output) }
	default:
		e, err := ggplot.NewEngine(name, s.Width, s.Height)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, ggplot.Engines())
		}
		eng = e
		save = func(dc *device.Headless) error { return saveFrame(dc, output) }
	}

	lay, err := newLayout(shape)
	if err != nil {
		return err
	}

	dc := device.NewHeadless(s.Width, s.Height)
	b, err := ggplot.New(dc, eng, lay, layout.DefaultFont, ggplot.Config{
		Width:  float32(s.Width),
		Height: float32(s.Height),
	})
	if err != nil {
		return err
	}

	if err := s.Draw(b); err != nil {
		return err
	}
	if err := b.Present(); err != nil {
		return err
	}
	return save(dc)
}

// saveFrame writes the last frame uploaded to dc.
func saveFrame(dc *device.Headless, path string) error {
	data, w, h, err := dc.Frame()
	if err != nil {
		return err
	}
	img := &image.RGBA{Pix: data, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
