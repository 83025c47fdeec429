// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene loads plot scenes from YAML and replays them through a
// ggplot.DrawingBackend.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggplot"
)

// DefaultYAML is the built-in demo scene.
//
//go:embed default.yaml
var DefaultYAML []byte

var (
	// ErrUnknownKind is returned for items with an unrecognized kind.
	ErrUnknownKind = errors.New("scene: unknown item kind")

	// ErrInvalidItem is returned for items missing required fields.
	ErrInvalidItem = errors.New("scene: invalid item")
)

// Point is an [x, y] pair.
type Point [2]int

func (p Point) image() image.Point {
	return image.Pt(p[0], p[1])
}

// Anchor names the text anchor, e.g. {h: center, v: top}.
type Anchor struct {
	H string `yaml:"h,omitempty"`
	V string `yaml:"v,omitempty"`
}

// Item is a single drawing primitive.
type Item struct {
	Kind   string  `yaml:"kind"`
	Color  string  `yaml:"color,omitempty"`
	Width  uint32  `yaml:"width,omitempty"`
	Fill   bool    `yaml:"fill,omitempty"`
	At     Point   `yaml:"at,omitempty"`
	From   Point   `yaml:"from,omitempty"`
	To     Point   `yaml:"to,omitempty"`
	Points []Point `yaml:"points,omitempty"`
	Radius uint32  `yaml:"radius,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
	Anchor Anchor  `yaml:"anchor,omitempty"`
	Rotate int     `yaml:"rotate,omitempty"`
}

// Scene is a sized list of items drawn in order.
type Scene struct {
	Version    int    `yaml:"version"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
	Items      []Item `yaml:"items"`
}

func (s *Scene) normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	if s.Background == "" {
		s.Background = "#ffffff"
	}
	for i := range s.Items {
		it := &s.Items[i]
		if it.Color == "" {
			it.Color = "#000000"
		}
		if it.Width == 0 {
			it.Width = 1
		}
		if it.Size == 0 {
			it.Size = 12
		}
	}
}

// Load decodes and validates a scene.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	s.normalize()
	for i, it := range s.Items {
		if err := it.validate(); err != nil {
			return nil, fmt.Errorf("scene: item %d: %w", i, err)
		}
	}
	return &s, nil
}

// LoadFile loads a scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// BackgroundColor returns the background as a gg color.
func (s *Scene) BackgroundColor() gg.RGBA {
	return gg.Hex(s.Background)
}

// Draw replays every item to b. It does not present the frame.
func (s *Scene) Draw(b ggplot.DrawingBackend) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	for i, it := range s.Items {
		if err := it.draw(b); err != nil {
			return fmt.Errorf("scene: item %d (%s): %w", i, it.Kind, err)
		}
	}
	return nil
}

func (it Item) validate() error {
	switch it.Kind {
	case "pixel", "line", "rect", "circle":
		return nil
	case "path":
		if len(it.Points) == 0 {
			return fmt.Errorf("%w: path without points", ErrInvalidItem)
		}
	case "text":
		if it.Text == "" {
			return fmt.Errorf("%w: empty text", ErrInvalidItem)
		}
		if _, err := parseAnchor(it.Anchor); err != nil {
			return err
		}
		if _, err := parseRotation(it.Rotate); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, it.Kind)
	}
	return nil
}

func (it Item) draw(b ggplot.DrawingBackend) error {
	color := toColor(gg.Hex(it.Color))
	style := ggplot.ShapeStyle{Fill: color, Width: it.Width}

	switch it.Kind {
	case "pixel":
		return b.DrawPixel(it.At.image(), color)
	case "line":
		return b.DrawLine(it.From.image(), it.To.image(), style)
	case "rect":
		return b.DrawRect(it.From.image(), it.To.image(), style, it.Fill)
	case "circle":
		return b.DrawCircle(it.At.image(), it.Radius, style, it.Fill)
	case "path":
		pts := make([]image.Point, len(it.Points))
		for i, p := range it.Points {
			pts[i] = p.image()
		}
		return b.DrawPath(pts, style)
	case "text":
		anchor, err := parseAnchor(it.Anchor)
		if err != nil {
			return err
		}
		rot, err := parseRotation(it.Rotate)
		if err != nil {
			return err
		}
		return b.DrawText(it.Text, ggplot.TextStyle{
			FontSize: it.Size,
			Fill:     color,
			Pos:      anchor,
			Rotation: rot,
		}, it.At.image())
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, it.Kind)
}

func toColor(c gg.RGBA) ggplot.Color {
	return ggplot.Color{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: c.A,
	}
}

func parseAnchor(a Anchor) (ggplot.Anchor, error) {
	var out ggplot.Anchor
	switch a.H {
	case "", "left":
		out.H = ggplot.HPosLeft
	case "center":
		out.H = ggplot.HPosCenter
	case "right":
		out.H = ggplot.HPosRight
	default:
		return out, fmt.Errorf("%w: horizontal anchor %q", ErrInvalidItem, a.H)
	}
	switch a.V {
	case "", "top":
		out.V = ggplot.VPosTop
	case "center":
		out.V = ggplot.VPosCenter
	case "bottom":
		out.V = ggplot.VPosBottom
	default:
		return out, fmt.Errorf("%w: vertical anchor %q", ErrInvalidItem, a.V)
	}
	return out, nil
}

func parseRotation(deg int) (ggplot.Transform, error) {
	switch deg {
	case 0:
		return ggplot.TransformNone, nil
	case 90:
		return ggplot.TransformRotate90, nil
	case 180:
		return ggplot.TransformRotate180, nil
	case 270:
		return ggplot.TransformRotate270, nil
	}
	return ggplot.TransformNone, fmt.Errorf("%w: rotation %d", ErrInvalidItem, deg)
}
