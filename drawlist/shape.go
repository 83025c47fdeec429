// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawlist

import "github.com/chewxy/math32"

// Shape is a closed geometry that can be filled or stroked.
// Implemented by Rect and Circle only.
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (Rect) shape() {}

// Contains reports whether (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Circle is a circle tessellated into Segments straight edges.
type Circle struct {
	X, Y     float32
	Radius   float32
	Segments uint32
}

func (Circle) shape() {}

// Point is a tessellated vertex.
type Point struct {
	X, Y float32
}

// Points returns the Segments vertices of the circle outline, starting at
// angle 0 and going clockwise in y-down space. It returns nil when Segments
// is zero.
func (c Circle) Points() []Point {
	if c.Segments == 0 {
		return nil
	}
	pts := make([]Point, c.Segments)
	step := 2 * math32.Pi / float32(c.Segments)
	for i := range pts {
		angle := step * float32(i)
		pts[i] = Point{
			X: c.X + c.Radius*math32.Cos(angle),
			Y: c.Y + c.Radius*math32.Sin(angle),
		}
	}
	return pts
}
