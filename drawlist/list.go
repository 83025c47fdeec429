// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawlist

import "fmt"

// Capacity sizes the buffers of a List.
// Zero fields leave the corresponding buffer to grow on demand.
type Capacity struct {
	// Vertices preallocates the line vertex arena.
	Vertices int
	// Commands preallocates the command slice.
	Commands int
}

// List is the ordered buffer of pending draw records for one frame.
//
// The zero value is not ready for use; create lists with New.
type List struct {
	commands []Command
	vertices []LineVertex
	capacity Capacity

	color     Color
	lineWidth float32
}

// New creates an empty List with the given buffer capacities.
// The current color is opaque white and the current line width is 1.
func New(capacity Capacity) *List {
	return &List{
		commands:  make([]Command, 0, max(capacity.Commands, 0)),
		vertices:  make([]LineVertex, 0, max(capacity.Vertices, 0)),
		capacity:  capacity,
		color:     White,
		lineWidth: 1,
	}
}

// Capacity returns the capacities the List was created with.
func (l *List) Capacity() Capacity {
	return l.capacity
}

// SetColor sets the color used by subsequent Print calls.
func (l *List) SetColor(c Color) {
	l.color = c
}

// Color returns the current color.
func (l *List) Color() Color {
	return l.color
}

// SetLineWidth sets the width used by subsequent StrokeWithColor calls.
func (l *List) SetLineWidth(width float32) {
	l.lineWidth = width
}

// LineWidth returns the current line width.
func (l *List) LineWidth() float32 {
	return l.lineWidth
}

// DrawWithColor appends a filled shape.
func (l *List) DrawWithColor(s Shape, c Color) {
	l.commands = append(l.commands, GeometryCommand{
		Shape: s,
		Mode:  ModeFill,
		Color: c,
	})
}

// StrokeWithColor appends a stroked shape using the current line width.
func (l *List) StrokeWithColor(s Shape, c Color) {
	l.commands = append(l.commands, GeometryCommand{
		Shape:     s,
		Mode:      ModeStroke,
		Color:     c,
		LineWidth: l.lineWidth,
	})
}

// Line2D appends a line strip. The vertices are copied into the list's
// arena, so the caller may reuse v after the call.
func (l *List) Line2D(v []LineVertex) {
	start := len(l.vertices)
	l.vertices = append(l.vertices, v...)
	end := len(l.vertices)
	l.commands = append(l.commands, LineCommand{
		Vertices: l.vertices[start:end:end],
	})
}

// Print appends a text run drawn with the current color.
func (l *List) Print(text string, font FontID, scale float32, bounds Rect) {
	l.commands = append(l.commands, PrintCommand{
		Text:   text,
		Font:   font,
		Scale:  scale,
		Bounds: bounds,
		Color:  l.color,
	})
}

// Len returns the number of commands in the list.
func (l *List) Len() int {
	return len(l.commands)
}

// Commands returns the recorded commands in call order.
// The returned slice is owned by the List and must not be modified.
func (l *List) Commands() []Command {
	return l.commands
}

// Vertices returns the total number of line vertices in the list.
func (l *List) Vertices() int {
	return len(l.vertices)
}

// Painter receives the commands of a List during Playback.
// Engines implement Painter to rasterize or re-record a frame.
type Painter interface {
	// FillShape fills a Rect or Circle.
	FillShape(s Shape, c Color) error

	// StrokeShape outlines a Rect or Circle.
	StrokeShape(s Shape, width float32, c Color) error

	// Polyline strokes a line strip of at least two vertices.
	Polyline(v []LineVertex) error

	// Print draws a text run.
	Print(cmd PrintCommand) error
}

// Playback replays every command to p in call order.
// Line strips with fewer than two vertices are skipped.
// Playback stops at the first error and reports the failing command index.
func (l *List) Playback(p Painter) error {
	for i, cmd := range l.commands {
		var err error
		switch c := cmd.(type) {
		case GeometryCommand:
			switch c.Mode {
			case ModeFill:
				err = p.FillShape(c.Shape, c.Color)
			case ModeStroke:
				err = p.StrokeShape(c.Shape, c.LineWidth, c.Color)
			}
		case LineCommand:
			if len(c.Vertices) < 2 {
				continue
			}
			err = p.Polyline(c.Vertices)
		case PrintCommand:
			err = p.Print(c)
		}
		if err != nil {
			return fmt.Errorf("drawlist: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
