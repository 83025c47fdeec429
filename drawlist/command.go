// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawlist

// Color is a straight-alpha color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is the reset color of a List.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// FontID identifies a font registered with a rendering engine.
// It is an opaque token: only the engine that issued it can resolve it.
type FontID uint32

// Mode selects how a geometry command is rasterized.
type Mode uint8

const (
	// ModeFill fills the interior of the shape.
	ModeFill Mode = iota
	// ModeStroke outlines the shape with the command's line width.
	ModeStroke
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "Fill"
	case ModeStroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdGeometry CommandType = iota // Filled or stroked shape
	CmdLine                        // Line strip
	CmdPrint                       // Text run
)

var commandTypeNames = [...]string{
	CmdGeometry: "Geometry",
	CmdLine:     "Line",
	CmdPrint:    "Print",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every draw record stored in a List.
// The set of implementations is closed; Playback switches over all of them.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// GeometryCommand draws a shape with a solid color.
type GeometryCommand struct {
	// Shape is a Rect or a Circle.
	Shape Shape
	// Mode selects fill or stroke.
	Mode Mode
	// Color is the shape color.
	Color Color
	// LineWidth is the stroke width captured at append time.
	// It is meaningful only for ModeStroke.
	LineWidth float32
}

// Type implements Command.
func (GeometryCommand) Type() CommandType { return CmdGeometry }

func (GeometryCommand) command() {}

// LineVertex is a single vertex of a line strip.
type LineVertex struct {
	// Position is x, y, z. The z component is always 0 for 2D plots.
	Position [3]float32
	// Width is the stroke width at this vertex.
	Width float32
	// Color is the stroke color at this vertex.
	Color Color
}

// LineCommand draws a connected line strip through its vertices.
type LineCommand struct {
	Vertices []LineVertex
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

func (LineCommand) command() {}

// PrintCommand draws a text run whose top-left layout origin is
// Bounds.X, Bounds.Y. Glyphs outside Bounds are clipped by the engine.
type PrintCommand struct {
	Text   string
	Font   FontID
	Scale  float32
	Bounds Rect
	Color  Color
}

// Type implements Command.
func (PrintCommand) Type() CommandType { return CmdPrint }

func (PrintCommand) command() {}
