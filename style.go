// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

// BackendStyle is the style a frontend attaches to a geometry primitive.
type BackendStyle interface {
	Color() Color
	StrokeWidth() uint32
}

// ShapeStyle is a plain BackendStyle.
type ShapeStyle struct {
	Fill  Color
	Width uint32
}

// Color implements BackendStyle.
func (s ShapeStyle) Color() Color { return s.Fill }

// StrokeWidth implements BackendStyle.
func (s ShapeStyle) StrokeWidth() uint32 { return s.Width }

// HPos is the horizontal anchor of a text box.
type HPos uint8

const (
	HPosLeft HPos = iota
	HPosCenter
	HPosRight
)

// VPos is the vertical anchor of a text box.
type VPos uint8

const (
	VPosTop VPos = iota
	VPosCenter
	VPosBottom
)

// Anchor is the point of a text box that is aligned to the draw coordinate.
// The zero value is top-left.
type Anchor struct {
	H HPos
	V VPos
}

// Offset returns the translation that moves a width x height box so that
// the anchor lands on the origin. Halves truncate toward zero.
func (a Anchor) Offset(width, height int) (dx, dy int) {
	switch a.H {
	case HPosLeft:
		dx = 0
	case HPosCenter:
		dx = -width / 2
	case HPosRight:
		dx = -width
	}
	switch a.V {
	case VPosTop:
		dy = 0
	case VPosCenter:
		dy = -height / 2
	case VPosBottom:
		dy = -height
	}
	return dx, dy
}

// Transform is a rotation applied to the text origin after anchoring.
type Transform uint8

const (
	TransformNone Transform = iota
	TransformRotate90
	TransformRotate180
	TransformRotate270
)

// Apply rotates (x, y) about the surface origin.
func (t Transform) Apply(x, y int) (int, int) {
	switch t {
	case TransformRotate90:
		return -y, x
	case TransformRotate180:
		return -x, -y
	case TransformRotate270:
		return y, -x
	default:
		return x, y
	}
}

// BackendTextStyle is the style a frontend attaches to a text primitive.
type BackendTextStyle interface {
	Color() Color
	Size() float64
	Anchor() Anchor
	Transform() Transform
}

// TextStyle is a plain BackendTextStyle.
type TextStyle struct {
	FontSize float64
	Fill     Color
	Pos      Anchor
	Rotation Transform
}

// Color implements BackendTextStyle.
func (s TextStyle) Color() Color { return s.Fill }

// Size implements BackendTextStyle.
func (s TextStyle) Size() float64 { return s.FontSize }

// Anchor implements BackendTextStyle.
func (s TextStyle) Anchor() Anchor { return s.Pos }

// Transform implements BackendTextStyle.
func (s TextStyle) Transform() Transform { return s.Rotation }
