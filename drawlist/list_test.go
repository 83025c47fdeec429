// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawlist

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewList(t *testing.T) {
	l := New(Capacity{Vertices: 64, Commands: 8})

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Color() != White {
		t.Errorf("Color() = %v, want White", l.Color())
	}
	if l.LineWidth() != 1 {
		t.Errorf("LineWidth() = %v, want 1", l.LineWidth())
	}
	if cap(l.vertices) != 64 {
		t.Errorf("vertex arena cap = %d, want 64", cap(l.vertices))
	}
	if cap(l.commands) != 8 {
		t.Errorf("command cap = %d, want 8", cap(l.commands))
	}
}

func TestNewListNegativeCapacity(t *testing.T) {
	l := New(Capacity{Vertices: -1, Commands: -5})
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestListOrder(t *testing.T) {
	l := New(Capacity{})
	red := Color{R: 1, A: 1}

	l.DrawWithColor(Rect{X: 1, Y: 2, Width: 3, Height: 4}, red)
	l.Line2D([]LineVertex{{Width: 1}, {Width: 1}})
	l.SetLineWidth(3)
	l.StrokeWithColor(Circle{Radius: 5, Segments: 10}, red)
	l.Print("hi", 7, 12, Rect{})

	want := []CommandType{CmdGeometry, CmdLine, CmdGeometry, CmdPrint}
	if l.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(want))
	}
	for i, cmd := range l.Commands() {
		if cmd.Type() != want[i] {
			t.Errorf("command %d type = %v, want %v", i, cmd.Type(), want[i])
		}
	}

	fill := l.Commands()[0].(GeometryCommand)
	if fill.Mode != ModeFill {
		t.Errorf("first geometry mode = %v, want Fill", fill.Mode)
	}
	stroke := l.Commands()[2].(GeometryCommand)
	if stroke.Mode != ModeStroke || stroke.LineWidth != 3 {
		t.Errorf("stroke = %+v, want ModeStroke width 3", stroke)
	}
	txt := l.Commands()[3].(PrintCommand)
	if txt.Color != White || txt.Font != 7 || txt.Scale != 12 {
		t.Errorf("print = %+v", txt)
	}
}

func TestLine2DCopiesVertices(t *testing.T) {
	l := New(Capacity{Vertices: 1})
	v := []LineVertex{{Position: [3]float32{1, 1, 0}}, {Position: [3]float32{2, 2, 0}}}
	l.Line2D(v)
	v[0].Position[0] = 99

	l.Line2D([]LineVertex{{Position: [3]float32{3, 3, 0}}, {Position: [3]float32{4, 4, 0}}})

	first := l.Commands()[0].(LineCommand)
	if first.Vertices[0].Position[0] != 1 {
		t.Errorf("first strip x = %v, want 1 (vertices must be copied)", first.Vertices[0].Position[0])
	}
	if len(first.Vertices) != 2 || cap(first.Vertices) != 2 {
		t.Errorf("first strip len/cap = %d/%d, want 2/2", len(first.Vertices), cap(first.Vertices))
	}
	if l.Vertices() != 4 {
		t.Errorf("Vertices() = %d, want 4", l.Vertices())
	}
}

func TestPrintUsesCurrentColor(t *testing.T) {
	l := New(Capacity{})
	blue := Color{B: 1, A: 0.5}
	l.SetColor(blue)
	l.Print("a", 0, 10, Rect{})
	l.SetColor(White)
	l.Print("b", 0, 10, Rect{})

	if got := l.Commands()[0].(PrintCommand).Color; got != blue {
		t.Errorf("first print color = %v, want %v", got, blue)
	}
	if got := l.Commands()[1].(PrintCommand).Color; got != White {
		t.Errorf("second print color = %v, want White", got)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdGeometry, "Geometry"},
		{CmdLine, "Line"},
		{CmdPrint, "Print"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
	if ModeStroke.String() != "Stroke" || Mode(9).String() != "Unknown" {
		t.Error("Mode.String() mismatch")
	}
}

func TestCirclePoints(t *testing.T) {
	c := Circle{X: 10, Y: 20, Radius: 5, Segments: 4}
	pts := c.Points()
	if len(pts) != 4 {
		t.Fatalf("len(Points()) = %d, want 4", len(pts))
	}
	want := []Point{{15, 20}, {10, 25}, {5, 20}, {10, 15}}
	for i, p := range pts {
		if math.Abs(float64(p.X-want[i].X)) > 1e-4 || math.Abs(float64(p.Y-want[i].Y)) > 1e-4 {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}

	if (Circle{Radius: 3}).Points() != nil {
		t.Error("zero segments should yield nil")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	if !r.Contains(0, 0) || !r.Contains(9.5, 4.5) {
		t.Error("expected point inside")
	}
	if r.Contains(10, 0) || r.Contains(0, 5) || r.Contains(-1, 1) {
		t.Error("expected point outside")
	}
}

type recordingPainter struct {
	calls []string
	fail  int
}

func (p *recordingPainter) record(name string) error {
	p.calls = append(p.calls, name)
	if p.fail > 0 && len(p.calls) == p.fail {
		return errors.New("boom")
	}
	return nil
}

func (p *recordingPainter) FillShape(Shape, Color) error            { return p.record("fill") }
func (p *recordingPainter) StrokeShape(Shape, float32, Color) error { return p.record("stroke") }
func (p *recordingPainter) Polyline([]LineVertex) error             { return p.record("line") }
func (p *recordingPainter) Print(PrintCommand) error                { return p.record("print") }

func TestPlayback(t *testing.T) {
	l := New(Capacity{})
	l.DrawWithColor(Rect{Width: 1, Height: 1}, White)
	l.Line2D(nil)                      // skipped
	l.Line2D([]LineVertex{{}})         // skipped
	l.Line2D([]LineVertex{{}, {}, {}}) // drawn
	l.StrokeWithColor(Rect{}, White)
	l.Print("x", 0, 1, Rect{})

	p := &recordingPainter{}
	if err := l.Playback(p); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	got := strings.Join(p.calls, ",")
	if got != "fill,line,stroke,print" {
		t.Errorf("Playback calls = %q, want %q", got, "fill,line,stroke,print")
	}
}

func TestPlaybackStopsAtFirstError(t *testing.T) {
	l := New(Capacity{})
	l.DrawWithColor(Rect{}, White)
	l.StrokeWithColor(Rect{}, White)
	l.Print("x", 0, 1, Rect{})

	p := &recordingPainter{fail: 2}
	err := l.Playback(p)
	if err == nil {
		t.Fatal("Playback() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "command 1 (Geometry)") {
		t.Errorf("error = %q, want command index and type", err)
	}
	if len(p.calls) != 2 {
		t.Errorf("painter calls = %d, want 2", len(p.calls))
	}
}
