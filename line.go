package fractal

import (
	"fmt"
	"math"
)

// Line is a directed line segment from P0 to P1. It is the edge type of this
// package: generator patterns, one-level expansions and fully expanded curves
// are all sequences of lines.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Ln returns the line from (x0, y0) to (x1, y1).
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{Pt(x0, y0), Pt(x1, y1)}
}

// LineFromCoords returns the line described by the quadruple (x1, y1, x2, y2).
func LineFromCoords(c [4]float64) Line {
	return Ln(c[0], c[1], c[2], c[3])
}

// Coords returns the line as the quadruple (x1, y1, x2, y2).
func (l Line) Coords() [4]float64 {
	return [4]float64{l.P0.X, l.P0.Y, l.P1.X, l.P1.Y}
}

func (l Line) String() string {
	return fmt.Sprintf("%s–%s", l.P0, l.P1)
}

// Vector returns P1−P0.
func (l Line) Vector() Vec2 {
	return l.P1.Sub(l.P0)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.Vector().Hypot()
}

// IsDegenerate reports whether the line has zero length and thus no
// direction.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Eval linearly interpolates between P0 and P1.
func (l Line) Eval(t float64) Point {
	v := l.Vector()
	return l.P0.Translate(v.Mul(t))
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Coords flattens lines into (x1, y1, x2, y2) quadruples.
func Coords(lines []Line) [][4]float64 {
	out := make([][4]float64, len(lines))
	for i, l := range lines {
		out[i] = l.Coords()
	}
	return out
}

// Bounds returns the smallest rectangle enclosing all lines. It returns the
// zero Rect for an empty slice.
func Bounds(lines []Line) Rect {
	if len(lines) == 0 {
		return Rect{}
	}
	r := lines[0].BoundingBox()
	for _, l := range lines[1:] {
		r = r.Union(l.BoundingBox())
	}
	return r
}

// TotalLength returns the combined length of all lines.
func TotalLength(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Length()
	}
	return sum
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
