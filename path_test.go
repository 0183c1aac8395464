package fractal

import (
	"math"
	"slices"
	"testing"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  BezPath
	}{
		{"empty", nil, nil},
		{
			"connected",
			[]Line{Ln(0, 0, 1, 0), Ln(1, 0, 1, 1)},
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1))},
		},
		{
			"disconnected",
			[]Line{Ln(0, 0, 1.0/3, 0), Ln(2.0/3, 0, 1, 0)},
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1.0/3, 0)), MoveTo(Pt(2.0/3, 0)), LineTo(Pt(1, 0))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, Path(tt.lines))
		})
	}
}

func TestBezPathPush(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(1, 1))
	p.ClosePath()
	want := []PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1)), ClosePath()}
	diff(t, want, slices.Collect(p.Elements()))
}

func TestPathElementTransform(t *testing.T) {
	p := BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), ClosePath()}
	got := slices.Collect(Transform(p.Elements(), Translate(Vec(1, 2)).ThenScale(2, 2)))
	want := []PathElement{MoveTo(Pt(2, 4)), LineTo(Pt(4, 4)), ClosePath()}
	diff(t, want, got)
}

func TestPathElementString(t *testing.T) {
	tests := []struct {
		el   PathElement
		want string
	}{
		{MoveTo(Pt(1, 2)), "MoveTo(" + Pt(1, 2).String() + ")"},
		{LineTo(Pt(3, 4)), "LineTo(" + Pt(3, 4).String() + ")"},
		{PathElement{}, "InvalidPathElement(" + Pt(0, 0).String() + ")"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestSVG(t *testing.T) {
	p := Path([]Line{Ln(0, 0, 1.0/3, 0), Ln(1.0/3, 0, 0.5, math.Sqrt(3)/6), Ln(2, 0, 3, -1)})
	tests := []struct {
		name string
		opts SVGOptions
		want string
	}{
		{"exact", SVGOptions{}, "M0,0 L0.3333333333333333,0 L0.5,0.28867513459481287 M2,0 L3,-1"},
		{"precision", SVGOptions{MaxPrecision: 3}, "M0,0 L0.333,0 L0.5,0.289 M2,0 L3,-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SVG(p.Elements(), tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	closed := BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1)), ClosePath()}
	if got, want := SVG(closed.Elements(), SVGOptions{}), "M0,0 L1,0 L1,1 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
