package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestNewMissingGenerator(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrMissingGenerator) {
		t.Errorf("New(nil): got %v, want ErrMissingGenerator", err)
	}
	if _, err := New(GeneratorFunc(nil), nil); !errors.Is(err, ErrMissingGenerator) {
		t.Errorf("New(GeneratorFunc(nil)): got %v, want ErrMissingGenerator", err)
	}
	if _, err := New(Pattern{}, nil); !errors.Is(err, ErrMalformedGenerator) {
		t.Errorf("New(Pattern{}): got %v, want ErrMalformedGenerator", err)
	}
}

func TestLineMissingEndpoint(t *testing.T) {
	c := MustNew(Koch, nil)
	nan := math.NaN()
	for _, tt := range []struct{ start, end Point }{
		{Pt(nan, 0), Pt(1, 0)},
		{Pt(0, 0), Pt(1, nan)},
	} {
		if _, err := c.Line(tt.start, tt.end); !errors.Is(err, ErrMissingEndpoint) {
			t.Errorf("Line(%s, %s): got %v, want ErrMissingEndpoint", tt.start, tt.end, err)
		}
	}
}

func TestLineInfiniteEndpoint(t *testing.T) {
	c := MustNew(Koch, nil)
	inf := math.Inf(1)
	for _, tt := range []struct{ start, end Point }{
		{Pt(inf, 0), Pt(1, 0)},
		{Pt(0, 0), Pt(1, -inf)},
		{Pt(-inf, inf), Pt(inf, -inf)},
	} {
		if _, err := c.Line(tt.start, tt.end); !errors.Is(err, ErrDegenerateSegment) {
			t.Errorf("Line(%s, %s): got %v, want ErrDegenerateSegment", tt.start, tt.end, err)
		}
	}
}

func TestEdgesOverflow(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
	}{
		// the length itself overflows
		{"length", Pt(-1e308, 0), Pt(1e308, 0)},
		// the length is finite but the frame pushes an edge past MaxFloat64
		{"edge", Pt(1.7e308, 1e308), Pt(1.7e308, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSegment(t, Koch, tt.start, tt.end)
			edges, err := s.Edges()
			if !errors.Is(err, ErrDegenerateSegment) {
				t.Fatalf("got %v, want ErrDegenerateSegment", err)
			}
			if edges != nil {
				t.Errorf("got edges %v alongside error", edges)
			}
			if _, err := s.Fractal(2); !errors.Is(err, ErrDegenerateSegment) {
				t.Errorf("Fractal: got %v, want ErrDegenerateSegment", err)
			}
		})
	}
}

func TestCurveGenerator(t *testing.T) {
	c := MustNew(Cantor, nil)
	diff(t, Generator(Cantor), c.Generator())
	s, err := c.Line(Pt(0, 0), Pt(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if s.Curve() != c {
		t.Error("segment does not reference its curve")
	}
}

func TestChildEndpoints(t *testing.T) {
	s := mustSegment(t, Cantor, Pt(1, 1), Pt(4, 7))
	children, err := s.Children()
	if err != nil {
		t.Fatal(err)
	}
	l := s.Line()
	want := []Point{l.Start(), l.Eval(1.0 / 3), l.Eval(2.0 / 3), l.End()}
	var got []Point
	for _, c := range children {
		got = append(got, c.Start(), c.End())
	}
	diff(t, want, got, approx)
}

func TestEdgesMidpointSplit(t *testing.T) {
	gen := Pattern{Ln(0, 0, 0.5, 0), Ln(0.5, 0, 1, 0)}
	s := mustSegment(t, gen, Pt(0, 0), Pt(2, 0))
	edges, err := s.Edges()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][4]float64{{0, 0, 1, 0}, {1, 0, 2, 0}}, Coords(edges))
}

func TestEdgesKoch(t *testing.T) {
	r5 := math.Sqrt(5)
	s := mustSegment(t, TallKoch, Pt(0, 0), Pt(3, 0))
	edges, err := s.Edges()
	if err != nil {
		t.Fatal(err)
	}
	want := [][4]float64{
		{0, 0, 1, 0},
		{1, 0, 1.5, r5 / 2},
		{1.5, r5 / 2, 2, 0},
		{2, 0, 3, 0},
	}
	diff(t, want, Coords(edges), approx)
}

func TestEdgesMemoized(t *testing.T) {
	s := mustSegment(t, Koch, Pt(0, 0), Pt(1, 1))
	e1, err := s.Edges()
	if err != nil {
		t.Fatal(err)
	}
	e2, _ := s.Edges()
	diff(t, e1, e2)
	if &e1[0] != &e2[0] {
		t.Error("Edges returned a different slice on the second call")
	}

	calls := 0
	gen := GeneratorFunc(func(*Segment) ([]Line, error) {
		calls++
		return Pattern{Ln(0, 0, float64(calls), 0)}, nil
	})
	d := mustSegment(t, gen, Pt(0, 0), Pt(1, 0))
	first, _ := d.Edges()
	second, _ := d.Edges()
	if calls != 1 {
		t.Errorf("dynamic generator called %d times, want 1", calls)
	}
	diff(t, first, second)
}

func TestEdgesDegenerate(t *testing.T) {
	s := mustSegment(t, Koch, Pt(2, 3), Pt(2, 3))
	edges, err := s.Edges()
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("got %v, want ErrDegenerateSegment", err)
	}
	if edges != nil {
		t.Errorf("got edges %v alongside error", edges)
	}
	if _, err := s.Fractal(3); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("Fractal: got %v, want ErrDegenerateSegment", err)
	}
}

func TestEdgesOrientationInvariance(t *testing.T) {
	const epsilon = 1e-9
	start, end := Pt(1, -2), Pt(4, 2)
	base, err := mustSegment(t, Koch, start, end).Edges()
	if err != nil {
		t.Fatal(err)
	}
	for _, th := range []float64{0.3, math.Pi / 2, 2, math.Pi, -1.1} {
		move := Identity.ThenRotateAbout(th, start).ThenTranslate(Vec(5, -3))
		got, err := mustSegment(t, Koch, start.Transform(move), end.Transform(move)).Edges()
		if err != nil {
			t.Fatal(err)
		}
		for i := range base {
			want := base[i].Transform(move)
			assertNear(t, got[i].P0, want.P0, epsilon)
			assertNear(t, got[i].P1, want.P1, epsilon)
		}
	}
}

func TestChildInheritsAttrs(t *testing.T) {
	c := MustNew(Cantor, Attrs{"color": "red"})
	s, err := c.Line(Pt(0, 0), Pt(9, 0))
	if err != nil {
		t.Fatal(err)
	}
	children, err := s.Children()
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	for i, child := range children {
		if v, _ := child.Attr("color"); v != "red" {
			t.Errorf("child %d: color = %v, want red", i, v)
		}
		if child.Level() != 1 {
			t.Errorf("child %d: level = %d, want 1", i, child.Level())
		}
		if child.Curve() != c {
			t.Errorf("child %d bound to a different curve", i)
		}
	}
	diff(t, Ln(0, 0, 3, 0), children[0].Line(), approx)
	diff(t, Ln(6, 0, 9, 0), children[1].Line(), approx)

	// Attributes are copied, not shared.
	attrs := children[0].Attrs()
	attrs["color"] = "blue"
	if v, _ := children[1].Attr("color"); v != "red" {
		t.Errorf("modifying one child's attrs leaked into its sibling: %v", v)
	}
	if v, _ := s.Attr("color"); v != "red" {
		t.Errorf("modifying a child's attrs leaked into its parent: %v", v)
	}
}

func TestChildHasFreshCache(t *testing.T) {
	s := mustSegment(t, Levy, Pt(0, 0), Pt(1, 0))
	edges, err := s.Edges()
	if err != nil {
		t.Fatal(err)
	}
	child := s.Child(0, edges[0])
	childEdges, err := child.Edges()
	if err != nil {
		t.Fatal(err)
	}
	if &childEdges[0] == &edges[0] {
		t.Error("child reused parent's edge cache")
	}
	diff(t, child.Line().P0, childEdges[0].P0, approx)
}
