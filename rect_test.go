package fractal

import "testing"

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(3, -1), Pt(-2, 4))
	diff(t, Rect{X0: -2, Y0: -1, X1: 3, Y1: 4}, r)
	if r.Width() != 5 || r.Height() != 5 {
		t.Errorf("got size %g×%g, want 5×5", r.Width(), r.Height())
	}
	diff(t, Pt(0.5, 1.5), r.Center())
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 1, 1}
	b := Rect{-1, 0.5, 0.5, 3}
	diff(t, Rect{-1, 0, 1, 3}, a.Union(b))
}
