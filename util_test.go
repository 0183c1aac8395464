package fractal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustSegment(t testing.TB, gen Generator, start, end Point) *Segment {
	t.Helper()
	c, err := New(gen, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Line(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
