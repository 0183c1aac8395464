package fractal

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

// Attrs holds caller-defined segment attributes. Child segments inherit their
// parent's attributes, see [Segment.Child].
type Attrs map[string]any

// Curve binds a generator and a set of initial attributes. It is the factory
// for root segments.
type Curve struct {
	gen   Generator
	attrs Attrs
}

// New returns a curve that expands segments with gen. attrs are copied and
// attached to every segment created by [Curve.Line].
//
// Static patterns are validated immediately.
func New(gen Generator, attrs Attrs) (*Curve, error) {
	switch g := gen.(type) {
	case nil:
		return nil, ErrMissingGenerator
	case GeneratorFunc:
		if g == nil {
			return nil, ErrMissingGenerator
		}
	case Pattern:
		if err := ValidatePattern(g); err != nil {
			return nil, err
		}
	}
	return &Curve{gen: gen, attrs: maps.Clone(attrs)}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// curves built from known-good generators.
func MustNew(gen Generator, attrs Attrs) *Curve {
	c, err := New(gen, attrs)
	if err != nil {
		panic(err)
	}
	return c
}

// Generator returns the curve's generator.
func (c *Curve) Generator() Generator { return c.gen }

// Line returns a root segment from start to end. A point with a NaN
// coordinate counts as missing. Infinite endpoints are rejected with
// [ErrDegenerateSegment], as no finite frame maps onto them.
func (c *Curve) Line(start, end Point) (*Segment, error) {
	if start.IsNaN() {
		return nil, fmt.Errorf("%w: start is %s", ErrMissingEndpoint, start)
	}
	if end.IsNaN() {
		return nil, fmt.Errorf("%w: end is %s", ErrMissingEndpoint, end)
	}
	if start.IsInf() || end.IsInf() {
		return nil, fmt.Errorf("%w: %s is not finite", ErrDegenerateSegment, Line{start, end})
	}
	return &Segment{
		line:  Line{start, end},
		curve: c,
		attrs: maps.Clone(c.attrs),
	}, nil
}

// Segment is a directed line bound to a curve's generator.
//
// The line, generator and attributes of a segment never change. The only
// mutable state is the cached one-level expansion, which is computed at most
// once. A Segment is safe for concurrent use as long as its generator is.
type Segment struct {
	line  Line
	curve *Curve
	attrs Attrs
	level int

	once  sync.Once
	edges []Line
	err   error
}

// Line returns the segment's start and end.
func (s *Segment) Line() Line { return s.line }

func (s *Segment) Start() Point { return s.line.Start() }
func (s *Segment) End() Point   { return s.line.End() }

// Level returns the number of expansions between the root segment and s. It
// is 0 for segments returned by [Curve.Line].
func (s *Segment) Level() int { return s.level }

// Curve returns the curve s belongs to.
func (s *Segment) Curve() *Curve { return s.curve }

// Attr returns the attribute stored under key.
func (s *Segment) Attr(key string) (any, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attrs returns a copy of the segment's attributes.
func (s *Segment) Attrs() Attrs {
	return maps.Clone(s.attrs)
}

// Pattern evaluates the generator for s. Patterns returned by dynamic
// generators are validated; any error is reported as [ErrMalformedGenerator].
//
// Unlike [Segment.Edges], Pattern is not cached and calls dynamic generators
// every time.
func (s *Segment) Pattern() ([]Line, error) {
	gen := s.curve.Generator()
	p, err := gen.Pattern(s)
	if err != nil {
		if errors.Is(err, ErrMalformedGenerator) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedGenerator, err)
	}
	if _, static := gen.(Pattern); !static {
		if err := ValidatePattern(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Edges returns the one-level expansion of s: the generator's pattern mapped
// from the unit segment onto s, in pattern order. The result is computed once
// and shared by all callers; it must not be modified.
//
// Edges fails with [ErrDegenerateSegment] if s has zero length, or if its
// length or any of the resulting edges overflow float64.
func (s *Segment) Edges() ([]Line, error) {
	s.once.Do(func() {
		s.edges, s.err = s.expand()
	})
	return s.edges, s.err
}

func (s *Segment) expand() ([]Line, error) {
	if s.line.IsDegenerate() {
		return nil, fmt.Errorf("%w: %s at level %d", ErrDegenerateSegment, s.line, s.level)
	}
	if !finite(s.line.Length()) {
		return nil, fmt.Errorf("%w: length of %s overflows at level %d", ErrDegenerateSegment, s.line, s.level)
	}
	p, err := s.Pattern()
	if err != nil {
		return nil, err
	}
	aff := SegmentFrame(s.line.P0, s.line.P1)
	out := make([]Line, len(p))
	for i, tmpl := range p {
		out[i] = tmpl.Transform(aff)
		if out[i].IsInf() || out[i].IsNaN() {
			return nil, fmt.Errorf("%w: edge %d of %s overflows at level %d", ErrDegenerateSegment, i, s.line, s.level)
		}
	}
	return out, nil
}

// Child derives the segment for the index'th edge of s's expansion. The child
// shares s's curve and has an empty edge cache. Its attributes come from the
// generator if it implements [Inheritor], and are a copy of s's otherwise.
func (s *Segment) Child(index int, edge Line) *Segment {
	var attrs Attrs
	if inh, ok := s.curve.gen.(Inheritor); ok {
		attrs = inh.Inherit(s, index, edge)
	} else {
		attrs = maps.Clone(s.attrs)
	}
	return &Segment{
		line:  edge,
		curve: s.curve,
		attrs: attrs,
		level: s.level + 1,
	}
}

// Children returns one child segment per edge of s's expansion.
func (s *Segment) Children() ([]*Segment, error) {
	edges, err := s.Edges()
	if err != nil {
		return nil, err
	}
	out := make([]*Segment, len(edges))
	for i, e := range edges {
		out[i] = s.Child(i, e)
	}
	return out, nil
}
