package fractal

import (
	"encoding/json"
	"fmt"
)

// Generator describes how a segment is replaced by sub-segments.
//
// Pattern returns the replacement edges in the segment's local frame, in
// which the segment runs from (0, 0) to (1, 0). Coordinates are fractions of
// the segment's length and may be negative or exceed 1. The returned slice
// is treated as read-only and may be shared between calls.
//
// There are two implementations: [Pattern] for fixed replacements and
// [GeneratorFunc] for replacements computed per segment.
type Generator interface {
	Pattern(s *Segment) ([]Line, error)
}

// Inheritor is an optional interface implemented by generators that compute
// the attributes of child segments themselves. Without it, children receive
// a copy of their parent's attributes.
//
// Inherit is called once per child, with the child's index in the parent's
// expansion and its absolute coordinates.
type Inheritor interface {
	Inherit(parent *Segment, index int, child Line) Attrs
}

// Pattern is a static generator: the same list of edge templates for every
// segment.
type Pattern []Line

var _ Generator = Pattern(nil)

// Pattern implements [Generator] by returning p itself.
func (p Pattern) Pattern(*Segment) ([]Line, error) {
	return p, nil
}

// GeneratorFunc is a dynamic generator. The function may inspect the segment
// (its line, level and attributes) and may return different patterns for
// different segments or even for the same segment on different calls.
type GeneratorFunc func(s *Segment) ([]Line, error)

var _ Generator = GeneratorFunc(nil)

func (fn GeneratorFunc) Pattern(s *Segment) ([]Line, error) {
	return fn(s)
}

// ValidatePattern checks that p contains at least one edge and that all
// coordinates are finite.
func ValidatePattern(p []Line) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: pattern has no edges", ErrMalformedGenerator)
	}
	for i, l := range p {
		for _, c := range l.Coords() {
			if !finite(c) {
				return fmt.Errorf("%w: edge %d has non-finite coordinate %v", ErrMalformedGenerator, i, c)
			}
		}
	}
	return nil
}

// ParsePattern builds a static pattern from a list of (x1, y1, x2, y2)
// quadruples. Entries of any other length are rejected.
func ParsePattern(entries [][]float64) (Pattern, error) {
	p := make(Pattern, len(entries))
	for i, e := range entries {
		if len(e) != 4 {
			return nil, fmt.Errorf("%w: edge %d has %d coordinates, want 4", ErrMalformedGenerator, i, len(e))
		}
		p[i] = Ln(e[0], e[1], e[2], e[3])
	}
	if err := ValidatePattern(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePatternJSON parses a JSON array of four-number arrays, such as
//
//	[[0, 0, 0.5, 0], [0.5, 0, 1, 0]]
func ParsePatternJSON(data []byte) (Pattern, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGenerator, err)
	}
	entries := make([][]float64, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &entries[i]); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedGenerator, i, err)
		}
	}
	return ParsePattern(entries)
}
