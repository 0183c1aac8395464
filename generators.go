package fractal

import (
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
)

// Polyline returns the pattern connecting consecutive points.
func Polyline(pts ...Point) Pattern {
	if len(pts) < 2 {
		return nil
	}
	p := make(Pattern, len(pts)-1)
	for i := range p {
		p[i] = Line{pts[i], pts[i+1]}
	}
	return p
}

// The built-in patterns are shared by every curve using them and must be
// treated as read-only. [Lookup] returns copies that may be modified freely.
var (
	// Koch replaces the middle third of a segment with the two sides of an
	// equilateral triangle, whose apex lies √3/6 above the segment. This is
	// the classic von Koch curve, with four edges of length 1/3.
	Koch = Polyline(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, math.Sqrt(3)/6), Pt(2.0/3, 0), Pt(1, 0))

	// TallKoch is the Koch pattern with its apex raised to √5/6, so that
	// the sides of the bump are 1/√6 long. On a segment of length 3 the apex
	// lands at (1.5, √5/2).
	TallKoch = Polyline(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, math.Sqrt(5)/6), Pt(2.0/3, 0), Pt(1, 0))

	// Cantor drops the middle third of a segment.
	Cantor = Pattern{Ln(0, 0, 1.0/3, 0), Ln(2.0/3, 0, 1, 0)}

	// Square replaces the middle third of a segment with three sides of a
	// square (the quadratic Koch curve).
	Square = Polyline(Pt(0, 0), Pt(1.0/3, 0), Pt(1.0/3, 1.0/3), Pt(2.0/3, 1.0/3), Pt(2.0/3, 0), Pt(1, 0))

	// Minkowski is the Minkowski sausage.
	Minkowski = Polyline(
		Pt(0, 0), Pt(0.25, 0), Pt(0.25, 0.25), Pt(0.5, 0.25),
		Pt(0.5, 0), Pt(0.5, -0.25), Pt(0.75, -0.25), Pt(0.75, 0), Pt(1, 0),
	)

	// Levy is the Lévy C curve.
	Levy = Polyline(Pt(0, 0), Pt(0.5, 0.5), Pt(1, 0))

	// Dragon is the Heighway dragon. Its second edge runs backwards, which
	// flips the orientation of every other sub-curve.
	Dragon = Pattern{Ln(0, 0, 0.5, 0.5), Ln(1, 0, 0.5, 0.5)}
)

// RandomKoch returns a dynamic generator producing the [Koch] pattern with the
// triangle on a randomly chosen side of each segment. The returned generator
// is safe for concurrent use.
func RandomKoch(rng *rand.Rand) Generator {
	var mu sync.Mutex
	flipped := Polyline(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, -math.Sqrt(3)/6), Pt(2.0/3, 0), Pt(1, 0))
	return GeneratorFunc(func(*Segment) ([]Line, error) {
		mu.Lock()
		heads := rng.IntN(2) == 0
		mu.Unlock()
		if heads {
			return Koch, nil
		}
		return flipped, nil
	})
}

// DirectionAttr is the attribute [Excavation] reads and writes. Its value is
// an int, +1 for digging to the left of a segment and −1 for digging to its
// right. Segments without it dig to the left.
const DirectionAttr = "direction"

// Excavation digs a rectangular trench into the middle third of every
// segment. The side is taken from the segment's [DirectionAttr]. The trench
// walls reverse direction relative to their parent, so that sub-trenches dug
// into a wall point away from the trench instead of into it.
type Excavation struct {
	// Depth of the trench as a fraction of the segment length.
	Depth float64
}

var (
	_ Generator = Excavation{}
	_ Inheritor = Excavation{}
)

func direction(s *Segment) int {
	if d, ok := s.Attr(DirectionAttr); ok {
		if d, ok := d.(int); ok && d < 0 {
			return -1
		}
	}
	return 1
}

func (e Excavation) Pattern(s *Segment) ([]Line, error) {
	h := e.Depth * float64(direction(s))
	return Polyline(Pt(0, 0), Pt(1.0/3, 0), Pt(1.0/3, h), Pt(2.0/3, h), Pt(2.0/3, 0), Pt(1, 0)), nil
}

func (e Excavation) Inherit(parent *Segment, index int, _ Line) Attrs {
	attrs := parent.Attrs()
	if attrs == nil {
		attrs = Attrs{}
	}
	d := direction(parent)
	// edges 1 and 3 are the walls
	if index == 1 || index == 3 {
		d = -d
	}
	attrs[DirectionAttr] = d
	return attrs
}

var builtins = map[string]func(seed uint64) Generator{
	"koch":       static(Koch),
	"tall-koch":  static(TallKoch),
	"cantor":     static(Cantor),
	"square":     static(Square),
	"minkowski":  static(Minkowski),
	"levy":       static(Levy),
	"dragon":     static(Dragon),
	"excavation": func(uint64) Generator { return Excavation{Depth: 1.0 / 3} },
	"random-koch": func(seed uint64) Generator {
		return RandomKoch(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	},
}

func static(p Pattern) func(uint64) Generator {
	return func(uint64) Generator { return slices.Clone(p) }
}

// Lookup returns the built-in generator with the given name. seed is used by
// randomized generators and ignored by the others. Static patterns are
// returned as fresh copies.
func Lookup(name string, seed uint64) (Generator, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return fn(seed), true
}

// Names returns the names accepted by [Lookup], sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}
