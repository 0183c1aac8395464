// Package fractal generates self-similar curves, such as the von Koch curve or
// the Cantor set, by repeatedly replacing line segments with a pattern of
// sub-segments.
//
// # Generators
//
// A [Generator] describes how one segment is replaced. It works in the local
// frame of the segment, in which the segment runs from (0, 0) to (1, 0):
// coordinates are fractions of the segment's length, measured along the
// segment (x) and to its left (y). They may be negative or larger than 1,
// which is how a pattern leaves the original line.
//
// A [Pattern] is a fixed list of edges, used for every segment. A
// [GeneratorFunc] computes the edges per segment and may look at the
// segment's position, [Segment.Level] and attributes, or use randomness. The
// package provides a few well-known patterns ([Koch], [TallKoch], [Cantor],
// [Square], [Minkowski], [Levy], [Dragon]) and dynamic generators
// ([RandomKoch], [Excavation]); [Lookup] finds them by name. The pattern
// variables are shared and must not be modified.
//
// # Curves and segments
//
// [New] binds a generator to a set of initial attributes, producing a
// [Curve]. [Curve.Line] creates a root [Segment]. [Segment.Edges] maps the
// generator's pattern onto the segment with [SegmentFrame], a similarity
// transform that scales, rotates and translates the unit segment onto the
// segment. The result is computed once per segment and cached, so dynamic
// generators see each segment exactly once.
//
// [Segment.Fractal] applies the generator depth times and returns the edges of
// the final curve, ordered from the root's start to its end. A generator with
// k edges yields k^depth edges, so depth grows the output exponentially;
// [WithMaxEdges] and [WithContext] bound the work, and [Segment.All] streams
// the same edges without holding every round in memory.
//
// # Paths
//
// [Path] turns edges into a [BezPath], joining edges that meet end to start
// into one subpath. [SVG] and [WriteSVG] format path elements as SVG path
// data, and [Transform] maps them through an [Affine] on the way.
//
// # Attributes
//
// Segments carry caller-defined [Attrs]. Children receive a copy of their
// parent's attributes, unless the generator implements [Inheritor] and
// computes them itself. [Excavation] uses this to track the side it digs
// towards.
//
// # Errors
//
// All failures are reported as errors wrapping one of [ErrMissingGenerator],
// [ErrMissingEndpoint], [ErrDegenerateSegment], [ErrMalformedGenerator] or
// [ErrTooManyEdges]. None of them are transient.
package fractal
