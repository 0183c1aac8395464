package fractal

import (
	"context"
	"fmt"
	"iter"
	"math"

	"golang.org/x/sync/errgroup"
)

// An Option configures [Segment.Fractal].
type Option func(*expandConfig)

type expandConfig struct {
	ctx      context.Context
	maxEdges int
	workers  int
}

// WithMaxEdges bounds the number of segments an expansion may produce. The
// bound is checked after every round, before the next round allocates, so
// an oversized expansion fails early with [ErrTooManyEdges]. n ≤ 0 means no
// bound.
func WithMaxEdges(n int) Option {
	return func(cfg *expandConfig) { cfg.maxEdges = n }
}

// WithWorkers expands the segments of each round on up to n goroutines. The
// generator must be safe for concurrent use. Output order is unaffected.
func WithWorkers(n int) Option {
	return func(cfg *expandConfig) { cfg.workers = n }
}

// WithContext makes the expansion stop with ctx's error once ctx is done. A
// nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(cfg *expandConfig) {
		if ctx != nil {
			cfg.ctx = ctx
		}
	}
}

// Fractal expands s to the given depth and returns the resulting edges.
//
// At depth ≤ 0 the result is s itself. At depth d ≥ 1 the generator is applied
// d times along every branch: d−1 rounds replace every segment with its
// children, and a final one-level expansion of the remaining segments yields
// the edges. Edges are ordered as the pattern orders them, recursively, so
// the result traces the curve from s's start to its end.
//
// A static generator with k edges produces k^d edges; see [EdgeCount]. Use
// [WithMaxEdges] or [WithContext] to bound the work.
func (s *Segment) Fractal(depth int, opts ...Option) ([]Line, error) {
	cfg := expandConfig{ctx: context.Background(), workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if depth <= 0 {
		return []Line{s.line}, nil
	}

	log := Logger()
	current := []*Segment{s}
	for round := 1; round < depth; round++ {
		edges, err := cfg.expandAll(current)
		if err != nil {
			return nil, err
		}
		n, err := cfg.count(edges)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		next := make([]*Segment, 0, n)
		for i, seg := range current {
			for j, e := range edges[i] {
				next = append(next, seg.Child(j, e))
			}
		}
		log.Debug("fractal round", "round", round, "segments", len(next))
		current = next
	}

	edges, err := cfg.expandAll(current)
	if err != nil {
		return nil, err
	}
	n, err := cfg.count(edges)
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", depth, err)
	}
	out := make([]Line, 0, n)
	for _, e := range edges {
		out = append(out, e...)
	}
	log.Debug("fractal expanded", "depth", depth, "edges", len(out))
	return out, nil
}

// expandAll computes the one-level expansion of every segment, preserving
// order.
func (cfg *expandConfig) expandAll(segs []*Segment) ([][]Line, error) {
	out := make([][]Line, len(segs))
	if cfg.workers <= 1 || len(segs) < 2 {
		for i, seg := range segs {
			if err := cfg.ctx.Err(); err != nil {
				return nil, err
			}
			edges, err := seg.Edges()
			if err != nil {
				return nil, err
			}
			out[i] = edges
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(cfg.ctx)
	g.SetLimit(cfg.workers)
	for i, seg := range segs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			edges, err := seg.Edges()
			if err != nil {
				return err
			}
			out[i] = edges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (cfg *expandConfig) count(edges [][]Line) (int, error) {
	n := 0
	for _, e := range edges {
		n += len(e)
	}
	if cfg.maxEdges > 0 && n > cfg.maxEdges {
		return 0, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyEdges, n, cfg.maxEdges)
	}
	return n, nil
}

// All returns an iterator over the same edges as [Segment.Fractal], in the
// same order, without materializing intermediate rounds. Memory use grows
// with depth rather than with the number of edges.
//
// Iteration stops after the first error, which is yielded with a zero Line.
func (s *Segment) All(depth int) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		if depth <= 0 {
			yield(s.line, nil)
			return
		}

		type frame struct {
			seg       *Segment
			edges     []Line
			next      int
			remaining int
		}
		edges, err := s.Edges()
		if err != nil {
			yield(Line{}, err)
			return
		}
		stack := []frame{{seg: s, edges: edges, remaining: depth - 1}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.edges) {
				stack = stack[:len(stack)-1]
				continue
			}
			i := top.next
			top.next++
			e := top.edges[i]
			if top.remaining == 0 {
				if !yield(e, nil) {
					return
				}
				continue
			}

			remaining := top.remaining - 1
			child := top.seg.Child(i, e)
			childEdges, err := child.Edges()
			if err != nil {
				yield(Line{}, err)
				return
			}
			stack = append(stack, frame{seg: child, edges: childEdges, remaining: remaining})
		}
	}
}

// EdgeCount returns the number of edges [Segment.Fractal] produces for a static
// generator with k edges at the given depth. The result saturates at
// math.MaxInt.
func EdgeCount(k, depth int) int {
	if depth <= 0 {
		return 1
	}
	n := 1
	for range depth {
		if k != 0 && n > math.MaxInt/k {
			return math.MaxInt
		}
		n *= k
	}
	return n
}
