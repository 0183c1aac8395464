package fractal

import "errors"

var (
	// ErrMissingGenerator is returned by New when no generator is given.
	ErrMissingGenerator = errors.New("fractal: missing generator")
	// ErrMissingEndpoint is returned when a segment is created without a
	// start or end point. Absent coordinates are represented by NaN.
	ErrMissingEndpoint = errors.New("fractal: missing segment endpoint")
	// ErrDegenerateSegment is returned when expanding a segment whose start
	// equals its end, which has no orientation.
	ErrDegenerateSegment = errors.New("fractal: degenerate segment")
	// ErrMalformedGenerator is returned for patterns that are empty, contain
	// entries that aren't four finite numbers, or come from a generator
	// function that failed.
	ErrMalformedGenerator = errors.New("fractal: malformed generator")
	// ErrTooManyEdges is returned when an expansion would exceed the bound
	// set with WithMaxEdges.
	ErrTooManyEdges = errors.New("fractal: too many edges")
)
