// Package render draws expanded fractal curves as PNG, SVG or plain text.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"iter"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"honnef.co/go/fractal"
)

// Options controls the output size and appearance.
type Options struct {
	// Width and Height of the output in pixels.
	Width, Height int
	// Margin is the empty border around the curve, in pixels.
	Margin float64
	// StrokeWidth is the width of every edge, in pixels.
	StrokeWidth float64
	// Background and Foreground default to white and black.
	Background, Foreground color.Color
}

func (opts Options) withDefaults() Options {
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	return opts
}

// Fit returns the transform that maps bounds into a width×height image with y
// pointing down, scaled uniformly and centered, leaving margin pixels on each
// side. Zero-sized dimensions of bounds are ignored when choosing the scale.
func Fit(bounds fractal.Rect, width, height int, margin float64) fractal.Affine {
	bounds = bounds.Abs()
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	scale := math.Inf(1)
	if w := bounds.Width(); w > 0 {
		scale = min(scale, availW/w)
	}
	if h := bounds.Height(); h > 0 {
		scale = min(scale, availH/h)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	c := bounds.Center()
	return fractal.Translate(fractal.Vec(-c.X, -c.Y)).
		ThenScale(scale, -scale).
		ThenTranslate(fractal.Vec(float64(width)/2, float64(height)/2))
}

func validate(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("render: invalid image size %d×%d", opts.Width, opts.Height)
	}
	return nil
}

// Rasterize draws lines into a new RGBA image.
func Rasterize(lines []fractal.Line, opts Options) (*image.RGBA, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	aff := Fit(fractal.Bounds(lines), opts.Width, opts.Height, opts.Margin)
	r := vector.NewRasterizer(opts.Width, opts.Height)
	half := opts.StrokeWidth / 2
	for _, l := range lines {
		l = l.Transform(aff)
		v := l.Vector()
		if v.Hypot2() == 0 {
			continue
		}
		// Every quad is wound the same way, so overlaps accumulate instead of
		// cancelling.
		addPath(r, quad(l, v, half).Elements())
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	return dst, nil
}

// quad returns the closed outline of l widened by half on either side and
// extended by half at both ends.
func quad(l fractal.Line, v fractal.Vec2, half float64) fractal.BezPath {
	n := v.Normalize().Perp().Mul(half)
	d := v.Normalize().Mul(half)
	p0 := l.P0.Translate(d.Negate())
	p1 := l.P1.Translate(d)
	var p fractal.BezPath
	p.MoveTo(p0.Translate(n))
	p.LineTo(p1.Translate(n))
	p.LineTo(p1.Translate(n.Negate()))
	p.LineTo(p0.Translate(n.Negate()))
	p.ClosePath()
	return p
}

func addPath(r *vector.Rasterizer, seq iter.Seq[fractal.PathElement]) {
	for el := range seq {
		x, y := el.P0.Splat()
		switch el.Kind {
		case fractal.MoveToKind:
			r.MoveTo(float32(x), float32(y))
		case fractal.LineToKind:
			r.LineTo(float32(x), float32(y))
		case fractal.ClosePathKind:
			r.ClosePath()
		}
	}
}

// PNG rasterizes lines and writes them to w as a PNG image.
func PNG(w io.Writer, lines []fractal.Line, opts Options) error {
	img, err := Rasterize(lines, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SVG writes lines to w as an SVG document containing a single path. Runs of
// connected edges become a single subpath.
func SVG(w io.Writer, lines []fractal.Line, opts Options) error {
	if err := validate(opts); err != nil {
		return err
	}
	opts = opts.withDefaults()
	aff := Fit(fractal.Bounds(lines), opts.Width, opts.Height, opts.Margin)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg viewBox="0 0 %d %d" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s" />`+"\n", hex(opts.Background))
	fmt.Fprint(bw, `<path d="`)
	path := fractal.Transform(fractal.Path(lines).Elements(), aff)
	if err := fractal.WriteSVG(bw, path, fractal.SVGOptions{MaxPrecision: 3}); err != nil {
		return err
	}
	fmt.Fprintf(bw, `" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round" />`+"\n",
		hex(opts.Foreground), opts.StrokeWidth)
	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

// Text writes one "x1 y1 x2 y2" line per edge, in curve coordinates.
func Text(w io.Writer, lines []fractal.Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		fmt.Fprintf(bw, "%g %g %g %g\n", l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	}
	return bw.Flush()
}

func hex(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}
