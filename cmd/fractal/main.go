// Command fractal expands a self-similar curve and writes it as an image or
// as a list of edges.
//
// Usage:
//
//	fractal [flags]
//
// For example, to draw a von Koch curve at depth 5:
//
//	fractal -generator koch -depth 5 -o koch.png
//
// A custom generator can be given as a JSON array of (x1, y1, x2, y2) edges in
// the frame of the unit segment from (0, 0) to (1, 0):
//
//	fractal -pattern '[[0,0,0.5,0.5],[0.5,0.5,1,0]]' -depth 12 -o levy.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"honnef.co/go/fractal"
	"honnef.co/go/fractal/internal/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "fractal:", err)
		os.Exit(1)
	}
}

type config struct {
	generator string
	pattern   string
	depth     int
	start     point
	end       point
	seed      uint64
	maxEdges  int
	workers   int
	format    string
	width     int
	height    int
	margin    float64
	stroke    float64
	output    string
	verbose   bool
	list      bool
}

// point is a flag.Value holding "x,y".
type point fractal.Point

func (p *point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

func (p *point) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return err
	}
	*p = point{X: x, Y: y}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		start: point{X: 0, Y: 0},
		end:   point{X: 1, Y: 0},
	}
	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.generator, "generator", "koch", "built-in generator, see -list")
	fs.StringVar(&cfg.pattern, "pattern", "", "custom generator as a JSON array of [x1,y1,x2,y2] edges; overrides -generator")
	fs.IntVar(&cfg.depth, "depth", 4, "number of generator applications")
	fs.Var(&cfg.start, "start", "start point of the root segment")
	fs.Var(&cfg.end, "end", "end point of the root segment")
	fs.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "seed for randomized generators")
	fs.IntVar(&cfg.maxEdges, "max-edges", 1<<22, "fail if the curve would have more edges; 0 disables the limit")
	fs.IntVar(&cfg.workers, "workers", 1, "number of goroutines expanding segments")
	fs.StringVar(&cfg.format, "format", "", "output format: png, svg or text (default: from -o, else text)")
	fs.IntVar(&cfg.width, "width", 1024, "image width in pixels")
	fs.IntVar(&cfg.height, "height", 512, "image height in pixels")
	fs.Float64Var(&cfg.margin, "margin", 16, "image margin in pixels")
	fs.Float64Var(&cfg.stroke, "stroke", 1, "stroke width in pixels")
	fs.StringVar(&cfg.output, "o", "", "output file (default: stdout)")
	fs.BoolVar(&cfg.verbose, "v", false, "log expansion progress")
	fs.BoolVar(&cfg.list, "list", false, "list built-in generators and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.format == "" {
		cfg.format = formatFromName(cfg.output)
	}
	switch cfg.format {
	case "png", "svg", "text":
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	return cfg, nil
}

func formatFromName(name string) string {
	switch {
	case strings.HasSuffix(name, ".png"):
		return "png"
	case strings.HasSuffix(name, ".svg"):
		return "svg"
	default:
		return "text"
	}
}

func (cfg *config) generatorFor() (fractal.Generator, error) {
	if cfg.pattern != "" {
		return fractal.ParsePatternJSON([]byte(cfg.pattern))
	}
	gen, ok := fractal.Lookup(cfg.generator, cfg.seed)
	if !ok {
		return nil, fmt.Errorf("unknown generator %q; known generators: %s", cfg.generator, strings.Join(fractal.Names(), ", "))
	}
	return gen, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.list {
		for _, name := range fractal.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(log)
	defer fractal.SetLogger(nil)

	gen, err := cfg.generatorFor()
	if err != nil {
		return err
	}
	c, err := fractal.New(gen, nil)
	if err != nil {
		return err
	}
	seg, err := c.Line(fractal.Point(cfg.start), fractal.Point(cfg.end))
	if err != nil {
		return err
	}

	t := time.Now()
	lines, err := seg.Fractal(cfg.depth,
		fractal.WithContext(ctx),
		fractal.WithMaxEdges(cfg.maxEdges),
		fractal.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	log.Debug("curve expanded", "edges", len(lines), "elapsed", time.Since(t))

	w := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	opts := render.Options{
		Width:       cfg.width,
		Height:      cfg.height,
		Margin:      cfg.margin,
		StrokeWidth: cfg.stroke,
	}
	switch cfg.format {
	case "png":
		err = render.PNG(w, lines, opts)
	case "svg":
		err = render.SVG(w, lines, opts)
	default:
		err = render.Text(w, lines)
	}
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && cfg.output != "" {
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("wrote curve", "file", cfg.output, "format", cfg.format, "edges", len(lines))
	}
	return nil
}
