// Package text2png renders each line of a text file as a standalone PNG
// image, auto-sizing one shared font size so every line fits a fixed-size
// canvas with a configurable padding border, background and fill colors.
package text2png

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/k1LoW/errors"
)

const (
	DefaultFont       = "KanjiStrokeOrders"
	DefaultOutputDir  = "output"
	DefaultPadding    = 0.10
	DefaultBackground = "white"
	DefaultTextColor  = "black"
)

// DefaultCanvasSize is the canvas used when no size is configured.
var DefaultCanvasSize = Size{Width: 1024, Height: 1024}

// Generator renders a batch of lines. The configuration is fixed for a
// whole run; all lines share one resolved font size.
type Generator struct {
	font       string
	canvas     Size
	padding    float64
	background color.Color
	fill       color.Color
	outputDir  string
	clobber    bool
	logger     *slog.Logger
}

type Option func(*Generator) error

// WithLogger sets the logger the pipeline reports progress to. Logging is
// always an explicit parameter here, never process-wide state.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// WithFont sets the font identifier: an installed font family name or a
// path to a .ttf/.otf file.
func WithFont(font string) Option {
	return func(g *Generator) error {
		if font != "" {
			g.font = font
		}
		return nil
	}
}

// WithCanvasSize sets the pixel size of every generated image.
func WithCanvasSize(size Size) Option {
	return func(g *Generator) error {
		if size.Width <= 0 || size.Height <= 0 {
			return fmt.Errorf("canvas size must be positive, got %s: %w", size, ErrConfiguration)
		}
		g.canvas = size
		return nil
	}
}

// WithPadding sets the fraction of each canvas dimension reserved as blank
// border, split evenly between opposing edges. Must satisfy 0 <= p < 1.
func WithPadding(padding float64) Option {
	return func(g *Generator) error {
		g.padding = padding
		return nil
	}
}

// WithBackground sets the canvas background color (named or hex).
func WithBackground(spec string) Option {
	return func(g *Generator) error {
		if spec == "" {
			return nil
		}
		c, err := ParseColor(spec)
		if err != nil {
			return err
		}
		g.background = c
		return nil
	}
}

// WithTextColor sets the text fill color (named or hex).
func WithTextColor(spec string) Option {
	return func(g *Generator) error {
		if spec == "" {
			return nil
		}
		c, err := ParseColor(spec)
		if err != nil {
			return err
		}
		g.fill = c
		return nil
	}
}

// WithOutputDir sets the directory images are written to, created if absent.
func WithOutputDir(dir string) Option {
	return func(g *Generator) error {
		if dir != "" {
			g.outputDir = dir
		}
		return nil
	}
}

// WithClobber makes existing output files regenerate instead of being
// skipped.
func WithClobber(clobber bool) Option {
	return func(g *Generator) error {
		g.clobber = clobber
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		font:       DefaultFont,
		canvas:     DefaultCanvasSize,
		padding:    DefaultPadding,
		background: color.White,
		fill:       color.Black,
		outputDir:  DefaultOutputDir,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.padding < 0 || g.padding >= 1 {
		return nil, fmt.Errorf("padding must satisfy 0 <= p < 1, got %g: %w", g.padding, ErrConfiguration)
	}
	return g, nil
}

// Run reads lines from file and renders one PNG per surviving line into the
// output directory. Lines are processed strictly sequentially; the first
// unrecoverable error aborts the remaining batch. Returns the paths written.
func (g *Generator) Run(ctx context.Context, file string) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	lines, err := ReadLines(file)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(g.outputDir); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line+pngExt)
	}
	existing, err := g.checkCollisions(g.outputDir, names)
	if err != nil {
		return nil, err
	}
	lines = g.filterExisting(lines, existing, g.clobber)
	if len(lines) == 0 {
		g.logger.Info("no pictures will be generated")
		return nil, nil
	}

	g.logger.Info("resolving font", slog.String("font", g.font), slog.Int("lines", len(lines)))
	face, size, err := g.resolveFont(lines)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()
	g.logger.Debug("resolved font size", slog.Int("size", size))

	var written []string
	for _, line := range lines {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}
		img, err := g.renderLine(line, face)
		if err != nil {
			g.logger.Error("failed to render image", slog.String("line", line))
			return written, err
		}
		path, err := assignPath(line, g.outputDir)
		if err != nil {
			g.logger.Error("failed to assign path", slog.String("line", line))
			return written, err
		}
		if err := writeImage(path, img); err != nil {
			g.logger.Error("failed to write image", slog.String("path", path))
			return written, err
		}
		g.logger.Info("rendered image", slog.String("path", path))
		written = append(written, path)
	}
	g.logger.Info("generate completed", slog.Int("count", len(written)))
	return written, nil
}
