package text2png

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// referenceFontSize is the point size every line is measured at before
// scaling. Measuring at a large size keeps integer rounding error small.
const referenceFontSize = 1000

const fontDPI = 72

// minLegiblePx is the usable dimension below which a legibility warning is
// emitted.
const minLegiblePx = 10

// resolveFont measures every line at the reference size, scales the
// worst-case bounding box to the usable canvas area and returns a face
// loaded at the resolved point size. One size serves the whole batch.
func (g *Generator) resolveFont(lines []string) (font.Face, int, error) {
	data, err := g.fontData()
	if err != nil {
		return nil, 0, err
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse font %q: %w: %w", g.font, ErrConfiguration, err)
	}
	ref, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    referenceFontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load font %q: %w: %w", g.font, ErrConfiguration, err)
	}
	var maxBox Size
	for _, line := range lines {
		s := measureString(ref, line)
		maxBox.Width = max(maxBox.Width, s.Width)
		maxBox.Height = max(maxBox.Height, s.Height)
	}
	_ = ref.Close()

	normWidth := float64(maxBox.Width) / referenceFontSize
	normHeight := float64(maxBox.Height) / referenceFontSize
	size := g.fitPointSize(normWidth, normHeight)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load font %q at size %d: %w: %w", g.font, size, ErrConfiguration, err)
	}
	return face, size, nil
}

// fitPointSize resolves the shared point size from the normalized (per-point)
// worst-case bounding box. The scaled box must not exceed the usable canvas
// area on either axis; one point of safety margin compensates ceiling-biased
// glyph measurement at small sizes.
func (g *Generator) fitPointSize(normWidth, normHeight float64) int {
	if normWidth <= 0 || normHeight <= 0 {
		g.logger.Warn("no text will be drawn")
		return 1
	}
	usableWidth := float64(g.canvas.Width) * (1 - g.padding)
	usableHeight := float64(g.canvas.Height) * (1 - g.padding)
	if usableHeight < minLegiblePx {
		g.logger.Warn("text will be barely legible", slog.Float64("usable_height", usableHeight))
	}
	if usableWidth < minLegiblePx {
		g.logger.Warn("text will be barely legible", slog.Float64("usable_width", usableWidth))
	}
	scaleByHeight := usableHeight / normHeight
	scaleByWidth := usableWidth / normWidth
	// The smaller factor is the binding constraint. On a tie the height
	// factor binds.
	scale := scaleByHeight
	if scaleByWidth < scaleByHeight {
		scale = scaleByWidth
	}
	size := int(math.Floor(scale)) - 1
	if size < 1 {
		size = 1
	}
	return size
}

// fontData resolves the font identifier to raw font bytes. A path to an
// existing font file is read directly; anything else is looked up among the
// installed system fonts. When no installed font matches, the bundled Go
// Regular face is used so a batch never fails over a missing font.
func (g *Generator) fontData() ([]byte, error) {
	if fi, err := os.Stat(g.font); err == nil && fi.Mode().IsRegular() {
		b, err := os.ReadFile(g.font)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %q: %w: %w", g.font, ErrConfiguration, err)
		}
		return b, nil
	}
	path, err := findfont.Find(g.font)
	if err != nil {
		g.logger.Warn("font not found, falling back to bundled Go Regular", slog.String("font", g.font))
		return goregular.TTF, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %q: %w: %w", path, ErrConfiguration, err)
	}
	return b, nil
}

// measureString returns the tight bounding box of a rendered string.
func measureString(face font.Face, s string) Size {
	bounds, _ := font.BoundString(face, s)
	return Size{
		Width:  (bounds.Max.X - bounds.Min.X).Ceil(),
		Height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
	}
}
