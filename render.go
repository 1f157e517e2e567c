package text2png

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// renderLine draws one line of text centered on a fresh canvas and returns
// the finished image. No file I/O happens here.
func (g *Generator) renderLine(line string, face font.Face) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, g.canvas.Width, g.canvas.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(g.background), image.Point{}, draw.Src)

	bounds, _ := font.BoundString(face, line)
	text := Size{
		Width:  (bounds.Max.X - bounds.Min.X).Ceil(),
		Height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
	}
	pos, err := centerPosition(text, g.canvas, g.padding)
	if err != nil {
		return nil, fmt.Errorf("failed to place %q on a %s canvas: %w", line, g.canvas, err)
	}
	drawString(img, face, line, bounds, pos, g.fill)
	return img, nil
}

// centerPosition computes the upper-left anchor that centers a text box of
// the given size inside the canvas, honoring the padding border. The text
// box must fit the area left over after padding on both axes.
func centerPosition(text, canvas Size, padding float64) (Position, error) {
	padWidth := padding * float64(canvas.Width) / 2
	padHeight := padding * float64(canvas.Height) / 2
	leftoverWidth := float64(canvas.Width) - float64(text.Width) - padWidth*2
	leftoverHeight := float64(canvas.Height) - float64(text.Height) - padHeight*2
	if leftoverWidth < 0 || leftoverHeight < 0 {
		return Position{}, fmt.Errorf("%dx%d text box exceeds the usable area: %w",
			text.Width, text.Height, ErrTextOversize)
	}
	return Position{
		X: int(math.Floor(leftoverWidth/2 + padWidth)),
		Y: int(math.Floor(leftoverHeight/2 + padHeight)),
	}, nil
}

// drawString places the string's ink bounding box with its upper-left corner
// at pos. The drawer dot is a baseline origin, so it is offset by the
// bounding box minimum.
func drawString(dst draw.Image, face font.Face, s string, bounds fixed.Rectangle26_6, pos Position, fill color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(pos.X) - bounds.Min.X,
			Y: fixed.I(pos.Y) - bounds.Min.Y,
		},
	}
	d.DrawString(s)
}
