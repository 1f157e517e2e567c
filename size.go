package text2png

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a width x height pair in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Position is an upper-left anchor where text drawing begins. The image
// origin is the top-left corner and y increases downward.
type Position struct {
	X int
	Y int
}

// ParseSize parses a "WIDTHxHEIGHT" specification like "1024x1024".
func ParseSize(spec string) (Size, error) {
	w, h, ok := strings.Cut(spec, "x")
	if !ok {
		return Size{}, fmt.Errorf("bad size specification %q: %w", spec, ErrConfiguration)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Size{}, fmt.Errorf("bad size specification %q: %w", spec, ErrConfiguration)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Size{}, fmt.Errorf("bad size specification %q: %w", spec, ErrConfiguration)
	}
	return Size{Width: width, Height: height}, nil
}
