package text2png

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a named SVG 1.1 color ("white", "steelblue") or a
// hex specification ("#fff", "#ffffff", "#ffffffff") to a color.
func ParseColor(spec string) (color.Color, error) {
	if strings.HasPrefix(spec, "#") {
		return parseHexColor(spec)
	}
	c, ok := colornames.Map[strings.ToLower(spec)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q: %w", spec, ErrConfiguration)
	}
	return c, nil
}

func parseHexColor(spec string) (color.Color, error) {
	hex := strings.TrimPrefix(spec, "#")
	var digits []string
	switch len(hex) {
	case 3:
		digits = []string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3], "ff"}
	case 6:
		digits = []string{hex[0:2], hex[2:4], hex[4:6], "ff"}
	case 8:
		digits = []string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return nil, fmt.Errorf("bad hex color %q: %w", spec, ErrConfiguration)
	}
	var vals [4]uint8
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex color %q: %w", spec, ErrConfiguration)
		}
		vals[i] = uint8(v)
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}
