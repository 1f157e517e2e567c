package text2png

import (
	"image/color"
	"testing"

	"github.com/k1LoW/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"Black", color.RGBA{0x00, 0x00, 0x00, 0xff}, false},
		{"steelblue", color.RGBA{0x46, 0x82, 0xb4, 0xff}, false},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#1a2b3c", color.NRGBA{0x1a, 0x2b, 0x3c, 0xff}, false},
		{"#1a2b3c80", color.NRGBA{0x1a, 0x2b, 0x3c, 0x80}, false},
		{"#12345", nil, true},
		{"#gggggg", nil, true},
		{"not-a-color", nil, true},
		{"", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParseColor(%q) error = %v, want ErrConfiguration", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
