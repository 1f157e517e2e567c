package text2png

import (
	"testing"

	"github.com/k1LoW/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"1024x1024", Size{Width: 1024, Height: 1024}, false},
		{"500x300", Size{Width: 500, Height: 300}, false},
		{"1x1", Size{Width: 1, Height: 1}, false},
		{"1024", Size{}, true},
		{"x1024", Size{}, true},
		{"1024x", Size{}, true},
		{"0x100", Size{}, true},
		{"-10x10", Size{}, true},
		{"10x10x10", Size{}, true},
		{"axb", Size{}, true},
		{"", Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParseSize(%q) error = %v, want ErrConfiguration", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
