package text2png

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/k1LoW/errors"
	"github.com/tenntenn/golden"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "comments and blanks are dropped",
			content: "a\n# comment\n\n   \nb\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "full-width comment marker",
			content: "＃ comment\nx\n",
			want:    []string{"x"},
		},
		{
			name:    "indented comment",
			content: "   # note\n\t# tabbed note\ny\n",
			want:    []string{"y"},
		},
		{
			name:    "duplicates collapse",
			content: "a\na\nb\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "result is sorted",
			content: "b\na\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "crlf line endings",
			content: "a\r\nb\r\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "everything filtered",
			content: "# only\n\n＃ comments\n",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lines.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := ReadLines(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestReadLinesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, ErrFileAccess) {
			t.Errorf("got %v, want ErrFileAccess", err)
		}
	})
	t.Run("directory instead of file", func(t *testing.T) {
		_, err := ReadLines(t.TempDir())
		if !errors.Is(err, ErrFileAccess) {
			t.Errorf("got %v, want ErrFileAccess", err)
		}
	})
}

func TestReadLinesGolden(t *testing.T) {
	in := "testdata/lines.txt"
	lines, err := ReadLines(in)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(lines, "\n") + "\n"
	if os.Getenv("UPDATE_GOLDEN") != "" {
		golden.Update(t, "", in, got)
		return
	}
	if diff := golden.Diff(t, "", in, got); diff != "" {
		t.Error(diff)
	}
}
