package text2png

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/k1LoW/errors"
)

func TestAssignPath(t *testing.T) {
	dir := t.TempDir()
	path, err := assignPath("a", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("path %q is not absolute", path)
	}
	if got := filepath.Base(path); got != "a.png" {
		t.Errorf("base = %q, want a.png", got)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != 0 {
		t.Errorf("claimed file has size %d, want 0", fi.Size())
	}
	// claiming an already claimed name is fine
	if _, err := assignPath("a", dir); err != nil {
		t.Fatal(err)
	}
}

func TestAssignPathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if _, err := assignPath("a", dir); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestAssignPathNotADirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(dir, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := assignPath("a", dir); !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("got %v, want ErrInvalidDirectory", err)
	}
}

func TestAssignPathUnusableName(t *testing.T) {
	// a path separator in the line text points at a directory that does
	// not exist
	if _, err := assignPath("a/b", t.TempDir()); !errors.Is(err, ErrFilesystem) {
		t.Errorf("got %v, want ErrFilesystem", err)
	}
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()
	path, err := assignPath("a", dir)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := writeImage(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("decoded bounds = %v, want 4x4", decoded.Bounds())
	}
	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir holds %d entries, want only a.png", len(entries))
	}
}
