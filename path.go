package text2png

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const pngExt = ".png"

// ensureDir creates dir if it is absent. An existing non-directory at the
// path fails the run.
func ensureDir(dir string) error {
	fi, err := os.Stat(dir)
	switch {
	case err == nil:
		if !fi.IsDir() {
			return fmt.Errorf("%q is not a directory: %w", dir, ErrInvalidDirectory)
		}
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w: %w", dir, ErrFilesystem, err)
		}
		return nil
	default:
		return fmt.Errorf("failed to stat %q: %w: %w", dir, ErrFilesystem, err)
	}
}

// assignPath resolves the absolute output path for a line and claims the
// name with a zero-length create before any image bytes exist. Creation can
// fail on odd line text (path separators, filesystem limits); that fails the
// run.
func assignPath(text, dir string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, text+pngExt)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to claim %q, the line text may not be usable as a filename: %w: %w",
			path, ErrFilesystem, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to claim %q: %w: %w", path, ErrFilesystem, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w: %w", path, ErrFilesystem, err)
	}
	return abs, nil
}

// writeImage encodes the image to a temporary sibling file and renames it
// over the claimed path, so a crash never leaves a truncated PNG under the
// final name.
func writeImage(path string, img image.Image) error {
	tmp := path + "." + uuid.New().String() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w: %w", tmp, ErrFilesystem, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to encode %q: %w: %w", path, ErrFilesystem, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %q: %w: %w", path, ErrFilesystem, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %q into place: %w: %w", path, ErrFilesystem, err)
	}
	return nil
}
