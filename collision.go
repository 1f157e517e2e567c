package text2png

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// checkCollisions enumerates dir and verifies that none of the desired
// output names is taken by an entry that is not a regular file. Every
// offending name is logged before the batch is failed. The returned map
// holds all existing entry names and their paths.
func (g *Generator) checkCollisions(dir string, names []string) (map[string]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%q must be a directory: %w: %w", dir, ErrInvalidDirectory, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%q must be a directory: %w", dir, ErrInvalidDirectory)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w: %w", dir, ErrFilesystem, err)
	}
	existing := map[string]string{}
	obstructions := map[string]struct{}{}
	for _, e := range entries {
		existing[e.Name()] = filepath.Join(dir, e.Name())
		if !e.Type().IsRegular() {
			obstructions[e.Name()] = struct{}{}
		}
	}
	var colliding []string
	for _, name := range names {
		if _, ok := obstructions[name]; ok {
			g.logger.Error("failed to claim output name: taken by a non-file entry",
				slog.String("name", name), slog.String("dir", dir))
			colliding = append(colliding, name)
		}
	}
	if len(colliding) > 0 {
		return nil, fmt.Errorf("names already taken by non-file entries in %q: %s: %w",
			dir, strings.Join(colliding, ", "), ErrNameCollision)
	}
	return existing, nil
}

// filterExisting drops lines whose output file is already present, unless
// clobber mode is on. Skipping is an expected outcome, not an error.
func (g *Generator) filterExisting(lines []string, existing map[string]string, clobber bool) []string {
	if clobber {
		return lines
	}
	var kept []string
	for _, line := range lines {
		if path, ok := existing[line+pngExt]; ok {
			g.logger.Info("skipping existing file", slog.String("path", path))
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
