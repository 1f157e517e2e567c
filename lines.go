package text2png

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"
)

// ReadLines reads the candidate lines from a UTF-8 text file. Comment lines
// (first non-whitespace rune '#' or '＃') and blank lines are dropped and the
// remainder is deduplicated. The result is sorted; input order is not
// preserved across duplicates.
func ReadLines(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%q is not a readable file: %w: %w", path, ErrFileAccess, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file: %w", path, ErrFileAccess)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w: %w", path, ErrFileAccess, err)
	}
	seen := map[string]struct{}{}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if isBlank(line) || isComment(line) {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "＃")
}
