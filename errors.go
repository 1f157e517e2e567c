package text2png

import "github.com/k1LoW/errors"

var (
	// ErrFileAccess means the input file is missing, unreadable, or not a regular file.
	ErrFileAccess = errors.New("file access error")
	// ErrInvalidDirectory means a path that must be a directory exists but is not one.
	ErrInvalidDirectory = errors.New("not a directory")
	// ErrNameCollision means a desired output name is already taken by a
	// directory entry that is not a regular file.
	ErrNameCollision = errors.New("output name collision")
	// ErrFilesystem means file creation or writing failed.
	ErrFilesystem = errors.New("filesystem error")
	// ErrTextOversize means a line's rendered bounding box cannot fit the
	// usable canvas area.
	ErrTextOversize = errors.New("text too big for canvas")
	// ErrConfiguration means the run configuration is malformed.
	ErrConfiguration = errors.New("invalid configuration")
)
