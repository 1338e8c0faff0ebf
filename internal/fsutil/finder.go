// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands pattern against the file system and returns the matching
// regular files in lexical order. Besides the usual wildcards, `**` matches
// any number of directories.
func Glob(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("glob pattern must not be empty: %w", doublestar.ErrBadPattern)
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
