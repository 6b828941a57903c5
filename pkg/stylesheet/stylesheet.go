// Package stylesheet handles stylesheet input expansion and combination.
// A Set is an ordered list of resolved stylesheet paths; order is significant
// because it determines concatenation order and the base directory used for
// resource resolution (taken from the first entry).
package stylesheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for input validation via errors.Is.
var (
	// ErrMissingInput is returned when no stylesheet inputs were provided.
	ErrMissingInput = errors.New("no stylesheet input provided")

	// ErrInvalidInputType is returned when the input is neither a string
	// nor a slice of strings.
	ErrInvalidInputType = errors.New("stylesheet input must be a string or a list of strings")
)

// Options controls Set construction.
type Options struct {
	// Recursive requests recursive directory traversal. Directory entries
	// are currently expanded one level deep only; recursive traversal is
	// not implemented and the flag is recorded so callers can warn.
	Recursive bool
}

// Set is an ordered, immutable collection of stylesheet file paths.
type Set struct {
	paths     []string
	recursive bool
}

// NewSet expands input into an ordered Set of stylesheet paths.
//
// input may be a []string of files and directories, or a single string of
// comma-separated entries. Files are added directly. Directories are expanded
// non-recursively to their .css entries in sorted order; recursive traversal
// is a known unimplemented limitation regardless of opts.Recursive.
func NewSet(input any, opts Options) (*Set, error) {
	entries, err := coerceInput(input)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrMissingInput
	}

	set := &Set{recursive: opts.Recursive}
	for _, entry := range entries {
		abs, err := filepath.Abs(entry)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", entry, err)
		}

		stat, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("stylesheet %s: %w", entry, os.ErrNotExist)
			}
			return nil, fmt.Errorf("stat %s: %w", entry, err)
		}

		if !stat.IsDir() {
			set.paths = append(set.paths, abs)
			continue
		}

		expanded, err := expandDir(abs)
		if err != nil {
			return nil, err
		}
		set.paths = append(set.paths, expanded...)
	}

	if len(set.paths) == 0 {
		return nil, ErrMissingInput
	}
	return set, nil
}

// coerceInput normalizes the accepted input shapes to a list of entries.
func coerceInput(input any) ([]string, error) {
	switch v := input.(type) {
	case nil:
		return nil, ErrMissingInput
	case []string:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, ErrMissingInput
		}
		var entries []string
		for part := range strings.SplitSeq(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				entries = append(entries, part)
			}
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInputType, input)
	}
}

// expandDir lists the .css files directly inside dir, sorted by name.
// Subdirectories are skipped; recursion is not supported.
func expandDir(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".css") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Paths returns the resolved stylesheet paths in order.
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of stylesheets in the set.
func (s *Set) Len() int {
	return len(s.paths)
}

// BaseDir returns the directory of the first stylesheet in the set.
// Resource references are resolved against this directory regardless of
// which stylesheet they came from; this matches the original behavior and
// is a known limitation for multi-directory inputs.
func (s *Set) BaseDir() string {
	if len(s.paths) == 0 {
		return ""
	}
	return filepath.Dir(s.paths[0])
}

// Recursive reports whether recursive traversal was requested at
// construction time. Traversal itself is not implemented.
func (s *Set) Recursive() bool {
	return s.recursive
}
