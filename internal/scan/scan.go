// Package scan discovers the PNG screenshots to be processed.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory reports that the input path does not resolve to an existing
// directory.
var ErrNotDirectory = errors.New("not a valid directory")

// PNGFiles returns the names of the PNG files in dir, in the raw order the
// platform lists them.
//
// The order is deliberately left unsorted: processing order (and therefore
// the order of the combined output) follows the directory listing, whatever
// the platform returns. Matching is by file name suffix, case-insensitive,
// and directories are skipped even when their name ends in ".png".
//
// An empty result is not an error; callers treat it as "nothing to process".
func PNGFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", dir, ErrNotDirectory)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}
	defer f.Close()

	// Readdirnames preserves listing order; os.ReadDir would sort by name.
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	pngs := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil || fi.IsDir() {
			continue
		}
		pngs = append(pngs, name)
	}
	return pngs, nil
}
