package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NextOutputName returns the first unused combined-output path in dir,
// probing "output.txt", "output_1.txt", "output_2.txt", ... contiguously
// from zero. The probe is unbounded; it only reads, never creates.
func NextOutputName(dir string) string {
	candidate := filepath.Join(dir, "output.txt")
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("output_%d.txt", counter))
	}
}

// NormalizeOutputName appends ".txt" to a user-supplied output name unless it
// already ends with it (case-insensitive).
func NormalizeOutputName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return name
	}
	return name + ".txt"
}
