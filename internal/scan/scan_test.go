package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates an empty file inside dir.
func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func TestPNGFiles_FiltersCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "B.PNG")
	writeFile(t, dir, "c.Png")
	writeFile(t, dir, "photo.jpg")
	writeFile(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "folder.png"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	files, err := PNGFiles(dir)
	if err != nil {
		t.Fatalf("PNGFiles failed: %v", err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		got[f] = true
	}
	for _, want := range []string{"a.png", "B.PNG", "c.Png"} {
		if !got[want] {
			t.Errorf("expected %s in results, got %v", want, files)
		}
	}
	if len(files) != 3 {
		t.Errorf("expected 3 matches, got %d: %v", len(files), files)
	}
}

func TestPNGFiles_EmptyDirectory(t *testing.T) {
	files, err := PNGFiles(t.TempDir())
	if err != nil {
		t.Fatalf("PNGFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no matches, got %v", files)
	}
}

func TestPNGFiles_NotDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.png")

	if _, err := PNGFiles(filepath.Join(dir, "file.png")); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("file path: error = %v, want ErrNotDirectory", err)
	}
	if _, err := PNGFiles(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("missing path: error = %v, want ErrNotDirectory", err)
	}
}
