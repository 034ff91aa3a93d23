package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// companionDir is the folder next to the installed binary that may hold a
// bundled Tesseract copy.
const companionDir = "Tesseract-OCR"

// lookPath and executablePath are the exec.LookPath / os.Executable
// implementations used during resolution. Tests replace them to simulate a
// missing or bundled engine without touching the real system.
var (
	lookPath       = exec.LookPath
	executablePath = os.Executable
)

// Exec runs an external Tesseract-compatible binary as a subprocess, one
// invocation per image. Standard output and standard error are captured, not
// streamed; on failure the captured stderr is folded into the returned error.
type Exec struct {
	// Path is the command name or absolute path of the engine binary.
	Path string
}

// ResolveExec locates the engine binary for the given command.
//
// Resolution order:
//  1. The command as-is, looked up on PATH.
//  2. A bundled binary at <binary_dir>/Tesseract-OCR/tesseract
//     (tesseract.exe on Windows).
//
// If neither exists the returned error wraps ErrEngineNotFound and carries a
// remediation hint for the user.
func ResolveExec(command string) (*Exec, error) {
	if _, err := lookPath(command); err == nil {
		return &Exec{Path: command}, nil
	}
	if companion, err := companionPath(); err == nil {
		if _, statErr := os.Stat(companion); statErr == nil {
			return &Exec{Path: companion}, nil
		}
	}
	return nil, fmt.Errorf("%w: install Tesseract or place its binary in the %q folder next to this program", ErrEngineNotFound, companionDir)
}

// companionPath returns the expected location of a bundled engine binary,
// resolving symlinks so the folder is found next to the real install location.
func companionPath() (string, error) {
	exePath, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if real, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = real
	}
	name := "tesseract"
	if runtime.GOOS == "windows" {
		name = "tesseract.exe"
	}
	return filepath.Join(filepath.Dir(exePath), companionDir, name), nil
}

// Name identifies the backend in logs and error messages.
func (e *Exec) Name() string { return "tesseract (external)" }

// Recognize invokes the engine as:
//
//	<path> <image_path> <output_base> -l <lang>
//
// The engine itself appends ".txt" to the output base. A non-zero exit status
// becomes an error that includes whatever the engine printed to stderr.
func (e *Exec) Recognize(ctx context.Context, imagePath, outputBase string, lang Language) error {
	cmd := exec.CommandContext(ctx, e.Path, imagePath, outputBase, "-l", string(lang))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		if detail != "" {
			return fmt.Errorf("%s: %w: %s", filepath.Base(e.Path), err, detail)
		}
		return fmt.Errorf("%s: %w", filepath.Base(e.Path), err)
	}
	return nil
}
