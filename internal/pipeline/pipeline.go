package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ironsheep/shot2text/internal/imaging"
	"github.com/ironsheep/shot2text/internal/ocr"
	"github.com/ironsheep/shot2text/internal/scan"
	"github.com/ironsheep/shot2text/internal/telemetry"
)

// previewLines is how many lines of the combined output are echoed back at
// the end of a run.
const previewLines = 10

// Config describes one extraction run. It is immutable once Run starts.
type Config struct {
	// InputDir is the folder scanned for PNG files.
	InputDir string

	// OutputDir holds the combined output and the transient per-image files.
	// Created if absent.
	OutputDir string

	// OutputName is the optional user-supplied combined-output name. Empty
	// selects automatic naming (output.txt, output_1.txt, ...). A missing
	// ".txt" extension is appended. An explicitly named file is truncated if
	// it already exists; automatic naming never reuses an existing name.
	OutputName string

	// Language is the traineddata code passed to the engine.
	Language ocr.Language

	// Preprocess runs each image through imaging.PrepareForOCR and feeds the
	// engine the cleaned copy. The copies live in a run-scoped temp directory
	// that is removed when the run ends.
	Preprocess bool

	// Inspect decodes each image before OCR and logs a warning when it looks
	// blank. Diagnostics only; processing is unaffected.
	Inspect bool

	// StepDelay is the cosmetic pause after each progress update, there only
	// so the bar visibly animates. Zero disables it.
	StepDelay time.Duration

	// ReportW receives the user-facing report output (summary, preview,
	// per-image error lines). Nil discards it.
	ReportW io.Writer

	// ProgressW receives the overwriting progress line. Nil disables the bar.
	ProgressW io.Writer
}

// Summary is the outcome of a run.
type Summary struct {
	InputDir    string
	ImagesFound int
	Succeeded   int
	Failed      int

	// OutputPath is the combined output file, or empty when there was
	// nothing to process (no combined file is created in that case).
	OutputPath string
}

// EngineFunc resolves the OCR engine for a run.
//
// Resolution is deferred until discovery has found at least one image: an
// empty input folder succeeds even when no engine is installed.
type EngineFunc func() (ocr.Engine, error)

// Run executes the four stages in order: snapshot + discovery, per-image
// invocation, aggregation + reporting, cleanup.
//
// The returned error is non-nil only for environment-level problems
// (scan.ErrNotDirectory, ocr.ErrEngineNotFound, unusable output directory)
// or cancellation; per-image engine failures are counted in the Summary and
// reported inline instead.
func Run(ctx context.Context, cfg Config, newEngine EngineFunc) (*Summary, error) {
	reportW := cfg.ReportW
	if reportW == nil {
		reportW = io.Discard
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	preexisting, err := snapshotTextFiles(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	images, err := scan.PNGFiles(cfg.InputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{InputDir: cfg.InputDir, ImagesFound: len(images)}
	if len(images) == 0 {
		fmt.Fprintf(reportW, "No PNG files found in %q. Nothing to process.\n", cfg.InputDir)
		return summary, nil
	}

	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	telemetry.L().Debug().Str("engine", engine.Name()).Msg("engine resolved")

	combinedPath := ""
	if cfg.OutputName != "" {
		combinedPath = filepath.Join(cfg.OutputDir, NormalizeOutputName(cfg.OutputName))
	} else {
		combinedPath = NextOutputName(cfg.OutputDir)
	}
	summary.OutputPath = combinedPath

	fmt.Fprintf(reportW, "Found %d PNG file(s) in %q. Beginning text extraction using language %q...\n",
		len(images), cfg.InputDir, cfg.Language)

	prepDir := ""
	if cfg.Preprocess {
		prepDir, err = os.MkdirTemp("", "shot2text-prep-")
		if err != nil {
			return nil, fmt.Errorf("failed to create preprocessing directory: %w", err)
		}
		defer os.RemoveAll(prepDir)
	}

	bar := progressBar{w: cfg.ProgressW, total: len(images)}
	generated := make([]string, 0, len(images))

	for i, name := range images {
		imagePath := filepath.Join(cfg.InputDir, name)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		outputBase := filepath.Join(cfg.OutputDir, base)

		if cfg.Inspect {
			inspectImage(imagePath, name)
		}

		src := imagePath
		if cfg.Preprocess {
			if prepped, prepErr := imaging.PrepareForOCR(imagePath, prepDir); prepErr != nil {
				telemetry.L().Warn().Err(prepErr).Str("image", name).
					Msg("preprocessing failed, using original image")
			} else {
				src = prepped
			}
		}

		if recErr := engine.Recognize(ctx, src, outputBase, cfg.Language); recErr != nil {
			summary.Failed++
			fmt.Fprintf(reportW, "\nERROR: Text extraction failed for %s.\n%v\n", name, recErr)
		} else {
			summary.Succeeded++
			generated = append(generated, outputBase+".txt")
		}

		bar.update(i + 1)
		if err := pause(ctx, cfg.StepDelay); err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(reportW, "\n\nCombining extracted text into: %s\n", combinedPath)
	if err := combine(combinedPath, generated); err != nil {
		return summary, err
	}

	fmt.Fprintf(reportW, "\nSummary:\n")
	fmt.Fprintf(reportW, " - Input folder: %s\n", cfg.InputDir)
	fmt.Fprintf(reportW, " - Number of images processed: %d\n", len(images))
	fmt.Fprintf(reportW, " - Combined output file: %s\n", combinedPath)

	preview(reportW, combinedPath)
	cleanup(generated, preexisting)

	fmt.Fprintf(reportW, "\nDone.\n")
	return summary, nil
}

// inspectImage logs pre-flight diagnostics for one screenshot.
func inspectImage(path, name string) {
	info, err := imaging.Inspect(path)
	if err != nil {
		telemetry.L().Warn().Err(err).Str("image", name).Msg("inspection failed")
		return
	}
	evt := telemetry.L().Debug()
	if info.LikelyBlank {
		evt = telemetry.L().Warn()
	}
	evt.Str("image", name).
		Int("width", info.Width).
		Int("height", info.Height).
		Str("background", info.Background).
		Float64("contrast", info.Contrast).
		Bool("likely_blank", info.LikelyBlank).
		Msg("inspected image")
}

// pause sleeps for the cosmetic inter-image delay, honoring cancellation.
// Cancellation is also checked when the delay is disabled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// snapshotTextFiles records the ".txt" file names (case-insensitive match,
// exact names stored) present in dir before processing begins.
func snapshotTextFiles(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list output directory: %w", err)
	}
	set := make(map[string]struct{})
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			set[e.Name()] = struct{}{}
		}
	}
	return set, nil
}

// combine truncates path and writes each existing part followed by one
// newline separator, in order. Missing parts (failed invocations) are
// silently skipped, with no separator or placeholder.
func combine(path string, parts []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create combined output: %w", err)
	}
	for _, p := range parts {
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			out.Close()
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		if _, err := out.Write(append(data, '\n')); err != nil {
			out.Close()
			return fmt.Errorf("failed to write combined output: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close combined output: %w", err)
	}
	return nil
}

// preview echoes up to the first previewLines lines of the combined file.
// A missing file at this point is reported as a diagnostic, not an error.
func preview(w io.Writer, path string) {
	fmt.Fprintf(w, "\nFirst %d lines of the combined output:\n", previewLines)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(w, "[No output file found. Something may have gone wrong.]")
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; i < previewLines && sc.Scan(); i++ {
		fmt.Fprintln(w, strings.TrimRight(sc.Text(), " \t\r"))
	}
}

// cleanup deletes the per-image text files generated this run, except those
// whose names were already present in the output directory before the run.
func cleanup(generated []string, preexisting map[string]struct{}) {
	for _, p := range generated {
		if _, ok := preexisting[filepath.Base(p)]; ok {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			telemetry.L().Warn().Err(err).Str("file", p).Msg("failed to remove intermediate file")
		}
	}
}
