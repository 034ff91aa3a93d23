package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ironsheep/shot2text/internal/ocr"
	"github.com/ironsheep/shot2text/internal/pipeline"
	"github.com/ironsheep/shot2text/internal/telemetry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// outputSubdir is the fixed output folder created next to the installed
// binary when --output-dir is not given.
const outputSubdir = "extracted_text"

// defaultStepDelay is the cosmetic pause between images, kept from the
// original tool so the progress bar visibly animates.
const defaultStepDelay = 100 * time.Millisecond

// errUsage marks argument-level problems so main can exit 2 (usage error)
// instead of 1 (environment error).
var errUsage = errors.New("usage error")

func main() {
	// .env values act as flag defaults; real environment variables win over
	// the file, and flags win over both.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if len(os.Args) == 1 {
		// No arguments: friendly help, success status, no side effects.
		_ = root.Help()
		return
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type options struct {
	language   string
	tessCmd    string
	engine     string
	outputDir  string
	preprocess bool
	inspect    bool
	noDelay    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "shot2text <input_folder> [output_filename]",
		Short: "Extract text from PNG screenshots and combine the results into one text file",
		Long: `shot2text extracts text from PNG image files (screenshots) found in a folder
and combines the extracted text into a single file. Recognition is delegated
to a Tesseract engine: one installed on your system, or a bundled copy placed
in a "Tesseract-OCR" folder next to this program.

The combined text is written into an "extracted_text" folder next to the
program (override with --output-dir). Without an output filename a fresh
name is chosen automatically (output.txt, output_1.txt, ...) so existing
files are never overwritten.

EXAMPLES:
  shot2text my_images_folder
      Processes all PNG files in 'my_images_folder' and writes the combined
      text to a new file.

  shot2text my_images_folder combined_output.txt
      Uses a specific output file name.

  shot2text my_images_folder --language nor
      Uses Norwegian for text extraction.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return fmt.Errorf("%w: expected <input_folder> [output_filename], got %d arguments", errUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: input folder is required", errUsage)
			}
			return run(cmd, args, opts)
		},
	}

	// Flag parse failures (unknown flag, malformed value) are usage errors.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := root.Flags()
	flags.StringVarP(&opts.language, "language", "l",
		envOr("SHOT2TEXT_LANGUAGE", "eng"),
		"language code for text extraction (eng, nor, deu, fra, spa)")
	flags.StringVar(&opts.tessCmd, "tesseract-cmd",
		envOr("SHOT2TEXT_TESSERACT_CMD", "tesseract"),
		"command or path for the text recognition engine")
	flags.StringVar(&opts.engine, "engine", "exec",
		"OCR backend: exec (external binary) or native (in-process bindings)")
	flags.StringVar(&opts.outputDir, "output-dir",
		envOr("SHOT2TEXT_OUTPUT_DIR", ""),
		"directory for extracted text (default: extracted_text next to this program)")
	flags.BoolVar(&opts.preprocess, "preprocess", false,
		"grayscale, upscale and binarize a copy of each image before OCR")
	flags.BoolVar(&opts.inspect, "inspect", false,
		"decode each image first and warn when it looks blank")
	flags.BoolVar(&opts.noDelay, "no-delay", false,
		"disable the cosmetic pause between images")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")

	return root
}

func run(cmd *cobra.Command, args []string, opts options) error {
	level := envOr("SHOT2TEXT_LOG_LEVEL", "warn")
	if opts.verbose {
		level = "debug"
	}
	telemetry.Init(level, cmd.ErrOrStderr())

	lang, err := ocr.ParseLanguage(opts.language)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var newEngine pipeline.EngineFunc
	switch opts.engine {
	case "exec":
		newEngine = func() (ocr.Engine, error) { return ocr.ResolveExec(opts.tessCmd) }
	case "native":
		newEngine = ocr.NewNative
	default:
		return fmt.Errorf("%w: --engine must be \"exec\" or \"native\", got %q", errUsage, opts.engine)
	}

	inputDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve input folder: %w", err)
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir, err = defaultOutputDir()
		if err != nil {
			return err
		}
	}

	outputName := ""
	if len(args) == 2 {
		outputName = args[1]
	}

	delay := defaultStepDelay
	if opts.noDelay {
		delay = 0
	}

	cfg := pipeline.Config{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		OutputName: outputName,
		Language:   lang,
		Preprocess: opts.preprocess,
		Inspect:    opts.inspect,
		StepDelay:  delay,
		ReportW:    cmd.OutOrStdout(),
		ProgressW:  cmd.OutOrStdout(),
	}

	summary, err := pipeline.Run(cmd.Context(), cfg, newEngine)
	if err != nil {
		return err
	}

	telemetry.L().Debug().
		Int("images", summary.ImagesFound).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Str("output", summary.OutputPath).
		Msg("run finished")
	return nil
}

// defaultOutputDir returns the extracted_text folder next to the installed
// binary, resolving symlinks to find the real install location.
func defaultOutputDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if real, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = real
	}
	return filepath.Join(filepath.Dir(exePath), outputSubdir), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
