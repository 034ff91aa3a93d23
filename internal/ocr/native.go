//go:build cgo

package ocr

import (
	"context"
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// Native runs OCR in-process through the gosseract Tesseract bindings.
//
// It honors the same output contract as the external engine: the recognized
// text is written to outputBase + ".txt", so the pipeline never branches on
// which backend produced a result.
type Native struct{}

// NewNative returns the in-process gosseract engine. On binaries built
// without cgo this constructor reports ErrNativeUnavailable instead.
func NewNative() (Engine, error) {
	return Native{}, nil
}

// Name identifies the backend in logs and error messages.
func (Native) Name() string { return "gosseract (native)" }

// Recognize performs OCR on the image and writes outputBase + ".txt".
func (Native) Recognize(ctx context.Context, imagePath, outputBase string, lang Language) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(string(lang)); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return fmt.Errorf("OCR failed: %w", err)
	}

	if err := os.WriteFile(outputBase+".txt", []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}
