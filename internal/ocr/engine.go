package ocr

import (
	"context"
	"errors"
	"fmt"
)

// Language identifies a Tesseract traineddata language code.
type Language string

// Language codes accepted by the CLI. The corresponding traineddata must be
// installed for the engine that ends up running.
const (
	LangEnglish   Language = "eng"
	LangNorwegian Language = "nor"
	LangGerman    Language = "deu"
	LangFrench    Language = "fra"
	LangSpanish   Language = "spa"
)

// SupportedLanguages lists the accepted language codes in display order.
var SupportedLanguages = []Language{
	LangEnglish,
	LangNorwegian,
	LangGerman,
	LangFrench,
	LangSpanish,
}

// ErrEngineNotFound reports that no usable OCR engine binary could be located.
var ErrEngineNotFound = errors.New("text recognition engine not found")

// ErrNativeUnavailable reports that the native backend was requested from a
// binary built without cgo support.
var ErrNativeUnavailable = errors.New("native OCR engine unavailable: binary built without cgo")

// ParseLanguage validates a user-supplied language code.
func ParseLanguage(code string) (Language, error) {
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (choose one of eng, nor, deu, fra, spa)", code)
}

// Engine converts one image file into one text file.
//
// Recognize must write the recognized text to outputBase + ".txt". Errors are
// per-image: the caller decides whether to continue with remaining images.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, imagePath, outputBase string, lang Language) error
}
