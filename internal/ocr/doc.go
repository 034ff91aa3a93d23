// Package ocr defines the text recognition capability used by the extraction
// pipeline.
//
// Recognition is delegated to Tesseract; this package only models how the
// pipeline reaches it. The Engine interface is intentionally small (one image
// file in, one text file out) so backends can be swapped without the pipeline
// knowing which one is in play:
//
//   - Exec invokes an external tesseract binary as a subprocess. This is the
//     default backend and mirrors how end users install Tesseract. The binary
//     is resolved from PATH with a fallback to a bundled copy in a
//     "Tesseract-OCR" folder next to this program.
//   - Native uses the gosseract bindings in-process. It is only compiled when
//     cgo is available; otherwise NewNative reports ErrNativeUnavailable.
//
// Tests substitute their own Engine implementations (or a fake executable)
// so the pipeline can be exercised without any real OCR installation.
//
// # Output contract
//
// Recognize(ctx, imagePath, outputBase, lang) must leave the recognized text
// in outputBase + ".txt". The external tesseract binary appends the extension
// itself, which is why the base path is passed without it; the native backend
// follows the same convention so callers never branch on the backend.
package ocr
