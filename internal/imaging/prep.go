package imaging

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// minPrepWidth is the width below which screenshots are upscaled before OCR.
// Tesseract struggles with small captures; doubling them is a cheap win.
const minPrepWidth = 1000

// thresholdLevel is the grayscale cutoff used for binarization.
const thresholdLevel = 160

// PrepareForOCR writes a cleaned-up copy of the image into dstDir and returns
// the path of the copy. The source file is never modified.
//
// The cleanup chain is grayscale, then upscale for small captures, then
// binarize. The copy is named "<base>.prep.png" so it can never collide with
// the per-image text outputs derived from the same base name.
func PrepareForOCR(srcPath, dstDir string) (string, error) {
	src, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	gray := imaging.Grayscale(src)
	if gray.Bounds().Dx() < minPrepWidth {
		gray = imaging.Resize(gray, gray.Bounds().Dx()*2, 0, imaging.Lanczos)
	}
	bw := segment.Threshold(gray, thresholdLevel)

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	dstPath := filepath.Join(dstDir, base+".prep.png")
	if err := imaging.Save(bw, dstPath); err != nil {
		return "", fmt.Errorf("failed to save preprocessed image: %w", err)
	}
	return dstPath, nil
}
