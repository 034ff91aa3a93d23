package imaging

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Info contains pre-flight metadata about a screenshot.
type Info struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Background is the most common sampled color as "#rrggbb".
	Background string `json:"background"`

	// Contrast is the spread of Lab lightness across the sample grid,
	// from 0 (uniform) to 1 (full black-to-white range).
	Contrast float64 `json:"contrast"`

	// LikelyBlank is true when the contrast is so low that OCR is unlikely
	// to find any text.
	LikelyBlank bool `json:"likely_blank"`
}

// sampleGrid is the number of sample points per axis. A coarse grid keeps
// inspection cheap on multi-megapixel screenshots.
const sampleGrid = 32

// blankContrast is the lightness spread below which an image is reported as
// likely blank.
const blankContrast = 0.05

// Inspect decodes the image at path and measures dimensions, background color
// and contrast.
//
// The measurement samples at most sampleGrid x sampleGrid pixels, so results
// are estimates: a single thin line of text on a large screenshot can be
// missed. That is acceptable for its only use, a pre-OCR warning.
func Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	stepX := max(1, bounds.Dx()/sampleGrid)
	stepY := max(1, bounds.Dy()/sampleGrid)

	var (
		minL    = 1.0
		maxL    = 0.0
		sampled int
		counts  = make(map[string]int)
	)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel carries no color information.
				continue
			}
			l, _, _ := c.Lab()
			if l < minL {
				minL = l
			}
			if l > maxL {
				maxL = l
			}
			counts[c.Hex()]++
			sampled++
		}
	}

	contrast := 0.0
	if sampled > 0 {
		contrast = maxL - minL
	}

	background := ""
	best := 0
	for hex, n := range counts {
		if n > best {
			background = hex
			best = n
		}
	}

	return &Info{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Background:  background,
		Contrast:    contrast,
		LikelyBlank: contrast < blankContrast,
	}, nil
}
