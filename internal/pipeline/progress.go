package pipeline

import (
	"fmt"
	"io"
	"strings"
)

// barSegments is the fixed width of the progress bar.
const barSegments = 10

// progressBar renders a single overwriting progress line:
//
//	Processing files: (====      ) 40% complete
//
// The line is rewritten in place with a carriage return so a slow per-image
// engine call gives feedback without scrolling the terminal.
type progressBar struct {
	w     io.Writer
	total int
}

func (p progressBar) update(done int) {
	if p.w == nil || p.total <= 0 {
		return
	}
	progress := float64(done) / float64(p.total)
	filled := int(progress * barSegments)
	if filled > barSegments {
		filled = barSegments
	}
	bar := "(" + strings.Repeat("=", filled) + strings.Repeat(" ", barSegments-filled) + ")"
	fmt.Fprintf(p.w, "\rProcessing files: %s %d%% complete", bar, int(progress*100))
}
