// Package scrollbar draws a one-column scrollbar beside a viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/fbrowse/tui/theme"
)

const (
	thumb = "█"
	track = "░"
)

// Generate returns one scrollbar cell per line for a viewport of the given
// height. Content that fits the viewport yields blank cells.
func Generate(vp *viewport.Model, height int) []string {
	if height <= 0 {
		return []string{}
	}
	cells := make([]string, height)
	muted := theme.DefaultTheme.Muted

	totalLines := vp.TotalLineCount()
	if totalLines <= vp.Height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbSize := max(1, (height*vp.Height)/totalLines)
	scrollPercent := min(max(vp.ScrollPercent(), 0), 1)
	maxThumbStart := height - thumbSize
	thumbStart := min(max(int(float64(maxThumbStart)*scrollPercent+0.5), 0), maxThumbStart)

	for i := range cells {
		if i >= thumbStart && i < thumbStart+thumbSize {
			cells[i] = muted.Render(thumb)
		} else {
			cells[i] = muted.Render(track)
		}
	}
	return cells
}

// Overlay appends the scrollbar to the right of each visible line.
func Overlay(vp *viewport.Model) string {
	lines := strings.Split(vp.View(), "\n")
	cells := Generate(vp, len(lines))
	for i := range lines {
		lines[i] += cells[i]
	}
	return strings.Join(lines, "\n")
}
