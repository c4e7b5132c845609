// Package widgets provides the two dashboard panels: the analog clock face
// and the month calendar. Both implement app.Widget and theme.Applier.
package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/clockface/pkg/components"
)

// Widget IDs.
const (
	ClockID    = "clock"
	CalendarID = "calendar"
)

// blankLines returns height lines of width spaces.
func blankLines(width, height int) []string {
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return lines
}

// placeGraphic positions an escape-sequence image of cols x rows cells in
// a width x height area. The sequence has no visible width, so it is
// emitted at the top-left corner of the centered region and the rest of
// the area is blank.
func placeGraphic(seq string, cols, rows, width, height int) string {
	lines := blankLines(width, height)
	if len(lines) == 0 {
		return ""
	}
	left := max((width-cols)/2, 0)
	top := min(max((height-rows)/2, 0), height-1)
	lines[top] = components.FitLine(strings.Repeat(" ", left)+seq, width)
	return strings.Join(lines, "\n")
}
