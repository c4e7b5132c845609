// Package components provides the box, text and bar primitives the
// dashboard panels are drawn with. All widths are visible terminal cells.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Align controls horizontal placement within a line or border.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VisibleLen returns the visible width of s in terminal cells, ignoring
// escape sequences and counting wide characters such as 月 as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth cells, keeping escape sequences.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail is Truncate with tail (counted in maxWidth) appended
// when s is cut.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width cells.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centers s within width cells; odd padding goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-vis-left)
}

// Pad aligns s within width cells.
func Pad(s string, width int, align Align) string {
	switch align {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		vis := VisibleLen(s)
		if vis >= width {
			return s
		}
		return strings.Repeat(" ", width-vis) + s
	default:
		return PadRight(s, width)
	}
}

// FitLine truncates or right-pads line to exactly width cells.
func FitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(line) > width {
		return Truncate(line, width)
	}
	return PadRight(line, width)
}

// CenterBlock places a multi-line block in the middle of a width x height
// area. Lines are fitted to width and the block is cut to height.
func CenterBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if block != "" {
		lines = strings.Split(block, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	blockW := 0
	for _, l := range lines {
		blockW = max(blockW, VisibleLen(l))
	}
	left := max((width-blockW)/2, 0)
	top := (height - len(lines)) / 2

	out := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range out {
		j := i - top
		if j < 0 || j >= len(lines) {
			out[i] = blank
			continue
		}
		out[i] = FitLine(strings.Repeat(" ", left)+lines[j], width)
	}
	return strings.Join(out, "\n")
}
