package components

import (
	"fmt"
	"math"
	"strings"
)

// Eighth blocks give a bar sub-cell precision.
var progressBlocks = [9]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// ProgressStyle configures a horizontal progress bar.
type ProgressStyle struct {
	FilledColor string // hex
	EmptyColor  string // hex background behind the bar
	ShowPercent bool   // append " 73%"
}

// Progress renders ratio (clamped to [0, 1]) as a bar width cells wide.
func Progress(ratio float64, width int, style ProgressStyle) string {
	if width <= 0 {
		return ""
	}
	ratio = math.Max(0, math.Min(1, ratio))

	units := int(math.Round(ratio * float64(width*8)))
	full, part := units/8, units%8
	empty := width - full
	if part > 0 {
		empty--
	}

	var b strings.Builder
	b.WriteString(Color(style.FilledColor))
	b.WriteString(BgColor(style.EmptyColor))
	b.WriteString(strings.Repeat(progressBlocks[8], full))
	if part > 0 {
		b.WriteString(progressBlocks[part])
	}
	b.WriteString(strings.Repeat(" ", max(empty, 0)))
	b.WriteString(Reset())

	if style.ShowPercent {
		fmt.Fprintf(&b, " %d%%", int(math.Round(ratio*100)))
	}
	return b.String()
}
