package components

import (
	"fmt"

	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Color produces a 24-bit foreground escape from a "#RRGGBB" string.
// Malformed input yields "".
func Color(hex string) string {
	c, ok := theme.RGBA(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// BgColor produces a 24-bit background escape from a "#RRGGBB" string.
func BgColor(hex string) string {
	c, ok := theme.RGBA(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Bold wraps s in ANSI bold escape sequences.
func Bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}

// Dim wraps s in ANSI dim/faint escape sequences.
func Dim(s string) string {
	return "\x1b[2m" + s + "\x1b[22m"
}

// Reset returns the ANSI reset sequence that clears all styling.
func Reset() string {
	return "\x1b[0m"
}
