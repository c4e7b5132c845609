package theme

import (
	"image/color"
	"strconv"
	"strings"
)

// RGBA parses a "#RRGGBB" string into an opaque color. Malformed input
// yields opaque black and false.
func RGBA(hex string) (color.NRGBA, bool) {
	r, g, b, ok := thParseHex(hex)
	if !ok {
		return color.NRGBA{A: 0xff}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}

// thParseHex parses a hex color string into r, g, b components.
// Accepts "#RRGGBB" or "RRGGBB".
func thParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
