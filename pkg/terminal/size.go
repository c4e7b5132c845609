package terminal

import (
	"os"
	"strconv"
)

// Size represents terminal dimensions in character cells and, when the
// platform reports them, pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int // 0 if unknown
	PixelH int // 0 if unknown
	CellW  int // 0 if unknown
	CellH  int // 0 if unknown
}

// GetSize returns the current terminal dimensions, trying stdout, then
// stderr, then COLUMNS/LINES, then 80x24.
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := sizeFromFd(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return sizeFromEnv()
}

// withCells fills in the per-cell pixel size when pixel dimensions are
// known.
func (s Size) withCells() Size {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

// sizeFromEnv reads COLUMNS/LINES, falling back to 80x24.
func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
