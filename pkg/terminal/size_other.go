//go:build !unix

package terminal

import "github.com/charmbracelet/x/term"

// sizeFromFd reports cell dimensions only; pixel sizes are unavailable
// off unix.
func sizeFromFd(fd uintptr) Size {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}
	}
	return Size{Cols: w, Rows: h}
}
