package terminal

import (
	"os"
	"strings"
)

// GraphicsProtocol identifies how the clock face image reaches the screen.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // no image; text-only face
	ProtocolKitty                              // Kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images
	ProtocolSixel                              // Sixel graphics
	ProtocolHalfblocks                         // U+2580 with 24-bit color
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the human-readable name of the graphics protocol.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// SelectProtocol returns the best protocol for term. Bitmap protocols are
// unreliable over SSH, so remote sessions fall back to halfblocks.
func SelectProtocol(term Terminal) GraphicsProtocol {
	var proto GraphicsProtocol
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		proto = ProtocolKitty
	case TermITerm2:
		proto = ProtocolITerm2
	default:
		proto = ProtocolHalfblocks
	}
	if proto != ProtocolHalfblocks && isSSH() {
		return ProtocolHalfblocks
	}
	return proto
}

// ParseProtocol maps a configured protocol name to a GraphicsProtocol.
// "auto" and unrecognized names report ok=false.
func ParseProtocol(name string) (GraphicsProtocol, bool) {
	switch strings.ToLower(name) {
	case "kitty":
		return ProtocolKitty, true
	case "iterm2":
		return ProtocolITerm2, true
	case "sixel":
		return ProtocolSixel, true
	case "halfblocks", "half-blocks", "unicode":
		return ProtocolHalfblocks, true
	case "none", "off", "disabled":
		return ProtocolNone, true
	default:
		return ProtocolNone, false
	}
}

// SelectProtocolWithOverride honors an explicit configured protocol and
// falls back to detection for "auto", empty or unknown values.
func SelectProtocolWithOverride(term Terminal, override string) GraphicsProtocol {
	if p, ok := ParseProtocol(override); ok {
		return p
	}
	return SelectProtocol(term)
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
