// Package terminal identifies the terminal emulator, picks the graphics
// protocol the clock face is drawn with, and queries the window size in
// cells and pixels.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // kitty graphics
	TermKitty              // kitty graphics
	TermWezTerm            // kitty graphics, sixel, iterm2 images
	TermITerm2             // iterm2 images
	TermAlacritty          // true color, no graphics
	TermGNOME              // VTE-based
	TermVSCode             // integrated terminal
	TermTmux               // multiplexer
	TermScreen             // multiplexer
	TermGeneric            // anything else
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "gnome-terminal",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the emulator is known to render
// 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// detectRule maps one environment signal to a terminal.
type detectRule struct {
	env   string
	match func(string) bool
	term  Terminal
}

func equalFold(want string) func(string) bool {
	return func(v string) bool { return strings.EqualFold(v, want) }
}

func present(v string) bool { return v != "" }

// detectRules are checked in order; the first match wins. TERM_PROGRAM
// is the most reliable signal, multiplexers come last so the emulator
// inside them is preferred.
var detectRules = []detectRule{
	{"TERM_PROGRAM", equalFold("ghostty"), TermGhostty},
	{"TERM_PROGRAM", equalFold("kitty"), TermKitty},
	{"TERM_PROGRAM", equalFold("wezterm"), TermWezTerm},
	{"TERM_PROGRAM", equalFold("iterm.app"), TermITerm2},
	{"TERM_PROGRAM", equalFold("vscode"), TermVSCode},
	{"TERM_PROGRAM", equalFold("alacritty"), TermAlacritty},
	{"TERM", equalFold("xterm-ghostty"), TermGhostty},
	{"TERM", equalFold("xterm-kitty"), TermKitty},
	{"TERM", func(v string) bool { return strings.HasPrefix(v, "alacritty") }, TermAlacritty},
	{"KITTY_WINDOW_ID", present, TermKitty},
	{"ITERM_SESSION_ID", present, TermITerm2},
	{"LC_TERMINAL", equalFold("iterm2"), TermITerm2},
	{"WEZTERM_EXECUTABLE", present, TermWezTerm},
	{"VTE_VERSION", present, TermGNOME},
	{"TMUX", present, TermTmux},
	{"STY", present, TermScreen},
}

// Detect identifies the terminal emulator from environment variables. It
// performs no I/O.
func Detect() Terminal {
	for _, r := range detectRules {
		if r.match(os.Getenv(r.env)) {
			return r.term
		}
	}
	return TermGeneric
}
