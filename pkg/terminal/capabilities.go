package terminal

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Capabilities is the terminal summary the renderer and dashboard work
// from: emulator, chosen protocol, size and color depth.
type Capabilities struct {
	Term      Terminal
	Protocol  GraphicsProtocol
	Size      Size
	TrueColor bool
	SSH       bool
	Mux       bool // inside tmux or screen
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex
)

// DetectCapabilities performs detection once and caches the result.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

func detect() *Capabilities {
	term := Detect()
	return &Capabilities{
		Term:      term,
		Protocol:  SelectProtocol(term),
		Size:      GetSize(),
		TrueColor: term.SupportsTrueColor() || envTrueColor(),
		SSH:       isSSH(),
		Mux:       os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// envTrueColor asks termenv for the environment's color profile. The TTY
// check is skipped because the TUI owns the terminal by the time frames
// are drawn, even when detection runs before stdout is attached.
func envTrueColor() bool {
	out := termenv.NewOutput(os.Stdout, termenv.WithTTY(true))
	return out.EnvColorProfile() == termenv.TrueColor
}
