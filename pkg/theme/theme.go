package theme

import (
	"sort"
	"strings"
	"sync"
)

// Palette defines the colors the dashboard draws with under one theme.
// All values are "#RRGGBB" hex strings.
type Palette struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Panel chrome
	Border string
	Title  string

	// Calendar
	Saturday  string // saturday labels and cells
	Sunday    string // sunday labels and cells
	Today     string // disc behind the current day
	TodayText string // digits drawn on the disc

	// Dial
	Face   string // face fill
	Rim    string // outer ring
	Ticks  string // hour markers
	Hour   string // generated hour hand
	Minute string // generated minute hand
	Second string // generated second hand
}

var (
	mu       sync.RWMutex
	registry = map[string]Palette{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named palette, falling back to the day palette if the name
// is unknown.
func Get(name string) Palette {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := registry[strings.ToLower(name)]; ok {
		return p
	}
	return registry["day"]
}

// For returns the palette registered for t.
func For(t Theme) Palette {
	return Get(t.String())
}

// Names returns all registered palette names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a palette under its lowercase name. Registering
// a palette named "day" or "night" overrides the built-in one.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}
