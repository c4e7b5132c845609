// Package assets locates and loads the theme-qualified hand artwork. Files
// follow the fixed convention
//
//	<root>/{day|night}/{hour|minute|second}-hand.png
//
// Artwork is square, points at 3 o'clock and rotates about its center.
// When a file is missing or unreadable a generated placeholder hand takes
// its place.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Hand identifies one of the three clock hands.
type Hand int

const (
	HourHand Hand = iota
	MinuteHand
	SecondHand
)

// Hands lists the hands in drawing order (hour below second).
var Hands = [...]Hand{HourHand, MinuteHand, SecondHand}

// String returns "hour", "minute" or "second".
func (h Hand) String() string {
	switch h {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	default:
		return fmt.Sprintf("hand(%d)", int(h))
	}
}

// FileName returns the artwork file name, e.g. "hour-hand.png".
func (h Hand) FileName() string {
	return h.String() + "-hand.png"
}

// HandPath returns the artwork path for a hand under a theme.
func HandPath(root string, t theme.Theme, h Hand) string {
	return filepath.Join(root, t.String(), h.FileName())
}

// HandSet is the artwork for all three hands under one theme.
type HandSet struct {
	Theme  theme.Theme
	Hour   image.Image
	Minute image.Image
	Second image.Image

	// Placeholders lists hands drawn from generated artwork.
	Placeholders []Hand
}

// Get returns the image for h.
func (s HandSet) Get(h Hand) image.Image {
	switch h {
	case HourHand:
		return s.Hour
	case MinuteHand:
		return s.Minute
	default:
		return s.Second
	}
}

func (s *HandSet) set(h Hand, img image.Image) {
	switch h {
	case HourHand:
		s.Hour = img
	case MinuteHand:
		s.Minute = img
	default:
		s.Second = img
	}
}

// DefaultPlaceholderSize is the edge length of generated hands in pixels.
const DefaultPlaceholderSize = 256

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	Root            string
	PlaceholderSize int
	Logger          *slog.Logger
}

// Loader reads hand artwork and caches one HandSet per theme. It is safe
// for concurrent use; the asset watcher invalidates it from its own
// goroutine.
type Loader struct {
	root   string
	size   int
	logger *slog.Logger

	mu     sync.Mutex
	cache  map[theme.Theme]HandSet
	warned map[string]bool
}

// NewLoader creates a Loader rooted at cfg.Root.
func NewLoader(cfg LoaderConfig) *Loader {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PlaceholderSize <= 0 {
		cfg.PlaceholderSize = DefaultPlaceholderSize
	}
	return &Loader{
		root:   cfg.Root,
		size:   cfg.PlaceholderSize,
		logger: cfg.Logger,
		cache:  make(map[theme.Theme]HandSet),
		warned: make(map[string]bool),
	}
}

// Root returns the asset directory.
func (l *Loader) Root() string {
	return l.root
}

// Load returns the hand artwork for t. Missing or undecodable files are
// replaced by placeholders and reported once per path at Warn level.
func (l *Loader) Load(t theme.Theme) HandSet {
	l.mu.Lock()
	defer l.mu.Unlock()

	if set, ok := l.cache[t]; ok {
		return set
	}

	set := HandSet{Theme: t}
	pal := theme.For(t)
	for _, h := range Hands {
		path := HandPath(l.root, t, h)
		img, err := imaging.Open(path)
		if err != nil {
			if !l.warned[path] {
				l.warned[path] = true
				l.logger.Warn("hand artwork unavailable, using placeholder", "path", path, "error", err)
			}
			c, _ := theme.RGBA(placeholderColor(pal, h))
			img = Placeholder(h, l.size, c)
			set.Placeholders = append(set.Placeholders, h)
		}
		set.set(h, img)
	}

	l.cache[t] = set
	l.logger.Debug("loaded hand artwork", "theme", t, "root", l.root, "placeholders", len(set.Placeholders))
	return set
}

// Invalidate drops every cached HandSet so the next Load rereads disk.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[theme.Theme]HandSet)
	l.warned = make(map[string]bool)
}

func placeholderColor(p theme.Palette, h Hand) string {
	switch h {
	case HourHand:
		return p.Hour
	case MinuteHand:
		return p.Minute
	default:
		return p.Second
	}
}

// Placeholder draws a plain hand on a transparent size x size canvas. The
// bar starts just behind the center and points at 3 o'clock, matching the
// orientation of the real artwork.
func Placeholder(h Hand, size int, c color.Color) *image.NRGBA {
	if size < 8 {
		size = 8
	}
	img := imaging.New(size, size, color.Transparent)

	radius := float64(size) / 2
	var length, thickness float64
	switch h {
	case HourHand:
		length, thickness = 0.55*radius, 0.09*float64(size)
	case MinuteHand:
		length, thickness = 0.8*radius, 0.06*float64(size)
	default:
		length, thickness = 0.9*radius, 0.02*float64(size)
	}
	if thickness < 1 {
		thickness = 1
	}

	x0 := int(radius - thickness)
	x1 := int(radius + length)
	y0 := int(radius - thickness/2)
	y1 := int(radius + thickness/2 + 0.5)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
