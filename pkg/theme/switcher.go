// Package theme owns the day/night decision and the color palettes the
// dashboard draws with under each theme.
package theme

import (
	"log/slog"
	"time"
)

// Theme is the two-valued visual mode.
type Theme int

const (
	// Day is active from 06:00 until 22:59.
	Day Theme = iota
	// Night is active from 23:00 until 05:59.
	Night
)

// Night starts at NightStartHour and ends before DayStartHour.
const (
	NightStartHour = 23
	DayStartHour   = 6
)

// String returns "day" or "night", which is also the asset directory name.
func (t Theme) String() string {
	if t == Night {
		return "night"
	}
	return "day"
}

// MarshalText encodes the theme by name.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Decide returns Night for hours in [23, 24) and [0, 6), Day otherwise.
func Decide(hour int) Theme {
	if hour >= NightStartHour || hour < DayStartHour {
		return Night
	}
	return Day
}

// Period returns the start and end of the theme period containing now,
// in now's location.
func Period(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	at := func(day, hour int) time.Time {
		return time.Date(y, m, day, hour, 0, 0, 0, now.Location())
	}
	switch h := now.Hour(); {
	case h >= NightStartHour:
		return at(d, NightStartHour), at(d+1, DayStartHour)
	case h < DayStartHour:
		return at(d-1, NightStartHour), at(d, DayStartHour)
	default:
		return at(d, DayStartHour), at(d, NightStartHour)
	}
}

// Applier receives theme changes. Implementations swap whatever depends on
// the theme (hand artwork, palette).
type Applier interface {
	ApplyTheme(Theme)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(Theme)

// ApplyTheme calls f(t).
func (f ApplierFunc) ApplyTheme(t Theme) { f(t) }

// Switcher holds the applied theme and runs the appliers only when the
// decision flips. It is not safe for concurrent use; drive it from one
// loop.
type Switcher struct {
	appliers []Applier
	logger   *slog.Logger

	current Theme
	applied bool
}

// NewSwitcher creates a Switcher that has not applied any theme yet; the
// first Tick always applies.
func NewSwitcher(logger *slog.Logger, appliers ...Applier) *Switcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Switcher{appliers: appliers, logger: logger}
}

// AddApplier registers another receiver for future changes.
func (s *Switcher) AddApplier(a Applier) {
	s.appliers = append(s.appliers, a)
}

// Current returns the last applied theme. Before the first Tick it is Day.
func (s *Switcher) Current() Theme {
	return s.current
}

// Applied reports whether any theme has been applied yet.
func (s *Switcher) Applied() bool {
	return s.applied
}

// Tick decides the theme for now's local hour. When it differs from the
// applied theme (or nothing was applied yet) the appliers run and changed
// is true; otherwise Tick does nothing.
func (s *Switcher) Tick(now time.Time) (t Theme, changed bool) {
	next := Decide(now.Hour())
	if s.applied && next == s.current {
		return s.current, false
	}

	prev := s.current
	s.current = next
	s.applied = true
	s.logger.Debug("theme changed", "from", prev, "to", next, "hour", now.Hour())

	for _, a := range s.appliers {
		a.ApplyTheme(next)
	}
	return next, true
}
