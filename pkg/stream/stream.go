// Package stream publishes the clock, theme and calendar outputs as JSON
// lines for surfaces other than the terminal dashboard.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/clockface/pkg/calendar"
	"gitlab.com/tinyland/lab/clockface/pkg/clock"
	"gitlab.com/tinyland/lab/clockface/pkg/schedule"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Event types.
const (
	TypeFrame    = "frame"
	TypeTheme    = "theme"
	TypeCalendar = "calendar"
)

// Event is one JSON line. Only the fields of its Type are set.
type Event struct {
	Type    string                `json:"type" yaml:"type"`
	Time    time.Time             `json:"time" yaml:"time"`
	Reading *clock.Reading        `json:"reading,omitempty" yaml:"reading,omitempty"`
	Angles  *clock.Angles         `json:"angles,omitempty" yaml:"angles,omitempty"`
	Theme   *theme.Theme          `json:"theme,omitempty" yaml:"theme,omitempty"`
	Layout  *calendar.MonthLayout `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// FrameEvent describes the hands at now.
func FrameEvent(now time.Time) Event {
	r := clock.ReadingAt(now)
	a := r.Angles()
	return Event{Type: TypeFrame, Time: now, Reading: &r, Angles: &a}
}

// ThemeEvent announces t as the applied theme.
func ThemeEvent(now time.Time, t theme.Theme) Event {
	return Event{Type: TypeTheme, Time: now, Theme: &t}
}

// CalendarEvent carries the month containing now.
func CalendarEvent(now time.Time) Event {
	l := calendar.Build(now)
	return Event{Type: TypeCalendar, Time: now, Layout: &l}
}

// Config configures a Streamer.
type Config struct {
	Out           io.Writer
	Clock         clockwork.Clock
	FrameInterval time.Duration
	ThemeInterval time.Duration
	// Frames stops the stream after this many frame events; 0 runs until
	// the context is cancelled.
	Frames int
	// Pretty indents each event; use it when a person is reading.
	Pretty bool
	Logger *slog.Logger
}

// Streamer emits a theme and calendar event at start, a theme event on
// every change, a calendar event when the date rolls over and a frame
// event every FrameInterval.
type Streamer struct {
	cfg Config
	enc *json.Encoder
}

// New creates a Streamer.
func New(cfg Config) (*Streamer, error) {
	if cfg.Out == nil {
		return nil, fmt.Errorf("stream: nil writer")
	}
	if cfg.FrameInterval <= 0 || cfg.ThemeInterval <= 0 {
		return nil, fmt.Errorf("stream: intervals must be positive (frame %s, theme %s)", cfg.FrameInterval, cfg.ThemeInterval)
	}
	if cfg.Frames < 0 {
		return nil, fmt.Errorf("stream: negative frame limit %d", cfg.Frames)
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	enc := json.NewEncoder(cfg.Out)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return &Streamer{cfg: cfg, enc: enc}, nil
}

// Run streams until ctx is cancelled, the frame limit is reached or a
// write fails. Only a write failure is returned as an error.
func (s *Streamer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		writeErr error
		frames   int
		day      time.Time
	)
	emit := func(e Event) {
		if writeErr != nil || ctx.Err() != nil {
			return
		}
		if err := s.enc.Encode(e); err != nil {
			writeErr = fmt.Errorf("stream: write %s event: %w", e.Type, err)
			cancel()
		}
	}

	var tickAt time.Time
	switcher := theme.NewSwitcher(s.cfg.Logger, theme.ApplierFunc(func(t theme.Theme) {
		emit(ThemeEvent(tickAt, t))
	}))

	sched := schedule.New(s.cfg.Clock, s.cfg.Logger)
	if err := sched.Add(TypeTheme, s.cfg.ThemeInterval, func(now time.Time) {
		tickAt = now
		switcher.Tick(now)
		if day.IsZero() || !calendar.SameDay(now, day) {
			day = now
			emit(CalendarEvent(now))
		}
	}); err != nil {
		return err
	}
	if err := sched.Add(TypeFrame, s.cfg.FrameInterval, func(now time.Time) {
		emit(FrameEvent(now))
		frames++
		if s.cfg.Frames > 0 && frames >= s.cfg.Frames {
			cancel()
		}
	}); err != nil {
		return err
	}

	s.cfg.Logger.Debug("stream started", "frame_interval", s.cfg.FrameInterval, "theme_interval", s.cfg.ThemeInterval, "frames", s.cfg.Frames)
	if err := sched.Run(ctx); err != nil {
		return err
	}
	return writeErr
}
