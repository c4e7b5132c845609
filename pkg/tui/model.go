// Package tui is the Bubbletea dashboard: an analog clock face beside the
// current month, restyled for day or night by a theme.Switcher.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/clockface/pkg/app"
	"gitlab.com/tinyland/lab/clockface/pkg/config"
	"gitlab.com/tinyland/lab/clockface/pkg/layout"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
	"gitlab.com/tinyland/lab/clockface/pkg/widgets"
)

// Config wires a Model.
type Config struct {
	Clock    *widgets.ClockWidget
	Calendar *widgets.CalendarWidget
	// Switcher owns the theme. A fresh one is created when nil.
	Switcher *theme.Switcher
	// Now is the time source for every tick. Defaults to the real clock.
	Now     clockwork.Clock
	Display config.DisplayConfig
	// AssetChanges receives a value whenever hand artwork changes on disk.
	AssetChanges <-chan struct{}
	Logger       *slog.Logger
}

// chrome is the theme-dependent state of the dashboard itself: panel
// borders, titles and the status line.
type chrome struct {
	theme   theme.Theme
	palette theme.Palette
	notice  *app.MessageWidget
}

func (c *chrome) ApplyTheme(t theme.Theme) {
	c.theme = t
	c.palette = theme.For(t)
	c.notice.SetColor(c.palette.Accent)
}

// Model is the dashboard's Bubbletea model.
type Model struct {
	clock    *widgets.ClockWidget
	calendar *widgets.CalendarWidget
	switcher *theme.Switcher
	now      clockwork.Clock
	logger   *slog.Logger
	changes  <-chan struct{}

	frameEvery time.Duration
	themeEvery time.Duration
	mode       layout.Mode
	faceCols   int

	chrome *chrome
	keys   KeyMap
	help   help.Model

	width, height int
	last          time.Time
}

// New builds the dashboard and applies the theme for the current time, so
// the first frame is already styled.
func New(cfg Config) (Model, error) {
	if cfg.Clock == nil || cfg.Calendar == nil {
		return Model{}, fmt.Errorf("tui: clock and calendar widgets are required")
	}
	mode, err := layout.ParseMode(cfg.Display.Layout)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = clockwork.NewRealClock()
	}
	if cfg.Switcher == nil {
		cfg.Switcher = theme.NewSwitcher(cfg.Logger)
	}
	def := config.DefaultConfig().Display
	if cfg.Display.FrameInterval.Duration <= 0 {
		cfg.Display.FrameInterval = def.FrameInterval
	}
	if cfg.Display.ThemeInterval.Duration <= 0 {
		cfg.Display.ThemeInterval = def.ThemeInterval
	}
	if cfg.Display.FaceCols <= 0 {
		cfg.Display.FaceCols = def.FaceCols
	}

	m := Model{
		clock:      cfg.Clock,
		calendar:   cfg.Calendar,
		switcher:   cfg.Switcher,
		now:        cfg.Now,
		logger:     cfg.Logger,
		changes:    cfg.AssetChanges,
		frameEvery: cfg.Display.FrameInterval.Duration,
		themeEvery: cfg.Display.ThemeInterval.Duration,
		mode:       mode,
		faceCols:   cfg.Display.FaceCols,
		chrome:     &chrome{notice: app.NewMessage("notice", "", "")},
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}

	appliers := []theme.Applier{m.clock, m.calendar, m.chrome}
	for _, a := range appliers {
		m.switcher.AddApplier(a)
	}
	now := m.now.Now()
	if m.switcher.Applied() {
		for _, a := range appliers {
			a.ApplyTheme(m.switcher.Current())
		}
	} else {
		m.switcher.Tick(now)
	}
	m.calendar.Refresh(now)
	m.clock.SetTime(now)
	m.last = now
	return m, nil
}

// Theme returns the applied theme.
func (m Model) Theme() theme.Theme {
	return m.switcher.Current()
}

// Init starts the frame loop, the theme timer and the asset watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		app.FrameCmd(m.frameEvery),
		app.ThemeTickCmd(m.themeEvery),
		app.WatchCmd(m.changes),
	)
}

// Update handles ticks, window resizes and the quit keys. Each tick is
// stamped with the model's clock so every unit reads the same time
// source, then rescheduled.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case app.FrameEvent:
		m.last = m.now.Now()
		m.clock.Update(app.FrameEvent{Time: m.last})
		return m, app.FrameCmd(m.frameEvery)

	case app.ThemeTickEvent:
		now := m.now.Now()
		if t, changed := m.switcher.Tick(now); changed {
			m.logger.Info("theme switched", "theme", t)
		}
		m.calendar.Update(app.ThemeTickEvent{Time: now})
		return m, app.ThemeTickCmd(m.themeEvery)

	case app.AssetsChangedEvent:
		m.logger.Info("hand artwork changed, reloading")
		m.clock.Update(msg)
		return m, app.WatchCmd(m.changes)
	}
	return m, nil
}

// View draws both panels and the status line.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return renderDashboard(m)
}
