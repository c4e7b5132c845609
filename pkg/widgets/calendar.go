package widgets

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clockface/pkg/app"
	"gitlab.com/tinyland/lab/clockface/pkg/calendar"
	"gitlab.com/tinyland/lab/clockface/pkg/components"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// CalendarWidget shows the current month. The layout is rebuilt when the
// local date changes and restyled when the theme changes.
type CalendarWidget struct {
	built  time.Time
	layout calendar.MonthLayout
	styles calendar.Styles
}

// NewCalendarWidget builds the month containing now.
func NewCalendarWidget(now time.Time) *CalendarWidget {
	return &CalendarWidget{
		built:  now,
		layout: calendar.Build(now),
		styles: calendar.NewStyles(theme.For(theme.Day)),
	}
}

func (w *CalendarWidget) ID() string { return CalendarID }

// Title is the displayed year.
func (w *CalendarWidget) Title() string { return strconv.Itoa(w.layout.Year) }

// MinSize fits the grid plus header and weekday rows for a six-week month.
func (w *CalendarWidget) MinSize() (int, int) {
	return calendar.GridWidth, 8
}

// Layout returns the current month layout.
func (w *CalendarWidget) Layout() calendar.MonthLayout {
	return w.layout
}

// ApplyTheme restyles the grid with t's palette.
func (w *CalendarWidget) ApplyTheme(t theme.Theme) {
	w.styles = calendar.NewStyles(theme.For(t))
}

// Refresh rebuilds the layout if now falls on a different day than the
// last build and reports whether it did.
func (w *CalendarWidget) Refresh(now time.Time) bool {
	if calendar.SameDay(now, w.built) {
		return false
	}
	w.built = now
	w.layout = calendar.Build(now)
	return true
}

// Update rebuilds on date rollover, checked at each theme tick.
func (w *CalendarWidget) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(app.ThemeTickEvent); ok {
		w.Refresh(msg.Time)
	}
	return nil
}

// View centers the rendered month in the area.
func (w *CalendarWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := calendar.Render(w.layout, w.styles)
	if width < calendar.GridWidth {
		lines := strings.Split(out, "\n")
		for i := range lines {
			lines[i] = components.Truncate(lines[i], width)
		}
		out = strings.Join(lines, "\n")
	}
	return components.CenterBlock(out, width, height)
}
