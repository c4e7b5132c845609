package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// cellWidth is the terminal width of one grid column. Weekday kanji are
// two cells wide and day numbers are padded to two digits.
const cellWidth = 4

// GridWidth is the width of a rendered month.
const GridWidth = cellWidth * 7

// Styles holds the lipgloss styles for one palette.
type Styles struct {
	Month       lipgloss.Style
	MonthSuffix lipgloss.Style
	Weekday     lipgloss.Style
	Saturday    lipgloss.Style
	Sunday      lipgloss.Style
	Day         lipgloss.Style
	Today       lipgloss.Style
}

// NewStyles derives the calendar styles from a palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Month:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Foreground)),
		MonthSuffix: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
		Weekday:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
		Saturday:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Saturday)),
		Sunday:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Sunday)),
		Day:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
		Today: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(p.TodayText)).
			Background(lipgloss.Color(p.Today)),
	}
}

// Render draws the month header, weekday row and day grid. The output is
// rebuilt from the layout on every call.
func Render(l MonthLayout, st Styles) string {
	var b strings.Builder

	header := st.Month.Render(l.MonthNumber()) + st.MonthSuffix.Render(MonthSuffix)
	b.WriteString(lipgloss.PlaceHorizontal(GridWidth, lipgloss.Center, header))
	b.WriteByte('\n')

	for _, wd := range l.Weekdays {
		style := st.Weekday
		switch {
		case wd.Saturday:
			style = st.Saturday
		case wd.Sunday:
			style = st.Sunday
		}
		b.WriteString(" " + style.Render(wd.Label) + " ")
	}

	for _, week := range l.Weeks() {
		b.WriteByte('\n')
		for _, c := range week {
			b.WriteString(renderCell(c, st))
		}
	}
	return b.String()
}

// renderCell draws one column. Two-digit days fill the whole disc, single
// digits are right-aligned inside it.
func renderCell(c Cell, st Styles) string {
	if c.Blank() {
		return strings.Repeat(" ", cellWidth)
	}

	text := fmt.Sprintf("%2d", c.Day)
	if c.TwoDigit {
		text = fmt.Sprintf("%d", c.Day)
	}

	style := st.Day
	switch {
	case c.Today:
		style = st.Today
	case c.Saturday:
		style = st.Saturday
	case c.Sunday:
		style = st.Sunday
	}
	return " " + style.Render(text) + " "
}
