package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"gitlab.com/tinyland/lab/clockface/pkg/app"
	"gitlab.com/tinyland/lab/clockface/pkg/calendar"
	"gitlab.com/tinyland/lab/clockface/pkg/components"
	"gitlab.com/tinyland/lab/clockface/pkg/layout"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Outer calendar panel size: the grid, two cells of padding and the border.
const (
	calPanelW = calendar.GridWidth + 4
	calPanelH = 8 + 2
)

// renderDashboard lays out the face and calendar panels above a one-line
// status bar. When either panel is below its minimum size a notice asks
// for a larger window instead.
func renderDashboard(m Model) string {
	pal := m.chrome.palette
	area := layout.Rect{Width: m.width, Height: m.height - 1}
	status := renderStatusBar(m, m.width)

	face, cal, dir := layout.Dashboard(area, m.mode, m.faceCols, calPanelW, calPanelH)
	if !fits(m.clock, face) || !fits(m.calendar, cal) {
		fw, fh := m.clock.MinSize()
		cw, ch := m.calendar.MinSize()
		need := fmt.Sprintf("need %dx%d", max(fw, cw)+4, fh+ch+5)
		if dir == layout.Horizontal {
			need = fmt.Sprintf("need %dx%d", fw+cw+7, max(fh, ch)+3)
		}
		m.chrome.notice.SetText("window too small\n" + need)
		body := m.chrome.notice.View(m.width, max(m.height-1, 0))
		return joinStatus(body, status, m.height)
	}

	facePanel := renderPanel(m.clock, face, pal)
	calPanel := renderPanel(m.calendar, cal, pal)

	var body string
	if dir == layout.Horizontal {
		gap := strings.TrimSuffix(strings.Repeat(" \n", face.Height), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, facePanel, gap, calPanel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, facePanel, calPanel)
	}
	return joinStatus(body, status, m.height)
}

// fits reports whether r leaves room for w's minimum size inside a border.
func fits(w app.Widget, r layout.Rect) bool {
	mw, mh := w.MinSize()
	return r.Width >= mw+2 && r.Height >= mh+2
}

// renderPanel wraps a widget in a rounded box titled with the widget's
// title.
func renderPanel(w app.Widget, r layout.Rect, pal theme.Palette) string {
	inner := r.Inner(1)
	style := components.BoxStyle{
		Border:     components.BorderRounded,
		Title:      w.Title(),
		TitleAlign: components.AlignLeft,
		TitleColor: pal.Title,
		FG:         pal.Border,
	}
	return components.RenderBox(w.View(inner.Width, inner.Height), r.Width, r.Height, style)
}

// renderStatusBar shows the theme, the last frame time, how far the current
// theme period has run, and the key hints, fitted to width.
func renderStatusBar(m Model, width int) string {
	if width <= 0 {
		return ""
	}
	pal := m.chrome.palette
	icon := "☀"
	if m.chrome.theme == theme.Night {
		icon = "☾"
	}

	start, end := theme.Period(m.last)
	ratio := float64(m.last.Sub(start)) / float64(end.Sub(start))

	h := m.help
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Dim))
	h.Styles.ShortSeparator = h.Styles.ShortDesc
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	hints := h.ShortHelpView(m.keys.ShortHelp())
	if m.help.ShowAll {
		hints = strings.ReplaceAll(h.FullHelpView(m.keys.FullHelp()), "\n", "  ")
	}

	left := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Foreground)).
		Render(fmt.Sprintf(" %s %s %s", icon, m.chrome.theme, m.last.Format("15:04:05")))
	until := components.Dim(fmt.Sprintf("%s %s", theme.Decide(end.Hour()), humanize.RelTime(m.last, end, "away", "ago")))

	barW := width - components.VisibleLen(left) - components.VisibleLen(until) - components.VisibleLen(hints) - 6
	var bar string
	if barW >= 8 {
		bar = components.Progress(ratio, min(barW, 24), components.ProgressStyle{
			FilledColor: pal.Accent,
			EmptyColor:  pal.Background,
		})
	}

	line := left + "  " + bar + " " + until + "  " + hints
	if bar == "" {
		line = left + "  " + until + "  " + hints
	}
	return components.FitLine(line, width)
}

// joinStatus stacks body and the status line into exactly height lines.
func joinStatus(body, status string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height-1 {
		lines = lines[:max(height-1, 0)]
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, status), "\n")
}
