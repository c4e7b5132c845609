package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/clockface/pkg/app"
	"gitlab.com/tinyland/lab/clockface/pkg/assets"
	"gitlab.com/tinyland/lab/clockface/pkg/clock"
	"gitlab.com/tinyland/lab/clockface/pkg/config"
	"gitlab.com/tinyland/lab/clockface/pkg/image"
	"gitlab.com/tinyland/lab/clockface/pkg/terminal"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
	"gitlab.com/tinyland/lab/clockface/pkg/widgets"
)

// helper to build a Model on a fake clock with text-only clock rendering.
func newTestModel(t *testing.T, at time.Time) (Model, *clockwork.FakeClock) {
	t.Helper()
	clk := clockwork.NewFakeClockAt(at)
	loader := assets.NewLoader(assets.LoaderConfig{Root: t.TempDir(), PlaceholderSize: 32})
	display := config.DefaultConfig().Display
	r := image.NewRenderer(terminal.Capabilities{Protocol: terminal.ProtocolNone}, display)

	m, err := New(Config{
		Clock:    widgets.NewClockWidget(widgets.ClockConfig{Loader: loader, Renderer: r}),
		Calendar: widgets.NewCalendarWidget(at),
		Now:      clk,
		Display:  display,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, clk
}

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNewAppliesThemeForStartTime(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2026, 10, 17, 23, 30, 0, 0, time.Local))

	if m.Theme() != theme.Night {
		t.Errorf("Theme() = %v, want night", m.Theme())
	}
	if m.chrome.palette.Name != theme.NightPalette().Name {
		t.Errorf("palette = %q, want %q", m.chrome.palette.Name, theme.NightPalette().Name)
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	display := config.DefaultConfig().Display
	display.Layout = "diagonal"
	now := time.Now()
	_, err := New(Config{
		Clock:    widgets.NewClockWidget(widgets.ClockConfig{Loader: assets.NewLoader(assets.LoaderConfig{Root: t.TempDir()})}),
		Calendar: widgets.NewCalendarWidget(now),
		Display:  display,
	})
	if err == nil {
		t.Error("New with layout \"diagonal\" succeeded, want error")
	}
}

func TestThemeTickFlipsTheme(t *testing.T) {
	m, clk := newTestModel(t, time.Date(2026, 10, 17, 5, 59, 59, 0, time.Local))
	if m.Theme() != theme.Night {
		t.Fatalf("start theme = %v, want night", m.Theme())
	}

	clk.Advance(time.Second)
	m, cmd := tuiUpdate(m, app.ThemeTickEvent{})
	if m.Theme() != theme.Day {
		t.Errorf("theme after 06:00 tick = %v, want day", m.Theme())
	}
	if cmd == nil {
		t.Error("ThemeTickEvent returned nil cmd, want rescheduled tick")
	}
}

func TestThemeTickRollsCalendar(t *testing.T) {
	m, clk := newTestModel(t, time.Date(2026, 10, 31, 23, 59, 0, 0, time.Local))

	clk.Advance(2 * time.Minute)
	m, _ = tuiUpdate(m, app.ThemeTickEvent{})
	if got := m.calendar.Layout().Month; got != time.November {
		t.Errorf("calendar month after midnight = %v, want November", got)
	}
}

func TestFrameEventUsesModelClock(t *testing.T) {
	m, clk := newTestModel(t, time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local))

	clk.Advance(15 * time.Minute)
	m, cmd := tuiUpdate(m, app.FrameEvent{Time: time.Unix(0, 0)})

	want := clock.ComputeAngles(clk.Now())
	if got := m.clock.Angles(); got != want {
		t.Errorf("clock angles = %+v, want %+v", got, want)
	}
	if cmd == nil {
		t.Error("FrameEvent returned nil cmd, want next frame")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, time.Now())
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := tuiUpdate(m, k)
		if cmd == nil {
			t.Errorf("%s: cmd = nil, want tea.Quit", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: cmd did not quit", k)
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m, _ := newTestModel(t, time.Now())
	_, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("unbound key returned a cmd")
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, _ := newTestModel(t, time.Now())
	if got := m.View(); got != "" {
		t.Errorf("View() before size = %q, want empty", got)
	}
}

func TestViewSideBySide(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2026, 10, 17, 14, 3, 22, 0, time.Local))
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 24})

	out := ansi.Strip(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("View height = %d, want 24", len(lines))
	}
	for _, want := range []string{"Clock", "2026", "14:03:22", "day"} {
		if !strings.Contains(out, want) {
			t.Errorf("View missing %q", want)
		}
	}
	// Both panels start on the first row.
	if strings.Count(lines[0], "╭") != 2 {
		t.Errorf("first row = %q, want two panel corners", lines[0])
	}
}

func TestViewStacked(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2026, 10, 17, 14, 0, 0, 0, time.Local))
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 50, Height: 30})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if strings.Count(lines[0], "╭") != 1 {
		t.Errorf("first row = %q, want one panel corner", lines[0])
	}
	corners := 0
	for _, l := range lines {
		corners += strings.Count(l, "╭")
	}
	if corners != 2 {
		t.Errorf("panel corners = %d, want 2", corners)
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t, time.Now())
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 20, Height: 6})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "window too small") {
		t.Errorf("View = %q, want size notice", out)
	}
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("View height = %d, want 6", got)
	}
}

func TestStatusBarWidth(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2026, 10, 17, 12, 0, 0, 0, time.Local))
	for _, w := range []int{10, 40, 120} {
		if got := ansi.StringWidth(renderStatusBar(m, w)); got != w {
			t.Errorf("status width at %d = %d", w, got)
		}
	}
}

func TestJoinStatus(t *testing.T) {
	got := joinStatus("a\nb\nc\nd", "status", 3)
	if got != "a\nb\nstatus" {
		t.Errorf("joinStatus = %q", got)
	}
	got = joinStatus("a", "status", 3)
	if got != "a\n\nstatus" {
		t.Errorf("joinStatus = %q", got)
	}
}
