package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameCmd returns a Cmd that sends a FrameEvent after d. The model
// returns a fresh FrameCmd from every FrameEvent, so the loop ends when
// the program quits.
func FrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameEvent{Time: t}
	})
}

// ThemeTickCmd returns a Cmd that sends a ThemeTickEvent after d.
func ThemeTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return ThemeTickEvent{Time: t}
	})
}

// WatchCmd waits for one notification on changes and reports it as an
// AssetsChangedEvent. It yields nil once changes is closed; re-issue it
// after each event to keep listening.
func WatchCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return AssetsChangedEvent{}
	}
}
