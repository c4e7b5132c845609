package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MessageWidget shows a short centered notice, such as a request to
// enlarge the window.
type MessageWidget struct {
	id    string
	title string
	text  string
	style lipgloss.Style
}

// NewMessage creates a MessageWidget.
func NewMessage(id, title, text string) *MessageWidget {
	return &MessageWidget{id: id, title: title, text: text, style: lipgloss.NewStyle().Bold(true)}
}

// SetText replaces the message.
func (w *MessageWidget) SetText(text string) { w.text = text }

// SetColor sets the message foreground from a hex color.
func (w *MessageWidget) SetColor(hex string) {
	w.style = w.style.Foreground(lipgloss.Color(hex))
}

// ID returns the widget identifier.
func (w *MessageWidget) ID() string { return w.id }

// Title returns the panel title.
func (w *MessageWidget) Title() string { return w.title }

// Update ignores every message; the text changes only through SetText.
func (w *MessageWidget) Update(_ tea.Msg) tea.Cmd { return nil }

// View renders the message centered in the area, one line per
// newline-separated part.
func (w *MessageWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	parts := strings.Split(w.text, "\n")
	if len(parts) > height {
		parts = parts[:height]
	}
	for i, p := range parts {
		parts[i] = w.style.Render(p)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}

// MinSize returns the width of the longest line and the line count.
func (w *MessageWidget) MinSize() (int, int) {
	parts := strings.Split(w.text, "\n")
	width := 0
	for _, p := range parts {
		width = max(width, lipgloss.Width(p))
	}
	return width, len(parts)
}
