package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is one dashboard panel. View renders exactly width x height
// cells of content; the caller draws the border around it.
type Widget interface {
	ID() string
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	MinSize() (width, height int)
}
