package widgets

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/clockface/pkg/app"
	"gitlab.com/tinyland/lab/clockface/pkg/assets"
	"gitlab.com/tinyland/lab/clockface/pkg/clock"
	"gitlab.com/tinyland/lab/clockface/pkg/components"
	"gitlab.com/tinyland/lab/clockface/pkg/dial"
	"gitlab.com/tinyland/lab/clockface/pkg/image"
	"gitlab.com/tinyland/lab/clockface/pkg/terminal"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// ClockConfig configures a ClockWidget.
type ClockConfig struct {
	Loader   *assets.Loader
	Renderer *image.Renderer
	// MaxPixels caps the dial edge length in pixels.
	MaxPixels int
	Logger    *slog.Logger
}

// ClockWidget draws the analog face for the most recent frame time. The
// hand angles are recomputed on every FrameEvent; the hand artwork is
// swapped when the theme changes.
type ClockWidget struct {
	loader    *assets.Loader
	renderer  *image.Renderer
	maxPixels int
	logger    *slog.Logger

	theme    theme.Theme
	palette  theme.Palette
	hands    assets.HandSet
	composer *dial.Composer

	now    time.Time
	angles clock.Angles
	failed bool
}

// NewClockWidget creates a ClockWidget. ApplyTheme must run before the
// first View; the theme switcher does this on its first tick.
func NewClockWidget(cfg ClockConfig) *ClockWidget {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = assets.DefaultPlaceholderSize
	}
	return &ClockWidget{
		loader:    cfg.Loader,
		renderer:  cfg.Renderer,
		maxPixels: cfg.MaxPixels,
		logger:    cfg.Logger,
		palette:   theme.For(theme.Day),
	}
}

func (w *ClockWidget) ID() string    { return ClockID }
func (w *ClockWidget) Title() string { return "Clock" }

// MinSize returns the smallest area a readable face fits in.
func (w *ClockWidget) MinSize() (int, int) {
	return 16, 8
}

// ApplyTheme loads the hand artwork for t and recolors the dial.
func (w *ClockWidget) ApplyTheme(t theme.Theme) {
	w.theme = t
	w.palette = theme.For(t)
	w.hands = w.loader.Load(t)
	if w.composer != nil {
		w.composer.SetPalette(w.palette)
		w.composer.SetHands(w.hands)
	}
	w.logger.Debug("clock theme applied", "theme", t, "placeholders", len(w.hands.Placeholders))
}

// ReloadAssets rereads the artwork for the current theme and drops frames
// rendered with the old artwork.
func (w *ClockWidget) ReloadAssets() {
	w.loader.Invalidate()
	if w.renderer != nil {
		cache := w.renderer.Cache()
		st := cache.Stats()
		cache.Invalidate()
		w.logger.Debug("render cache cleared", "entries", st.Entries, "bytes", st.SizeBytes, "hits", st.Hits, "misses", st.Misses)
	}
	w.hands = w.loader.Load(w.theme)
	if w.composer != nil {
		w.composer.SetHands(w.hands)
	}
}

// SetTime records the frame time and recomputes the hand angles.
func (w *ClockWidget) SetTime(now time.Time) {
	w.now = now
	w.angles = clock.ComputeAngles(now)
}

// Angles returns the angles of the last frame.
func (w *ClockWidget) Angles() clock.Angles {
	return w.angles
}

// Theme returns the theme whose artwork is installed.
func (w *ClockWidget) Theme() theme.Theme {
	return w.theme
}

// Update handles frame and asset events.
func (w *ClockWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.FrameEvent:
		w.SetTime(msg.Time)
	case app.AssetsChangedEvent:
		w.ReloadAssets()
	}
	return nil
}

// View renders the face into width x height cells. Without a graphics
// protocol, or if rendering fails, a text readout is shown instead.
func (w *ClockWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w.renderer == nil || w.renderer.Protocol() == terminal.ProtocolNone || w.failed {
		return w.textFace(width, height)
	}

	pw, ph := w.renderer.PixelSize(width, height)
	px := min(pw, ph, w.maxPixels)
	w.ensureComposer(px)

	frame := w.composer.Compose(w.angles)
	out, err := w.renderer.Render(frame, width, height)
	if err != nil {
		if !errors.Is(err, image.ErrDisabled) {
			w.logger.Error("clock face render failed, falling back to text", "error", err)
		}
		w.failed = true
		return w.textFace(width, height)
	}

	if w.renderer.Protocol() == terminal.ProtocolHalfblocks {
		return components.CenterBlock(out, width, height)
	}
	cw, ch := w.renderer.PixelSize(1, 1)
	return placeGraphic(out, (px+cw-1)/cw, (px+ch-1)/ch, width, height)
}

// ensureComposer (re)creates the composer when the pixel size changes.
func (w *ClockWidget) ensureComposer(px int) {
	if w.composer != nil && w.composer.Size() == max(px, 16) {
		return
	}
	w.composer = dial.NewComposer(px, w.palette)
	w.composer.SetHands(w.hands)
}

// textFace shows the time and hand angles as text.
func (w *ClockWidget) textFace(width, height int) string {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(w.palette.Foreground))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(w.palette.Dim))
	lines := st.Bold(true).Render(w.now.Format("15:04:05")) + "\n" +
		dim.Render(fmt.Sprintf("h %6.1f°  m %6.1f°  s %6.1f°", w.angles.Hour, w.angles.Minute, w.angles.Second))
	return components.CenterBlock(lines, width, height)
}
