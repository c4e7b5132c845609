package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/clockface/pkg/assets"
	"gitlab.com/tinyland/lab/clockface/pkg/image"
	"gitlab.com/tinyland/lab/clockface/pkg/terminal"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
	"gitlab.com/tinyland/lab/clockface/pkg/tui"
	"gitlab.com/tinyland/lab/clockface/pkg/widgets"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	caps := terminal.DetectCapabilities()
	if !caps.TrueColor {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	renderer := image.NewRenderer(*caps, cfg.Display)
	logger.Info("starting dashboard",
		"terminal", caps.Term, "protocol", renderer.Protocol(),
		"cols", caps.Size.Cols, "rows", caps.Size.Rows, "assets", cfg.Assets.Dir)

	loader := assets.NewLoader(assets.LoaderConfig{
		Root:            cfg.Assets.Dir,
		PlaceholderSize: cfg.Display.FacePixels,
		Logger:          logger,
	})
	changes := startAssetWatch(ctx, loader)

	clk := clockwork.NewRealClock()
	model, err := tui.New(tui.Config{
		Clock: widgets.NewClockWidget(widgets.ClockConfig{
			Loader:    loader,
			Renderer:  renderer,
			MaxPixels: cfg.Display.FacePixels,
			Logger:    logger,
		}),
		Calendar:     widgets.NewCalendarWidget(clk.Now()),
		Switcher:     theme.NewSwitcher(logger),
		Now:          clk,
		Display:      cfg.Display,
		AssetChanges: changes,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	logger.Info("dashboard stopped")
	return nil
}

// startAssetWatch watches the asset directories when enabled and returns a
// channel that receives one value per batch of changes. It returns nil if
// watching is off or unavailable.
func startAssetWatch(ctx context.Context, loader *assets.Loader) <-chan struct{} {
	if !cfg.Assets.Watch {
		return nil
	}
	changes := make(chan struct{}, 1)
	w, err := assets.NewWatcher(loader, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}, logger)
	if err != nil {
		logger.Warn("asset watcher unavailable", "error", err)
		return nil
	}
	if err := w.Start(); err != nil {
		logger.Warn("not watching hand artwork", "root", loader.Root(), "error", err)
		_ = w.Stop()
		return nil
	}
	go func() {
		<-ctx.Done()
		if err := w.Stop(); err != nil {
			logger.Debug("asset watcher stop", "error", err)
		}
	}()
	return changes
}
