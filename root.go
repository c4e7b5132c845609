package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/clockface/pkg/config"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

var (
	cfg        *config.Config
	logger     *slog.Logger
	logFile    *os.File
	globalOpts struct {
		configPath string
		protocol   string
		verbose    bool
	}
)

var rootCmd = &cobra.Command{
	Use:   "clockface",
	Short: "Analog clock and month calendar for the terminal",
	Long: `clockface draws an analog clock face next to the current month.

The face is rendered as an image using the best graphics protocol the
terminal supports. Between 23:00 and 06:00 the night palette and night
hand artwork are used.

Hand artwork is read from <assets>/{day,night}/{hour,minute,second}-hand.png.
Missing files are replaced by plain bars.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if globalOpts.configPath != "" {
			cfg, err = config.LoadFromFile(globalOpts.configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if globalOpts.protocol != "" {
			cfg.Display.Protocol = globalOpts.protocol
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// The dashboard owns the terminal, so it logs to a file only.
		var w io.Writer = os.Stderr
		if logsToFile(cmd) {
			if w, err = openLogFile(cfg.General.LogFile); err != nil {
				return err
			}
		}
		setupLogger(w)

		return loadPalettes(cfg.Theme)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logFile != nil {
			return logFile.Close()
		}
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "clockface: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/clockface/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.protocol, "protocol", "",
		"Graphics protocol override (auto, kitty, iterm2, sixel, halfblocks, none)")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
}

// logsToFile reports whether cmd runs the dashboard, which owns the
// terminal. Subcommands log to stderr.
func logsToFile(cmd *cobra.Command) bool {
	return !cmd.HasParent()
}

// setupLogger installs the global slog logger writing to w. --verbose wins
// over general.log_level.
func setupLogger(w io.Writer) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.General.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if globalOpts.verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return f, nil
}

// loadPalettes replaces the built-in day and night palettes with the ones
// named in the config.
func loadPalettes(tc config.ThemeConfig) error {
	for t, path := range map[theme.Theme]string{theme.Day: tc.DayFile, theme.Night: tc.NightFile} {
		if path == "" {
			continue
		}
		p, err := theme.LoadFile(path)
		if err != nil {
			return err
		}
		p.Name = t.String()
		theme.Register(p)
		logger.Debug("loaded palette", "theme", t, "file", path)
	}
	return nil
}
