// Package config provides TOML-based configuration for clockface.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/clockface/pkg/layout"
	"gitlab.com/tinyland/lab/clockface/pkg/terminal"
)

// Config is the root configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Assets  AssetsConfig  `toml:"assets"`
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	// LogFile receives logs while the TUI owns the terminal.
	LogFile string `toml:"log_file"`
}

// AssetsConfig locates the hand artwork.
type AssetsConfig struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// DisplayConfig controls rendering of the dashboard.
type DisplayConfig struct {
	Protocol      string   `toml:"protocol"`
	Layout        string   `toml:"layout"`
	FrameInterval Duration `toml:"frame_interval"`
	ThemeInterval Duration `toml:"theme_interval"`
	FaceCols      int      `toml:"face_cols"`
	FaceRows      int      `toml:"face_rows"`
	FacePixels    int      `toml:"face_pixels"`
	CacheSizeMB   int      `toml:"cache_size_mb"`
}

// ThemeConfig points at optional palette files overriding the built-in
// day and night palettes.
type ThemeConfig struct {
	DayFile   string `toml:"day_file"`
	NightFile string `toml:"night_file"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if !logLevels[strings.ToLower(c.General.LogLevel)] {
		errs = append(errs, fmt.Errorf("general.log_level %q is not one of debug, info, warn, error", c.General.LogLevel))
	}
	if c.Assets.Dir == "" {
		errs = append(errs, errors.New("assets.dir must not be empty"))
	}
	if p := c.Display.Protocol; p != "" && !strings.EqualFold(p, "auto") {
		if _, ok := terminal.ParseProtocol(p); !ok {
			errs = append(errs, fmt.Errorf("display.protocol %q is not recognized", p))
		}
	}
	if _, err := layout.ParseMode(c.Display.Layout); err != nil {
		errs = append(errs, fmt.Errorf("display.layout: %w", err))
	}
	if c.Display.FrameInterval.Duration < 10*time.Millisecond {
		errs = append(errs, fmt.Errorf("display.frame_interval %s is below 10ms", c.Display.FrameInterval))
	}
	if c.Display.ThemeInterval.Duration < c.Display.FrameInterval.Duration {
		errs = append(errs, fmt.Errorf("display.theme_interval %s is shorter than frame_interval", c.Display.ThemeInterval))
	}
	if c.Display.FaceCols < 8 || c.Display.FaceRows < 4 {
		errs = append(errs, fmt.Errorf("display face %dx%d is smaller than 8x4 cells", c.Display.FaceCols, c.Display.FaceRows))
	}
	if c.Display.FacePixels < 32 {
		errs = append(errs, fmt.Errorf("display.face_pixels %d is below 32", c.Display.FacePixels))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
