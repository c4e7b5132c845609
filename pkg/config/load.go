package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "clockface"

// Load reads configuration from the first file found on the search path:
//
//  1. $XDG_CONFIG_HOME/clockface/config.toml
//  2. ~/.config/clockface/config.toml
//
// If no file exists, DefaultConfig with environment overrides is returned.
func Load() (*Config, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, md, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	// Paths set in a config file are relative to the file.
	dir := filepath.Dir(path)
	if md.IsDefined("assets", "dir") {
		cfg.Assets.Dir = resolveRelative(dir, cfg.Assets.Dir)
	}
	cfg.Theme.DayFile = resolveRelative(dir, cfg.Theme.DayFile)
	cfg.Theme.NightFile = resolveRelative(dir, cfg.Theme.NightFile)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromReader decodes TOML over DefaultConfig and applies environment
// overrides. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg, _, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func decode(r io.Reader) (*Config, toml.MetaData, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, md, fmt.Errorf("decode TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, md, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg, md, nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(xdgStateHome(home), appName, appName+".log"),
		},
		Assets: AssetsConfig{
			Dir:   "assets",
			Watch: true,
		},
		Display: DisplayConfig{
			Protocol:      "auto",
			Layout:        "auto",
			FrameInterval: Duration{100 * time.Millisecond},
			ThemeInterval: Duration{time.Second},
			FaceCols:      40,
			FaceRows:      20,
			FacePixels:    320,
			CacheSizeMB:   16,
		},
	}
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLOCKFACE_ASSETS"); v != "" {
		cfg.Assets.Dir = v
	}
	if v := os.Getenv("CLOCKFACE_PROTOCOL"); v != "" {
		cfg.Display.Protocol = v
	}
	if v := os.Getenv("CLOCKFACE_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	xdg := xdgConfigHome(home)
	paths := []string{filepath.Join(xdg, appName, "config.toml")}

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}
	return paths
}

func resolveRelative(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
