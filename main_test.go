package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/clockface/pkg/config"
	"gitlab.com/tinyland/lab/clockface/pkg/stream"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

func TestWriteSnapshotFormats(t *testing.T) {
	s := stream.SnapshotAt(time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC))
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"theme": "night"`},
		{"yaml", "theme: night"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := writeSnapshot(&buf, s, tt.format); err != nil {
			t.Fatalf("writeSnapshot(%s): %v", tt.format, err)
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("%s output missing %q:\n%s", tt.format, tt.want, buf.String())
		}
	}
	if err := writeSnapshot(&bytes.Buffer{}, s, "xml"); err == nil {
		t.Error("writeSnapshot(xml) succeeded, want error")
	}
}

func TestLoadPalettesOverridesNight(t *testing.T) {
	logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	orig := theme.NightPalette()
	t.Cleanup(func() { theme.Register(orig) })

	custom := orig
	custom.Name = "midnight"
	custom.Accent = "#123456"
	data, err := theme.SaveToTOML(custom)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "night.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loadPalettes(config.ThemeConfig{NightFile: path}); err != nil {
		t.Fatalf("loadPalettes: %v", err)
	}
	if got := theme.For(theme.Night).Accent; !strings.EqualFold(got, "#123456") {
		t.Errorf("night accent = %q, want #123456", got)
	}
}

func TestLoadPalettesMissingFile(t *testing.T) {
	logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	err := loadPalettes(config.ThemeConfig{DayFile: filepath.Join(t.TempDir(), "nope.toml")})
	if err == nil {
		t.Error("loadPalettes with missing file succeeded, want error")
	}
}

func TestWritePaletteListsNames(t *testing.T) {
	var buf bytes.Buffer
	if err := writePalette(&buf, nil); err != nil {
		t.Fatalf("writePalette: %v", err)
	}
	got := strings.Fields(buf.String())
	if len(got) < 2 || got[0] != "day" || got[1] != "night" {
		t.Errorf("palette names = %v, want day and night first", got)
	}
}

func TestWritePaletteEncodesLoadableTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := writePalette(&buf, []string{"Night"}); err != nil {
		t.Fatalf("writePalette: %v", err)
	}
	p, err := theme.LoadFromTOML(buf.Bytes())
	if err != nil {
		t.Fatalf("output does not load back: %v\n%s", err, buf.String())
	}
	if want := theme.NightPalette().Accent; !strings.EqualFold(p.Accent, want) {
		t.Errorf("accent = %q, want %q", p.Accent, want)
	}
}

func TestWritePaletteUnknownName(t *testing.T) {
	err := writePalette(&bytes.Buffer{}, []string{"dusk"})
	if err == nil || !strings.Contains(err.Error(), "dusk") {
		t.Errorf("writePalette(dusk) error = %v, want unknown palette", err)
	}
}

func TestLogsToFileOnlyForDashboard(t *testing.T) {
	if !logsToFile(rootCmd) {
		t.Error("dashboard command should log to a file")
	}
	for _, c := range []*cobra.Command{streamCmd, paletteCmd} {
		if logsToFile(c) {
			t.Errorf("%s should log to stderr", c.Name())
		}
	}
}
