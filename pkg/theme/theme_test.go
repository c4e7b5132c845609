package theme

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// --- Decide ---

func TestDecideCoversEveryHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := Day
		if hour >= 23 || hour < 6 {
			want = Night
		}
		if got := Decide(hour); got != want {
			t.Errorf("Decide(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestDecideBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want Theme
	}{
		{5, Night},
		{6, Day},
		{22, Day},
		{23, Night},
		{0, Night},
	}
	for _, tt := range tests {
		if got := Decide(tt.hour); got != tt.want {
			t.Errorf("Decide(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestThemeString(t *testing.T) {
	if Day.String() != "day" {
		t.Errorf("Day.String() = %q, want %q", Day.String(), "day")
	}
	if Night.String() != "night" {
		t.Errorf("Night.String() = %q, want %q", Night.String(), "night")
	}
}

// --- Switcher ---

type recordingApplier struct {
	calls []Theme
}

func (r *recordingApplier) ApplyTheme(t Theme) {
	r.calls = append(r.calls, t)
}

func TestSwitcherFirstTickApplies(t *testing.T) {
	rec := &recordingApplier{}
	s := NewSwitcher(nil, rec)

	if s.Applied() {
		t.Fatal("new switcher should not report an applied theme")
	}

	got, changed := s.Tick(time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))
	if !changed {
		t.Error("first Tick should report a change")
	}
	if got != Day || s.Current() != Day {
		t.Errorf("Tick at noon = %v (current %v), want day", got, s.Current())
	}
	if len(rec.calls) != 1 || rec.calls[0] != Day {
		t.Errorf("applier calls = %v, want [day]", rec.calls)
	}
}

func TestSwitcherRepeatTickIsNoOp(t *testing.T) {
	rec := &recordingApplier{}
	s := NewSwitcher(nil, rec)

	now := time.Date(2026, 1, 1, 23, 30, 0, 0, time.Local)
	s.Tick(now)
	_, changed := s.Tick(now.Add(time.Second))
	if changed {
		t.Error("second Tick with the same decision should not report a change")
	}
	if len(rec.calls) != 1 {
		t.Errorf("applier ran %d times, want 1", len(rec.calls))
	}
}

func TestSwitcherFlipsAcrossBoundaries(t *testing.T) {
	rec := &recordingApplier{}
	s := NewSwitcher(nil, rec)
	clk := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 22, 59, 58, 0, time.Local))

	// Tick once per second across 23:00 and then jump to 06:00.
	for i := 0; i < 5; i++ {
		s.Tick(clk.Now())
		clk.Advance(time.Second)
	}
	clk.Advance(7 * time.Hour)
	s.Tick(clk.Now())

	want := []Theme{Day, Night, Day}
	if len(rec.calls) != len(want) {
		t.Fatalf("applier calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, rec.calls[i], want[i])
		}
	}
}

func TestApplierFuncAndAddApplier(t *testing.T) {
	var seen []Theme
	s := NewSwitcher(nil)
	s.AddApplier(ApplierFunc(func(t Theme) { seen = append(seen, t) }))

	s.Tick(time.Date(2026, 1, 1, 3, 0, 0, 0, time.Local))
	if len(seen) != 1 || seen[0] != Night {
		t.Errorf("ApplierFunc saw %v, want [night]", seen)
	}
}

func TestPeriod(t *testing.T) {
	at := func(d, h, min int) time.Time { return time.Date(2026, 3, d, h, min, 0, 0, time.UTC) }
	tests := []struct {
		now        time.Time
		start, end time.Time
	}{
		{at(14, 12, 0), at(14, 6, 0), at(14, 23, 0)},
		{at(14, 6, 0), at(14, 6, 0), at(14, 23, 0)},
		{at(14, 23, 30), at(14, 23, 0), at(15, 6, 0)},
		{at(15, 2, 15), at(14, 23, 0), at(15, 6, 0)},
		{at(1, 0, 0), time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC), at(1, 6, 0)},
	}
	for _, tt := range tests {
		start, end := Period(tt.now)
		if !start.Equal(tt.start) || !end.Equal(tt.end) {
			t.Errorf("Period(%v) = %v..%v, want %v..%v", tt.now, start, end, tt.start, tt.end)
		}
		if Decide(start.Hour()) != Decide(tt.now.Hour()) {
			t.Errorf("Period(%v) starts in a different theme", tt.now)
		}
	}
}

// --- Palettes ---

func TestBuiltinNames(t *testing.T) {
	names := Names()
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "day") || !strings.Contains(joined, "night") {
		t.Errorf("Names() = %v, want day and night", names)
	}
}

func TestForReturnsMatchingPalette(t *testing.T) {
	if p := For(Day); p.Name != "day" {
		t.Errorf("For(Day).Name = %q, want %q", p.Name, "day")
	}
	if p := For(Night); p.Name != "night" {
		t.Errorf("For(Night).Name = %q, want %q", p.Name, "night")
	}
}

func TestGetUnknownFallsBackToDay(t *testing.T) {
	if p := Get("no-such-palette"); p.Name != "day" {
		t.Errorf("Get(unknown).Name = %q, want %q", p.Name, "day")
	}
}

func TestBuiltinPalettesValidate(t *testing.T) {
	for _, p := range []Palette{DayPalette(), NightPalette()} {
		if err := thValidatePalette(p); err != nil {
			t.Errorf("palette %q: %v", p.Name, err)
		}
	}
}

func TestRGBA(t *testing.T) {
	c, ok := RGBA("#ff8000")
	if !ok {
		t.Fatal("RGBA(#ff8000) reported malformed")
	}
	if c.R != 0xff || c.G != 0x80 || c.B != 0x00 || c.A != 0xff {
		t.Errorf("RGBA(#ff8000) = %+v", c)
	}
	if _, ok := RGBA("#zz0000"); ok {
		t.Error("RGBA(#zz0000) should report malformed")
	}
}

// --- TOML loading/saving ---

const thTestPaletteTOML = `
name = "sepia"

[base]
background = "#111111"
foreground = "#eeeeee"
dim = "#666666"
accent = "#ff0000"

[panel]
border = "#333333"
title = "#eeeeee"

[calendar]
saturday = "#888888"
sunday = "#888888"
today = "#eeeeee"
today_text = "#111111"

[dial]
face = "#222222"
rim = "#eeeeee"
ticks = "#999999"
hour = "#eeeeee"
minute = "#dddddd"
second = "#ff0000"
`

func TestLoadFromTOMLValid(t *testing.T) {
	p, err := LoadFromTOML([]byte(thTestPaletteTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML() error: %v", err)
	}
	if p.Name != "sepia" {
		t.Errorf("Name = %q, want %q", p.Name, "sepia")
	}
	if p.TodayText != "#111111" {
		t.Errorf("TodayText = %q, want %q", p.TodayText, "#111111")
	}
	if p.Second != "#ff0000" {
		t.Errorf("Second = %q, want %q", p.Second, "#ff0000")
	}
}

func TestLoadFromTOMLMissingSection(t *testing.T) {
	data := []byte(`
name = "incomplete"

[base]
background = "#111111"
foreground = "#eeeeee"
dim = "#666666"
accent = "#ff0000"
`)
	if _, err := LoadFromTOML(data); err == nil {
		t.Error("LoadFromTOML() should return error for missing fields")
	}
}

func TestLoadFromTOMLInvalidHex(t *testing.T) {
	data := strings.Replace(thTestPaletteTOML, `face = "#222222"`, `face = "grey"`, 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "face") {
		t.Errorf("LoadFromTOML() error = %v, want invalid hex for face", err)
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	orig := NightPalette()
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML() error: %v", err)
	}
	back, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML(SaveToTOML()) error: %v", err)
	}
	if back != orig {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", back, orig)
	}
}
