package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLPalette is the TOML-serializable representation of a Palette.
type thTOMLPalette struct {
	Name     string         `toml:"name"`
	Base     thTOMLBase     `toml:"base"`
	Panel    thTOMLPanel    `toml:"panel"`
	Calendar thTOMLCalendar `toml:"calendar"`
	Dial     thTOMLDial     `toml:"dial"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLPanel struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
}

type thTOMLCalendar struct {
	Saturday  string `toml:"saturday"`
	Sunday    string `toml:"sunday"`
	Today     string `toml:"today"`
	TodayText string `toml:"today_text"`
}

type thTOMLDial struct {
	Face   string `toml:"face"`
	Rim    string `toml:"rim"`
	Ticks  string `toml:"ticks"`
	Hour   string `toml:"hour"`
	Minute string `toml:"minute"`
	Second string `toml:"second"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFile reads and parses a TOML palette file.
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// LoadFromTOML parses a TOML palette definition from raw bytes.
func LoadFromTOML(data []byte) (Palette, error) {
	var tp thTOMLPalette
	if err := toml.Unmarshal(data, &tp); err != nil {
		return Palette{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	p := Palette{
		Name:       tp.Name,
		Background: tp.Base.Background,
		Foreground: tp.Base.Foreground,
		Dim:        tp.Base.Dim,
		Accent:     tp.Base.Accent,

		Border: tp.Panel.Border,
		Title:  tp.Panel.Title,

		Saturday:  tp.Calendar.Saturday,
		Sunday:    tp.Calendar.Sunday,
		Today:     tp.Calendar.Today,
		TodayText: tp.Calendar.TodayText,

		Face:   tp.Dial.Face,
		Rim:    tp.Dial.Rim,
		Ticks:  tp.Dial.Ticks,
		Hour:   tp.Dial.Hour,
		Minute: tp.Dial.Minute,
		Second: tp.Dial.Second,
	}

	if err := thValidatePalette(p); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// SaveToTOML serializes a palette to TOML bytes.
func SaveToTOML(p Palette) ([]byte, error) {
	tp := thTOMLPalette{
		Name: p.Name,
		Base: thTOMLBase{
			Background: p.Background,
			Foreground: p.Foreground,
			Dim:        p.Dim,
			Accent:     p.Accent,
		},
		Panel: thTOMLPanel{
			Border: p.Border,
			Title:  p.Title,
		},
		Calendar: thTOMLCalendar{
			Saturday:  p.Saturday,
			Sunday:    p.Sunday,
			Today:     p.Today,
			TodayText: p.TodayText,
		},
		Dial: thTOMLDial{
			Face:   p.Face,
			Rim:    p.Rim,
			Ticks:  p.Ticks,
			Hour:   p.Hour,
			Minute: p.Minute,
			Second: p.Second,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tp); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color field of p by its TOML key.
func thColorFields(p Palette) map[string]string {
	return map[string]string{
		"background": p.Background,
		"foreground": p.Foreground,
		"dim":        p.Dim,
		"accent":     p.Accent,
		"border":     p.Border,
		"title":      p.Title,
		"saturday":   p.Saturday,
		"sunday":     p.Sunday,
		"today":      p.Today,
		"today_text": p.TodayText,
		"face":       p.Face,
		"rim":        p.Rim,
		"ticks":      p.Ticks,
		"hour":       p.Hour,
		"minute":     p.Minute,
		"second":     p.Second,
	}
}

// thValidatePalette checks that the name is set and every color is a
// valid hex triple.
func thValidatePalette(p Palette) error {
	if p.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for field, value := range thColorFields(p) {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
