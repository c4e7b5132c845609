package theme

// thRegisterBuiltins registers the day and night palettes.
func thRegisterBuiltins() {
	for _, p := range []Palette{
		DayPalette(),
		NightPalette(),
	} {
		Register(p)
	}
}

// DayPalette returns the light palette used from 06:00 to 22:59.
func DayPalette() Palette {
	return Palette{
		Name:       "day",
		Background: "#f4f1ea",
		Foreground: "#2b2b2b",
		Dim:        "#8a8578",
		Accent:     "#c2410c",

		Border: "#b8b2a4",
		Title:  "#2b2b2b",

		Saturday:  "#9ca3af",
		Sunday:    "#9ca3af",
		Today:     "#2b2b2b",
		TodayText: "#ffffff",

		Face:   "#fffdf8",
		Rim:    "#2b2b2b",
		Ticks:  "#57534e",
		Hour:   "#1c1917",
		Minute: "#292524",
		Second: "#c2410c",
	}
}

// NightPalette returns the dark palette used from 23:00 to 05:59.
func NightPalette() Palette {
	return Palette{
		Name:       "night",
		Background: "#0f1115",
		Foreground: "#e6e6e6",
		Dim:        "#5c6370",
		Accent:     "#f5c542",

		Border: "#30363d",
		Title:  "#e6e6e6",

		Saturday:  "#6b7280",
		Sunday:    "#6b7280",
		Today:     "#ffffff",
		TodayText: "#0f1115",

		Face:   "#161b22",
		Rim:    "#e6e6e6",
		Ticks:  "#8b949e",
		Hour:   "#e6e6e6",
		Minute: "#c9d1d9",
		Second: "#f5c542",
	}
}
