package components

import "strings"

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderRounded
	BorderDouble
)

type borderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderDouble:  {"╔", "╗", "╚", "╝", "═", "║"},
}

// BoxStyle controls the appearance of a rendered box.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	TitleColor string // hex; defaults to FG
	FG         string // hex border color
}

// RenderBox draws content inside a width x height box, both counting the
// border. Content lines are fitted to the interior; missing lines are
// blank. Boxes smaller than 2x2 render as "".
func RenderBox(content string, width, height int, style BoxStyle) string {
	if style.Border == BorderNone {
		return fitBlock(content, width, height)
	}
	if width < 2 || height < 2 {
		return ""
	}
	chars := borderSets[style.Border]
	paint := func(s string) string {
		if c := Color(style.FG); c != "" {
			return c + s + Reset()
		}
		return s
	}

	var buf strings.Builder
	bar := width - 2
	buf.WriteString(paint(chars.TopLeft))
	buf.WriteString(titleBar(style, bar, chars.Horizontal, paint))
	buf.WriteString(paint(chars.TopRight))
	buf.WriteByte('\n')

	body := fitBlock(content, bar, height-2)
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			buf.WriteString(paint(chars.Vertical))
			buf.WriteString(line)
			buf.WriteString(paint(chars.Vertical))
			buf.WriteByte('\n')
		}
	}

	buf.WriteString(paint(chars.BottomLeft + strings.Repeat(chars.Horizontal, bar) + chars.BottomRight))
	return buf.String()
}

// fitBlock fits content to exactly width x height cells.
func fitBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = FitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

// titleBar renders the top border run of width cells with the title
// embedded, surrounded by one space on each side.
func titleBar(style BoxStyle, width int, h string, paint func(string) string) string {
	maxTitle := width - 4
	if style.Title == "" || maxTitle <= 0 {
		return paint(strings.Repeat(h, width))
	}
	title := style.Title
	if VisibleLen(title) > maxTitle {
		title = TruncateWithTail(title, maxTitle, "…")
	}
	seg := " " + title + " "
	if c := Color(style.TitleColor); c != "" {
		seg = " " + c + Bold(title) + Reset() + " "
	}
	remaining := width - VisibleLen(title) - 2

	left := 1
	switch style.TitleAlign {
	case AlignCenter:
		left = remaining / 2
	case AlignRight:
		left = remaining - 1
	}
	right := remaining - left
	return paint(strings.Repeat(h, left)) + seg + paint(strings.Repeat(h, right))
}
