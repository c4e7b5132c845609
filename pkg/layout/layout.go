// Package layout splits the terminal window into the regions the clock
// face and calendar panels are drawn in.
package layout

import (
	"fmt"
	"strings"
)

// Rect represents a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns r shrunk by margin on all sides, never negative.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  max(r.Width-2*margin, 0),
		Height: max(r.Height-2*margin, 0),
	}
}

// Direction controls the axis along which Split divides space.
type Direction int

const (
	Horizontal Direction = iota // left-to-right
	Vertical                    // top-to-bottom
)

// Constraint is satisfied by Length, Min and Fill.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

// Min allocates at least Value cells and shares surplus like Fill{1}.
type Min struct{ Value int }

// Fill distributes remaining space proportional to Weight (0 counts as 1).
type Fill struct{ Weight int }

func (Length) constraint() {}
func (Min) constraint()    {}
func (Fill) constraint()   {}

// Split divides area along dir into one Rect per constraint, leaving
// spacing cells between neighbours. Fixed sizes are allocated first, the
// remainder is shared by weight and the last growable item takes any
// rounding remainder. When fixed sizes exceed the area, trailing items are
// truncated.
func Split(dir Direction, area Rect, spacing int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	available := max(total-max(spacing, 0)*(n-1), 0)

	allocs := make([]int, n)
	weights := make([]int, n)
	fixed, totalWeight, lastGrow := 0, 0, -1
	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			allocs[i] = max(v.Value, 0)
		case Min:
			allocs[i] = max(v.Value, 0)
			weights[i] = 1
		case Fill:
			weights[i] = max(v.Weight, 1)
		}
		fixed += allocs[i]
		totalWeight += weights[i]
		if weights[i] > 0 {
			lastGrow = i
		}
	}

	if surplus := available - fixed; surplus > 0 && totalWeight > 0 {
		given := 0
		for i := range allocs {
			if weights[i] == 0 {
				continue
			}
			share := surplus * weights[i] / totalWeight
			if i == lastGrow {
				share = surplus - given
			}
			allocs[i] += share
			given += share
		}
	}

	rects := make([]Rect, n)
	pos := 0
	for i := range allocs {
		size := min(allocs[i], max(available-pos+i*spacing, 0))
		switch dir {
		case Horizontal:
			rects[i] = Rect{X: area.X + pos, Y: area.Y, Width: size, Height: area.Height}
		case Vertical:
			rects[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: size}
		}
		pos += size + spacing
	}
	return rects
}

// Mode selects how the dashboard arranges its two panels.
type Mode int

const (
	ModeAuto       Mode = iota // side by side when wide enough
	ModeHorizontal             // face left, calendar right
	ModeVertical               // face above calendar
)

// ParseMode maps a configured layout name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "horizontal", "side-by-side":
		return ModeHorizontal, nil
	case "vertical", "stacked":
		return ModeVertical, nil
	default:
		return ModeAuto, fmt.Errorf("layout: unknown mode %q", s)
	}
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHorizontal:
		return "horizontal"
	case ModeVertical:
		return "vertical"
	default:
		return "auto"
	}
}

// Dashboard places the clock face and calendar panels in area. faceW and
// calW are the preferred outer widths; the face panel absorbs any extra
// space. In ModeAuto the panels sit side by side if both fit, otherwise
// they are stacked with the calendar given calH rows.
func Dashboard(area Rect, mode Mode, faceW, calW, calH int) (face, cal Rect, dir Direction) {
	dir = Horizontal
	switch mode {
	case ModeVertical:
		dir = Vertical
	case ModeAuto:
		if area.Width < faceW+calW+1 {
			dir = Vertical
		}
	}

	var rects []Rect
	if dir == Horizontal {
		rects = Split(Horizontal, area, 1, Min{Value: faceW}, Length{Value: calW})
	} else {
		rects = Split(Vertical, area, 0, Fill{Weight: 1}, Length{Value: calH})
	}
	return rects[0], rects[1], dir
}
