// Package calendar builds the Monday-first month grid shown next to the
// clock and renders it with lipgloss.
package calendar

import (
	"strings"
	"time"
)

// MonthSuffix is the kanji appended to every month label. Renderers style
// it separately from the month number.
const MonthSuffix = "月"

var monthLabels = [12]string{
	"1月", "2月", "3月", "4月", "5月", "6月",
	"7月", "8月", "9月", "10月", "11月", "12月",
}

var weekdayLabels = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// WeekdayLabel is one column header of the grid.
type WeekdayLabel struct {
	Label    string `json:"label" yaml:"label"`
	Saturday bool   `json:"saturday,omitempty" yaml:"saturday,omitempty"`
	Sunday   bool   `json:"sunday,omitempty" yaml:"sunday,omitempty"`
}

// Cell is one slot of the grid. Day is 0 for blank padding cells.
type Cell struct {
	Day      int  `json:"day,omitempty" yaml:"day,omitempty"`
	Weekend  bool `json:"weekend,omitempty" yaml:"weekend,omitempty"`
	Saturday bool `json:"saturday,omitempty" yaml:"saturday,omitempty"`
	Sunday   bool `json:"sunday,omitempty" yaml:"sunday,omitempty"`
	Today    bool `json:"today,omitempty" yaml:"today,omitempty"`
	TwoDigit bool `json:"two_digit,omitempty" yaml:"two_digit,omitempty"`
}

// Blank reports whether the cell is padding rather than a day.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// MonthLayout is the complete, freshly built description of one month.
// Cells are week-major with Monday in column 0 and are padded with blanks
// to a multiple of seven.
type MonthLayout struct {
	Year       int             `json:"year" yaml:"year"`
	Month      time.Month      `json:"month" yaml:"month"`
	MonthLabel string          `json:"month_label" yaml:"month_label"`
	Weekdays   [7]WeekdayLabel `json:"weekdays" yaml:"weekdays"`
	Cells      []Cell          `json:"cells" yaml:"cells"`
}

// MonthNumber returns the label without its kanji suffix ("10" for "10月").
func (l MonthLayout) MonthNumber() string {
	return strings.TrimSuffix(l.MonthLabel, MonthSuffix)
}

// LeadingBlanks counts the padding cells before day 1.
func (l MonthLayout) LeadingBlanks() int {
	n := 0
	for _, c := range l.Cells {
		if !c.Blank() {
			break
		}
		n++
	}
	return n
}

// DaysInMonth counts the non-blank cells.
func (l MonthLayout) DaysInMonth() int {
	n := 0
	for _, c := range l.Cells {
		if !c.Blank() {
			n++
		}
	}
	return n
}

// Weeks splits the cells into rows of seven.
func (l MonthLayout) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(l.Cells); i += 7 {
		end := i + 7
		if end > len(l.Cells) {
			end = len(l.Cells)
		}
		weeks = append(weeks, l.Cells[i:end])
	}
	return weeks
}

// Build lays out the month containing now, marking now's day as today.
// It is a pure function of now's date in now's location.
func Build(now time.Time) MonthLayout {
	year, month, today := now.Date()
	loc := now.Location()

	layout := MonthLayout{
		Year:       year,
		Month:      month,
		MonthLabel: monthLabels[month-1],
	}
	for i, label := range weekdayLabels {
		layout.Weekdays[i] = WeekdayLabel{
			Label:    label,
			Saturday: i == 5,
			Sunday:   i == 6,
		}
	}

	// Monday-first: a Sunday 1st (raw 0) counts as the 7th column.
	first := int(time.Date(year, month, 1, 12, 0, 0, 0, loc).Weekday())
	if first == 0 {
		first = 7
	}
	blanks := first - 1

	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 12, 0, 0, 0, loc).Day()

	cells := make([]Cell, blanks, blanks+daysInMonth+6)
	for d := 1; d <= daysInMonth; d++ {
		wd := time.Date(year, month, d, 12, 0, 0, 0, loc).Weekday()
		cells = append(cells, Cell{
			Day:      d,
			Weekend:  wd == time.Saturday || wd == time.Sunday,
			Saturday: wd == time.Saturday,
			Sunday:   wd == time.Sunday,
			Today:    d == today,
			TwoDigit: d >= 10,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}
	layout.Cells = cells
	return layout
}

// SameDay reports whether a and b fall on the same calendar date. The
// dashboard rebuilds its layout when this turns false.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
