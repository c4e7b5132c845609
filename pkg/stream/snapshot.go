package stream

import (
	"time"

	"gitlab.com/tinyland/lab/clockface/pkg/calendar"
	"gitlab.com/tinyland/lab/clockface/pkg/clock"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Snapshot is every output for a single instant.
type Snapshot struct {
	Time     time.Time            `json:"time" yaml:"time"`
	Theme    theme.Theme          `json:"theme" yaml:"theme"`
	Reading  clock.Reading        `json:"reading" yaml:"reading"`
	Angles   clock.Angles         `json:"angles" yaml:"angles"`
	Calendar calendar.MonthLayout `json:"calendar" yaml:"calendar"`
}

// SnapshotAt computes the snapshot for now.
func SnapshotAt(now time.Time) Snapshot {
	r := clock.ReadingAt(now)
	return Snapshot{
		Time:     now,
		Theme:    theme.Decide(now.Hour()),
		Reading:  r,
		Angles:   r.Angles(),
		Calendar: calendar.Build(now),
	}
}
