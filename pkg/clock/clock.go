// Package clock converts wall-clock instants into the fractional readings
// and hand angles of an analog clock face. Everything here is pure
// arithmetic; applying the angles to artwork lives in pkg/dial.
package clock

import (
	"math"
	"time"
)

// Offset is added to every hand angle. The hand artwork points at
// 3 o'clock, so -90 degrees turns angle 0 into 12 o'clock.
const Offset = -90.0

// Reading is a time of day with each unit carrying the fraction of the
// units below it: Second includes milliseconds, Minute includes the
// fractional second, Hour includes the fractional minute.
type Reading struct {
	Hour   float64 `json:"hour" yaml:"hour"`
	Minute float64 `json:"minute" yaml:"minute"`
	Second float64 `json:"second" yaml:"second"`
}

// Angles holds the clockwise rotation in degrees for each hand, offset
// already applied.
type Angles struct {
	Hour   float64 `json:"hour_deg" yaml:"hour_deg"`
	Minute float64 `json:"minute_deg" yaml:"minute_deg"`
	Second float64 `json:"second_deg" yaml:"second_deg"`
}

// ReadingAt returns the fractional reading of now in now's location.
func ReadingAt(now time.Time) Reading {
	s := float64(now.Second()) + float64(now.Nanosecond())/float64(time.Second)
	m := float64(now.Minute()) + s/60
	h := float64(now.Hour()) + m/60
	return Reading{Hour: h, Minute: m, Second: s}
}

// Angles maps the reading onto the dial: 6 degrees per second and per
// minute, 30 degrees per hour on a 12 hour face.
func (r Reading) Angles() Angles {
	return Angles{
		Hour:   math.Mod(r.Hour, 12)*30 + Offset,
		Minute: r.Minute*6 + Offset,
		Second: r.Second*6 + Offset,
	}
}

// ComputeAngles is ReadingAt(now).Angles().
func ComputeAngles(now time.Time) Angles {
	return ReadingAt(now).Angles()
}
