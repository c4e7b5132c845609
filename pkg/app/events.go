// Package app holds the message types, tick commands and widget contract
// shared by the dashboard model and its panels.
package app

import "time"

// FrameEvent drives one animation frame of the clock face.
type FrameEvent struct {
	Time time.Time
}

// ThemeTickEvent asks the dashboard to re-evaluate the theme and the
// calendar date.
type ThemeTickEvent struct {
	Time time.Time
}

// AssetsChangedEvent reports that hand artwork changed on disk.
type AssetsChangedEvent struct{}
