// clockface is an analog clock and month calendar for the terminal.
//
// The dashboard draws the clock face as an image (Kitty, iTerm2, Sixel or
// halfblocks) beside a Monday-first calendar and switches between a day
// and a night look at 06:00 and 23:00.
//
// Usage:
//
//	clockface [flags]
//	clockface snapshot [--at RFC3339] [--format json|yaml] [--render]
//	clockface stream [--frames N]
//	clockface version
//
// Flags:
//
//	--config string    Path to configuration file (default: ~/.config/clockface/config.toml)
//	--protocol string  Graphics protocol override (auto|kitty|iterm2|sixel|halfblocks|none)
//	-v, --verbose      Enable verbose logging
package main

func main() {
	Execute()
}
