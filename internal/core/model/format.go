package model

import "fmt"

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Title renders the window title shown while the timer is visible.
func Title(seconds int, mode Mode) string {
	return fmt.Sprintf("%s - %s", FormatClock(seconds), mode.Label())
}
