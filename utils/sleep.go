package utils

import (
	"fmt"
	"math"
)

// SleepDuration returns hours slept between two HH:MM clock times, rounded to
// one decimal. A wake time at or before the sleep time is assumed to be on
// the following day (overnight rollover; equal times count as a full day).
// Empty or malformed input yields 0.
func SleepDuration(sleepAt, wakeAt string) float64 {
	sh, sm, ok := parseClock(sleepAt)
	if !ok {
		return 0
	}
	wh, wm, ok := parseClock(wakeAt)
	if !ok {
		return 0
	}

	minutes := (wh*60 + wm) - (sh*60 + sm)
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return math.Round(float64(minutes)/60*10) / 10
}

func parseClock(s string) (h, m int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
