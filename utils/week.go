package utils

import "time"

// Weekday keys in document order. Weeks start on Monday; Sunday closes the week.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekID returns the Monday of t's week (local midnight) as YYYY-MM-DD.
// This is the primary key for weekly wellness records and meal plans, so it
// must stay anchored to local-time day boundaries.
func WeekID(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}

// WeekStart normalizes t to the Monday of its week at local midnight.
// Sunday counts as the last day of the week (offset -6), not the first.
func WeekStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	day := time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// ParseWeekID parses a YYYY-MM-DD week identifier in local time.
func ParseWeekID(id string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", id, time.Local)
}

// WeekdayKey returns the lowercase weekday key ("monday".."sunday") for t.
func WeekdayKey(t time.Time) string {
	return WeekdayKeys[(int(t.In(time.Local).Weekday())+6)%7]
}

// IsWeekdayKey reports whether s is one of the seven weekday keys.
func IsWeekdayKey(s string) bool {
	for _, k := range WeekdayKeys {
		if k == s {
			return true
		}
	}
	return false
}
