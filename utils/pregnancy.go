package utils

import "time"

// PregnancyWeek returns the 1-based gestational week for now given the
// pregnancy start date. Returns 0 when the start date is zero or in the
// future, and caps at 42.
func PregnancyWeek(start time.Time, now time.Time) int {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	week := int(now.Sub(start).Hours()/(24*7)) + 1
	if week > 42 {
		week = 42
	}
	return week
}

// babySizes maps gestational week ranges to a familiar fruit/vegetable
// comparison for the dashboard card.
var babySizes = []struct {
	fromWeek int
	label    string
}{
	{4, "Poppy seed"},
	{6, "Sweet pea"},
	{8, "Raspberry"},
	{10, "Strawberry"},
	{12, "Lime"},
	{14, "Lemon"},
	{16, "Avocado"},
	{18, "Bell pepper"},
	{20, "Banana"},
	{23, "Grapefruit"},
	{26, "Cauliflower"},
	{29, "Butternut squash"},
	{32, "Pineapple"},
	{35, "Honeydew melon"},
	{38, "Pumpkin"},
	{40, "Watermelon"},
}

// BabySize returns the size comparison for a gestational week, or "" when the
// week is unknown or earlier than week 4.
func BabySize(week int) string {
	label := ""
	for _, s := range babySizes {
		if week >= s.fromWeek {
			label = s.label
		}
	}
	return label
}

// Trimester returns 1, 2 or 3 for a gestational week, 0 when unknown.
func Trimester(week int) int {
	switch {
	case week <= 0:
		return 0
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}
