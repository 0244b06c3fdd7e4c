package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WellnessWeek is one weekly wellness record. Exactly one row exists per user
// per ISO week; the row is created lazily with a full default document and
// only ever merged afterwards, never wholesale-replaced.
type WellnessWeek struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_wellness_user_week;not null" json:"user_id"`
	WeekID string `gorm:"uniqueIndex:idx_wellness_user_week;size:10;not null" json:"week_id"`
	Doc    datatypes.JSONType[WellnessDoc] `json:"doc"`
}

// WellnessDoc is the weekly wellness document. Pointer/map fields distinguish
// "absent in the stored document" from zero values so the merger can fill
// gaps from defaults without clobbering sibling fields.
type WellnessDoc struct {
	Mood   *MoodState   `json:"mood,omitempty"`
	Energy *EnergyState `json:"energy,omitempty"`
	Water  *WaterState  `json:"water,omitempty"`

	// Keyed by weekday ("monday".."sunday").
	Sleep            map[string]SleepEntry    `json:"sleep,omitempty"`
	WeeklyLog        map[string]DayLogEntry   `json:"weeklyLog,omitempty"`
	DailyNutrition   map[string]DayNutrition  `json:"dailyNutrition,omitempty"`
	DailySupplements map[string][]string      `json:"dailySupplements,omitempty"`

	PregnancyStartDate string `json:"pregnancyStartDate,omitempty"`
	PregnancyEndDate   string `json:"pregnancyEndDate,omitempty"`
	DailyTip           string `json:"dailyTip,omitempty"`
}

type MoodState struct {
	Emoji   string `json:"emoji,omitempty"`
	Level   int    `json:"level,omitempty"` // 1..5
	Insight string `json:"insight,omitempty"`
}

type EnergyState struct {
	Level int    `json:"level,omitempty"` // 1..5
	Color string `json:"color,omitempty"` // display color for the gauge
}

type WaterState struct {
	Intake int `json:"intake"` // glasses today; 0 is meaningful
	Goal   int `json:"goal,omitempty"`
}

type SleepEntry struct {
	Sleep string `json:"sleep"` // HH:MM, "" = not logged
	Wake  string `json:"wake"`
}

type DayLogEntry struct {
	Mood   string `json:"mood"`
	Energy string `json:"energy"`
}

// DayNutrition is a cached AI verdict per nutrient ("good"/"okay"/other).
// When present for a day it takes precedence over locally computed totals.
type DayNutrition map[string]string
