package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealPlanWeek holds the five meal-slot mappings for one week. Each slot map
// always contains all seven weekday keys; "" means the slot is unset.
type MealPlanWeek struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_mealplan_user_week;not null" json:"user_id"`
	WeekID string `gorm:"uniqueIndex:idx_mealplan_user_week;size:10;not null" json:"week_id"`
	Doc    datatypes.JSONType[MealPlanDoc] `json:"doc"`
}

type MealPlanDoc struct {
	Breakfast map[string]string `json:"breakfast,omitempty"`
	Lunch     map[string]string `json:"lunch,omitempty"`
	SnackAM   map[string]string `json:"snackAM,omitempty"`
	SnackPM   map[string]string `json:"snackPM,omitempty"`
	Dinner    map[string]string `json:"dinner,omitempty"`
}

// MealSlots lists the slot names in display order.
var MealSlots = []string{"breakfast", "lunch", "snackAM", "snackPM", "dinner"}

// Slot returns the weekday map for a slot name, nil for unknown slots.
func (d *MealPlanDoc) Slot(name string) map[string]string {
	switch name {
	case "breakfast":
		return d.Breakfast
	case "lunch":
		return d.Lunch
	case "snackAM":
		return d.SnackAM
	case "snackPM":
		return d.SnackPM
	case "dinner":
		return d.Dinner
	}
	return nil
}

// SetSlot replaces the weekday map for a slot name.
func (d *MealPlanDoc) SetSlot(name string, m map[string]string) {
	switch name {
	case "breakfast":
		d.Breakfast = m
	case "lunch":
		d.Lunch = m
	case "snackAM":
		d.SnackAM = m
	case "snackPM":
		d.SnackPM = m
	case "dinner":
		d.Dinner = m
	}
}
