package models

import "gorm.io/gorm"

// CalmSession logs one completed relaxation exercise.
type CalmSession struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Exercise string `gorm:"size:60;not null" json:"exercise"`
	Seconds  int    `json:"seconds"`
}
