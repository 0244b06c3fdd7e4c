package models

import "gorm.io/gorm"

// Journey journal collections. Independent per-user documents with
// server-assigned timestamps; hard-deleted on request.

type TodoItem struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Done   bool   `json:"done"`
}

type WishItem struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Category string `gorm:"size:40" json:"category"`
}

type Reflection struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Title    string `json:"title"`
	Body     string `gorm:"type:text" json:"body"`
	PhotoURL string `json:"photo_url"`
}
