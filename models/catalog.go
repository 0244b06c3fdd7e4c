package models

import "gorm.io/gorm"

// NutrientProfile scores one item 0..3 per tracked nutrient.
type NutrientProfile struct {
	Iron    int `json:"iron"`
	Calcium int `json:"calcium"`
	Folate  int `json:"folate"`
	Fiber   int `json:"fiber"`
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
}

// CustomMeal is a user-added meal profile. The meal name is the natural key;
// a custom entry shadows a built-in one with the same name.
type CustomMeal struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex:idx_custom_meal;not null" json:"user_id"`
	Name    string `gorm:"uniqueIndex:idx_custom_meal;not null" json:"name"`
	Iron    int    `json:"iron"`
	Calcium int    `json:"calcium"`
	Folate  int    `json:"folate"`
	Fiber   int    `json:"fiber"`
	Protein int    `json:"protein"`
	Carbs   int    `json:"carbs"`
}

func (m *CustomMeal) Profile() NutrientProfile {
	return NutrientProfile{
		Iron: m.Iron, Calcium: m.Calcium, Folate: m.Folate,
		Fiber: m.Fiber, Protein: m.Protein, Carbs: m.Carbs,
	}
}

// CustomSupplement is a user-added supplement profile. Supplements carry no
// fiber; the aggregator treats it as 0.
type CustomSupplement struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex:idx_custom_supplement;not null" json:"user_id"`
	Name    string `gorm:"uniqueIndex:idx_custom_supplement;not null" json:"name"`
	Iron    int    `json:"iron"`
	Calcium int    `json:"calcium"`
	Folate  int    `json:"folate"`
}

func (s *CustomSupplement) Profile() NutrientProfile {
	return NutrientProfile{Iron: s.Iron, Calcium: s.Calcium, Folate: s.Folate}
}
