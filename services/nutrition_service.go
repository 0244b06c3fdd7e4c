package services

import (
	"math"

	"backend/models"

	"gorm.io/gorm"
)

// Daily goal thresholds on the 0..3 per-item score scale.
var NutrientGoals = map[string]int{
	"iron":    8,
	"calcium": 10,
	"folate":  10,
	"fiber":   8,
}

// TrackedNutrients lists the aggregated nutrients in display order.
var TrackedNutrients = []string{"iron", "calcium", "folate", "fiber"}

const (
	TierGood = "Good"
	TierOkay = "Okay"
	TierLow  = "Low"
)

// Fixed percentages used when a cached AI verdict overrides computation.
const (
	verdictGoodPercent = 90
	verdictOkayPercent = 60
	verdictLowPercent  = 25
)

type NutrientStatus struct {
	Total   int    `json:"total"`
	Goal    int    `json:"goal"`
	Percent int    `json:"percent"`
	Tier    string `json:"tier"`
	Cached  bool   `json:"cached"` // true when an AI verdict was used verbatim
}

// AggregateDay computes the day's nutrient status from the meal plan and
// supplement log. When an AI-supplied verdict map exists for the day it is
// used verbatim ("good"→90, "okay"→60, anything else→25) and the computed
// totals are never consulted — the two paths deliberately coexist.
func AggregateDay(
	weekday string,
	plan models.MealPlanDoc,
	mealProfiles map[string]models.NutrientProfile,
	supplements []string,
	supplementProfiles map[string]models.NutrientProfile,
	cached models.DayNutrition,
) map[string]NutrientStatus {
	out := make(map[string]NutrientStatus, len(TrackedNutrients))

	if len(cached) > 0 {
		for _, nutrient := range TrackedNutrients {
			percent, tier := verdictStatus(cached[nutrient])
			out[nutrient] = NutrientStatus{
				Goal:    NutrientGoals[nutrient],
				Percent: percent,
				Tier:    tier,
				Cached:  true,
			}
		}
		return out
	}

	totals := map[string]int{}
	for _, name := range MealsForDay(plan, weekday) {
		if p, ok := mealProfiles[name]; ok {
			addProfile(totals, p)
		}
	}
	for _, name := range supplements {
		if p, ok := supplementProfiles[name]; ok {
			addProfile(totals, p)
		}
	}

	for _, nutrient := range TrackedNutrients {
		goal := NutrientGoals[nutrient]
		total := totals[nutrient]
		percent := int(math.Round(100 * float64(total) / float64(goal)))
		if percent > 100 {
			percent = 100
		}
		out[nutrient] = NutrientStatus{
			Total:   total,
			Goal:    goal,
			Percent: percent,
			Tier:    tierFor(percent),
		}
	}
	return out
}

func addProfile(totals map[string]int, p models.NutrientProfile) {
	totals["iron"] += p.Iron
	totals["calcium"] += p.Calcium
	totals["folate"] += p.Folate
	totals["fiber"] += p.Fiber
}

func tierFor(percent int) string {
	switch {
	case percent >= 80:
		return TierGood
	case percent >= 40:
		return TierOkay
	default:
		return TierLow
	}
}

func verdictStatus(verdict string) (int, string) {
	switch verdict {
	case "good":
		return verdictGoodPercent, TierGood
	case "okay":
		return verdictOkayPercent, TierOkay
	default:
		return verdictLowPercent, TierLow
	}
}

// NutritionService loads everything AggregateDay needs for one user day.
type NutritionService struct {
	db       *gorm.DB
	wellness *WellnessService
	plans    *MealPlanService
	catalog  *CatalogService
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{
		db:       db,
		wellness: NewWellnessService(db),
		plans:    NewMealPlanService(db),
		catalog:  NewCatalogService(db),
	}
}

type DayBreakdown struct {
	WeekID      string                    `json:"week_id"`
	Weekday     string                    `json:"weekday"`
	Meals       []string                  `json:"meals"`
	Supplements []string                  `json:"supplements"`
	Nutrients   map[string]NutrientStatus `json:"nutrients"`
}

func (s *NutritionService) DayBreakdown(userID uint, weekID, weekday string) (*DayBreakdown, error) {
	_, wellnessDoc, err := s.wellness.GetWeek(userID, weekID)
	if err != nil {
		return nil, err
	}
	_, planDoc, err := s.plans.GetWeek(userID, weekID)
	if err != nil {
		return nil, err
	}
	mealProfiles, err := s.catalog.MealProfiles(userID)
	if err != nil {
		return nil, err
	}
	supplementProfiles, err := s.catalog.SupplementProfiles(userID)
	if err != nil {
		return nil, err
	}

	supplements := wellnessDoc.DailySupplements[weekday]
	return &DayBreakdown{
		WeekID:      weekID,
		Weekday:     weekday,
		Meals:       MealsForDay(planDoc, weekday),
		Supplements: supplements,
		Nutrients: AggregateDay(
			weekday, planDoc, mealProfiles,
			supplements, supplementProfiles,
			wellnessDoc.DailyNutrition[weekday],
		),
	}, nil
}
