package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// DashboardService assembles the current-week figures the home screen
// re-renders on every change notification: last night's sleep, today's
// nutrient summary, gauges, baby size and the weekly chart dataset.
type DashboardService struct {
	db        *gorm.DB
	wellness  *WellnessService
	nutrition *NutritionService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:        db,
		wellness:  NewWellnessService(db),
		nutrition: NewNutritionService(db),
	}
}

type ChartPoint struct {
	Weekday string `json:"weekday"`
	Mood    string `json:"mood"`
	Energy  string `json:"energy"`
}

type DashboardSummary struct {
	WeekID  string `json:"week_id"`
	Weekday string `json:"weekday"`

	Mood   *models.MoodState   `json:"mood"`
	Energy *models.EnergyState `json:"energy"`
	Water  *models.WaterState  `json:"water"`

	LastNightHours float64 `json:"last_night_hours"`

	PregnancyWeek int    `json:"pregnancy_week"`
	Trimester     int    `json:"trimester"`
	BabySize      string `json:"baby_size"`

	Nutrients map[string]NutrientStatus `json:"nutrients"`
	Chart     []ChartPoint              `json:"chart"`
	DailyTip  string                    `json:"daily_tip"`
}

func (s *DashboardService) Summary(userID uint, now time.Time) (*DashboardSummary, error) {
	weekID := utils.WeekID(now)
	today := utils.WeekdayKey(now)

	_, doc, err := s.wellness.GetWeek(userID, weekID)
	if err != nil {
		return nil, err
	}

	// Last night's sleep always reads yesterday's weekday entry of the
	// current week's schedule.
	yesterday := utils.WeekdayKey(now.AddDate(0, 0, -1))
	entry := doc.Sleep[yesterday]
	lastNight := utils.SleepDuration(entry.Sleep, entry.Wake)

	breakdown, err := s.nutrition.DayBreakdown(userID, weekID, today)
	if err != nil {
		return nil, err
	}

	pregnancyWeek := s.pregnancyWeek(userID, doc, now)

	chart := make([]ChartPoint, 0, len(utils.WeekdayKeys))
	for _, day := range utils.WeekdayKeys {
		log := doc.WeeklyLog[day]
		chart = append(chart, ChartPoint{Weekday: day, Mood: log.Mood, Energy: log.Energy})
	}

	return &DashboardSummary{
		WeekID:         weekID,
		Weekday:        today,
		Mood:           doc.Mood,
		Energy:         doc.Energy,
		Water:          doc.Water,
		LastNightHours: lastNight,
		PregnancyWeek:  pregnancyWeek,
		Trimester:      utils.Trimester(pregnancyWeek),
		BabySize:       utils.BabySize(pregnancyWeek),
		Nutrients:      breakdown.Nutrients,
		Chart:          chart,
		DailyTip:       doc.DailyTip,
	}, nil
}

// pregnancyWeek prefers the date stored on the weekly record, falling back
// to the user profile.
func (s *DashboardService) pregnancyWeek(userID uint, doc models.WellnessDoc, now time.Time) int {
	if doc.PregnancyStartDate != "" {
		if start, err := utils.ParseWeekID(doc.PregnancyStartDate); err == nil {
			return utils.PregnancyWeek(start, now)
		}
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return 0
	}
	return utils.PregnancyWeek(user.PregnancyStart, now)
}
