package services

import (
	"testing"
	"time"

	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryLastNightReadsYesterdayEntry(t *testing.T) {
	db := testDB(t)
	wellness := NewWellnessService(db)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	weekID := utils.WeekID(now)
	yesterday := utils.WeekdayKey(now.AddDate(0, 0, -1))

	_, err := wellness.SetSleepEntry(1, weekID, yesterday, "22:30", "07:00")
	require.NoError(t, err)

	summary, err := NewDashboardService(db).Summary(1, now)
	require.NoError(t, err)
	assert.Equal(t, 8.5, summary.LastNightHours)
	assert.Equal(t, weekID, summary.WeekID)
	assert.Equal(t, utils.WeekdayKey(now), summary.Weekday)
}

func TestSummaryDefaultsWhenNothingLogged(t *testing.T) {
	db := testDB(t)

	summary, err := NewDashboardService(db).Summary(1, time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.LastNightHours)
	assert.Equal(t, 0, summary.PregnancyWeek)
	assert.Equal(t, 0, summary.Trimester)
	assert.Equal(t, "", summary.BabySize)
	require.NotNil(t, summary.Water)
	assert.Equal(t, 8, summary.Water.Goal)
	assert.Len(t, summary.Chart, 7)
}

func TestSummaryPrefersDocPregnancyDate(t *testing.T) {
	db := testDB(t)
	wellness := NewWellnessService(db)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	weekID := utils.WeekID(now)
	start := now.AddDate(0, 0, -10*7).Format("2006-01-02")
	_, err := wellness.SetPregnancyDates(1, weekID, start, "")
	require.NoError(t, err)

	summary, err := NewDashboardService(db).Summary(1, now)
	require.NoError(t, err)
	assert.Equal(t, 11, summary.PregnancyWeek)
	assert.Equal(t, 1, summary.Trimester)
	assert.Equal(t, "Strawberry", summary.BabySize)
}

func TestSummaryChartReflectsWeeklyLog(t *testing.T) {
	db := testDB(t)
	wellness := NewWellnessService(db)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	weekID := utils.WeekID(now)
	_, err := wellness.LogDay(1, weekID, "monday", "happy", "high")
	require.NoError(t, err)

	summary, err := NewDashboardService(db).Summary(1, now)
	require.NoError(t, err)
	require.Len(t, summary.Chart, 7)
	assert.Equal(t, "monday", summary.Chart[0].Weekday)
	assert.Equal(t, "happy", summary.Chart[0].Mood)
	assert.Equal(t, "high", summary.Chart[0].Energy)
	assert.Equal(t, "", summary.Chart[1].Mood)
}
