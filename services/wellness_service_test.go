package services

import (
	"testing"

	"backend/models"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWellnessDocShape(t *testing.T) {
	doc := DefaultWellnessDoc()

	require.NotNil(t, doc.Mood)
	require.NotNil(t, doc.Energy)
	require.NotNil(t, doc.Water)
	assert.Equal(t, 8, doc.Water.Goal)
	assert.Equal(t, 0, doc.Water.Intake)

	for _, day := range utils.WeekdayKeys {
		_, ok := doc.Sleep[day]
		assert.True(t, ok, "sleep missing %s", day)
		_, ok = doc.WeeklyLog[day]
		assert.True(t, ok, "weeklyLog missing %s", day)
		sups, ok := doc.DailySupplements[day]
		assert.True(t, ok, "dailySupplements missing %s", day)
		assert.Empty(t, sups)
	}
	assert.Empty(t, doc.DailyNutrition)
}

func TestMergeWellnessDocFillsGapsOneLevelDeep(t *testing.T) {
	def := DefaultWellnessDoc()
	remote := models.WellnessDoc{
		Mood:  &models.MoodState{Emoji: "😴"},
		Water: &models.WaterState{Intake: 0},
		Sleep: map[string]models.SleepEntry{
			"monday": {Sleep: "22:00", Wake: "06:00"},
		},
		DailyTip: "rest up",
	}

	merged := MergeWellnessDoc(def, remote)

	// partial mood keeps the default level
	assert.Equal(t, "😴", merged.Mood.Emoji)
	assert.Equal(t, 3, merged.Mood.Level)

	// a present water object makes intake 0 a real value; goal falls back
	assert.Equal(t, 0, merged.Water.Intake)
	assert.Equal(t, 8, merged.Water.Goal)

	// monday comes from remote, the other days from the default
	assert.Equal(t, "22:00", merged.Sleep["monday"].Sleep)
	assert.Equal(t, models.SleepEntry{}, merged.Sleep["tuesday"])
	assert.Len(t, merged.Sleep, 7)

	assert.Equal(t, "rest up", merged.DailyTip)
}

func TestMergeWellnessDocDoesNotMutateInputs(t *testing.T) {
	def := DefaultWellnessDoc()
	remote := models.WellnessDoc{
		Sleep: map[string]models.SleepEntry{"friday": {Sleep: "23:00", Wake: "07:00"}},
	}

	_ = MergeWellnessDoc(def, remote)

	assert.Equal(t, models.SleepEntry{}, def.Sleep["friday"])
	assert.Len(t, remote.Sleep, 1)
}

func TestGetWeekCreatesRowOnFirstRead(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	_, doc, err := svc.GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, 8, doc.Water.Goal)

	var count int64
	require.NoError(t, db.Model(&models.WellnessWeek{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// second read reuses the row
	_, _, err = svc.GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.WellnessWeek{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateMoodPersists(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.UpdateMood(1, "2025-01-06", models.MoodState{Emoji: "😊", Level: 4})
	require.NoError(t, err)
	assert.Equal(t, "😊", doc.Mood.Emoji)

	_, reread, err := svc.GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "😊", reread.Mood.Emoji)
	assert.Equal(t, 4, reread.Mood.Level)
}

func TestUpdateMoodEmptyInputSkipsWrite(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.UpdateMood(1, "2025-01-06", models.MoodState{})
	require.NoError(t, err)
	assert.Equal(t, "🙂", doc.Mood.Emoji)

	var row models.WellnessWeek
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "🙂", row.Doc.Data().Mood.Emoji)
}

func TestSetWaterClampsNegativeIntake(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.SetWater(1, "2025-01-06", -2, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Water.Intake)
	assert.Equal(t, 10, doc.Water.Goal)
}

func TestSetSleepEntryIgnoresUnknownWeekday(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.SetSleepEntry(1, "2025-01-06", "someday", "22:00", "06:00")
	require.NoError(t, err)
	for _, day := range utils.WeekdayKeys {
		assert.Equal(t, models.SleepEntry{}, doc.Sleep[day])
	}
}

func TestToggleSupplement(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, added, err := svc.ToggleSupplement(1, "2025-01-06", "monday", "Prenatal vitamin")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Prenatal vitamin"}, doc.DailySupplements["monday"])
	assert.Empty(t, doc.DailySupplements["tuesday"])

	doc, added, err = svc.ToggleSupplement(1, "2025-01-06", "monday", "Iron supplement")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Prenatal vitamin", "Iron supplement"}, doc.DailySupplements["monday"])

	// toggling again removes
	doc, added, err = svc.ToggleSupplement(1, "2025-01-06", "monday", "Prenatal vitamin")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"Iron supplement"}, doc.DailySupplements["monday"])
}

func TestSetDayNutritionPersistsVerdicts(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	verdicts := models.DayNutrition{"iron": "good", "calcium": "okay"}
	_, err := svc.SetDayNutrition(1, "2025-01-06", "tuesday", verdicts)
	require.NoError(t, err)

	_, doc, err := svc.GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, verdicts, doc.DailyNutrition["tuesday"])
	assert.Empty(t, doc.DailyNutrition["monday"])
}

func TestSetPregnancyDates(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.SetPregnancyDates(1, "2025-01-06", "2024-11-04", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-04", doc.PregnancyStartDate)
	assert.Equal(t, "", doc.PregnancyEndDate)

	// end date alone keeps the start
	doc, err = svc.SetPregnancyDates(1, "2025-01-06", "", "2025-08-11")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-04", doc.PregnancyStartDate)
	assert.Equal(t, "2025-08-11", doc.PregnancyEndDate)
}

func TestSetDailyTip(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	doc, err := svc.SetDailyTip(1, "2025-01-06", "stay hydrated")
	require.NoError(t, err)
	assert.Equal(t, "stay hydrated", doc.DailyTip)

	// empty tip keeps the stored one
	doc, err = svc.SetDailyTip(1, "2025-01-06", "")
	require.NoError(t, err)
	assert.Equal(t, "stay hydrated", doc.DailyTip)
}

func TestWeeksAreIsolatedPerUser(t *testing.T) {
	db := testDB(t)
	svc := NewWellnessService(db)

	_, err := svc.UpdateMood(1, "2025-01-06", models.MoodState{Emoji: "😊"})
	require.NoError(t, err)

	_, doc, err := svc.GetWeek(2, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "🙂", doc.Mood.Emoji)
}
