package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// raceDB is a DB where a create callback can simulate a concurrent writer
// landing a row between a missed read and the lazy-init create. Transactions
// are off so the sneaked-in row survives the failed create.
func raceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.WellnessWeek{}, &models.MealPlanWeek{}))
	return db
}

func TestWellnessInitConflictServesDefaultWithoutClobbering(t *testing.T) {
	db := raceDB(t)

	theirs := DefaultWellnessDoc()
	theirs.Mood = &models.MoodState{Emoji: "😎", Level: 5}

	sneaked := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("concurrent_writer", func(tx *gorm.DB) {
		if sneaked {
			return
		}
		sneaked = true
		row := models.WellnessWeek{UserID: 1, WeekID: "2025-01-06", Doc: datatypes.NewJSONType(theirs)}
		tx.Session(&gorm.Session{NewDB: true}).Create(&row)
	}))

	// our create loses the race; the default is served for this request only
	_, doc, err := NewWellnessService(db).GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, DefaultWellnessDoc(), doc)

	// the winner's row survives untouched
	var row models.WellnessWeek
	require.NoError(t, db.Where("user_id = ? AND week_id = ?", 1, "2025-01-06").First(&row).Error)
	assert.Equal(t, "😎", row.Doc.Data().Mood.Emoji)

	// and the next read merges it
	_, doc, err = NewWellnessService(db).GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "😎", doc.Mood.Emoji)
	assert.Equal(t, 5, doc.Mood.Level)
}

func TestMealPlanInitConflictServesDefaultWithoutClobbering(t *testing.T) {
	db := raceDB(t)

	theirs := DefaultMealPlanDoc()
	theirs.Slot("breakfast")["monday"] = "Oatmeal with berries"

	sneaked := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("concurrent_writer", func(tx *gorm.DB) {
		if sneaked {
			return
		}
		sneaked = true
		row := models.MealPlanWeek{UserID: 1, WeekID: "2025-01-06", Doc: datatypes.NewJSONType(theirs)}
		tx.Session(&gorm.Session{NewDB: true}).Create(&row)
	}))

	_, doc, err := NewMealPlanService(db).GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, DefaultMealPlanDoc(), doc)

	var row models.MealPlanWeek
	require.NoError(t, db.Where("user_id = ? AND week_id = ?", 1, "2025-01-06").First(&row).Error)
	assert.Equal(t, "Oatmeal with berries", row.Doc.Data().Breakfast["monday"])

	_, doc, err = NewMealPlanService(db).GetWeek(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal with berries", doc.Slot("breakfast")["monday"])
}
