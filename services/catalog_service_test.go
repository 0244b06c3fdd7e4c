package services

import (
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCustomMealTrimsAndClamps(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	meal, err := svc.AddCustomMeal(1, "  Chia pudding  ", models.NutrientProfile{Iron: 7, Fiber: -1, Calcium: 2})
	require.NoError(t, err)
	require.NotNil(t, meal)
	assert.Equal(t, "Chia pudding", meal.Name)
	assert.Equal(t, 3, meal.Iron)
	assert.Equal(t, 0, meal.Fiber)
	assert.Equal(t, 2, meal.Calcium)
}

func TestAddCustomMealEmptyNameSkips(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	meal, err := svc.AddCustomMeal(1, "   ", models.NutrientProfile{Iron: 2})
	require.NoError(t, err)
	assert.Nil(t, meal)

	var count int64
	require.NoError(t, db.Model(&models.CustomMeal{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAddCustomMealUpsertsByName(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	_, err := svc.AddCustomMeal(1, "Chia pudding", models.NutrientProfile{Iron: 1})
	require.NoError(t, err)
	_, err = svc.AddCustomMeal(1, "Chia pudding", models.NutrientProfile{Iron: 3})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CustomMeal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	profiles, err := svc.MealProfiles(1)
	require.NoError(t, err)
	assert.Equal(t, 3, profiles["Chia pudding"].Iron)
}

func TestCustomMealShadowsBuiltin(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	_, err := svc.AddCustomMeal(1, "Lentil soup", models.NutrientProfile{Iron: 1})
	require.NoError(t, err)

	profiles, err := svc.MealProfiles(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profiles["Lentil soup"].Iron)

	// another user still sees the built-in
	other, err := svc.MealProfiles(2)
	require.NoError(t, err)
	assert.Equal(t, 3, other["Lentil soup"].Iron)
}

func TestMealOptionsSortedWithCustomFlag(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	_, err := svc.AddCustomMeal(1, "aloo paratha", models.NutrientProfile{Carbs: 3})
	require.NoError(t, err)

	opts, err := svc.MealOptions(1)
	require.NoError(t, err)
	require.NotEmpty(t, opts)

	// case-insensitive ascending order
	for i := 1; i < len(opts); i++ {
		assert.LessOrEqual(t, strings.ToLower(opts[i-1].Name), strings.ToLower(opts[i].Name))
	}

	byName := map[string]CatalogOption{}
	for _, o := range opts {
		byName[o.Name] = o
	}
	assert.True(t, byName["aloo paratha"].Custom)
	assert.False(t, byName["Lentil soup"].Custom)
}

func TestDeleteCustomMeal(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	_, err := svc.AddCustomMeal(1, "Chia pudding", models.NutrientProfile{Iron: 2})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCustomMeal(1, "Chia pudding"))

	profiles, err := svc.MealProfiles(1)
	require.NoError(t, err)
	_, ok := profiles["Chia pudding"]
	assert.False(t, ok)
}

func TestSupplementProfilesZeroBeyondMinerals(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	sup, err := svc.AddCustomSupplement(1, "Magnesium", models.NutrientProfile{Iron: 1, Calcium: 2, Folate: 0})
	require.NoError(t, err)
	require.NotNil(t, sup)

	profiles, err := svc.SupplementProfiles(1)
	require.NoError(t, err)
	p := profiles["Magnesium"]
	assert.Equal(t, 1, p.Iron)
	assert.Equal(t, 2, p.Calcium)
	assert.Equal(t, 0, p.Fiber)
}
