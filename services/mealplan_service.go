package services

import (
	"errors"
	"log"

	"backend/models"
	"backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService { return &MealPlanService{db: db} }

// DefaultMealPlanDoc builds a plan where all five slots carry all seven
// weekday keys, every one set to the empty string (unset).
func DefaultMealPlanDoc() models.MealPlanDoc {
	var doc models.MealPlanDoc
	for _, slot := range models.MealSlots {
		m := make(map[string]string, len(utils.WeekdayKeys))
		for _, day := range utils.WeekdayKeys {
			m[day] = ""
		}
		doc.SetSlot(slot, m)
	}
	return doc
}

// MergeMealPlanDoc overlays remote slot entries on the full default shape,
// so a remote plan missing a weekday (or a whole slot) still comes back with
// every slot/weekday combination present. Pure function.
func MergeMealPlanDoc(def, remote models.MealPlanDoc) models.MealPlanDoc {
	var out models.MealPlanDoc
	for _, slot := range models.MealSlots {
		out.SetSlot(slot, mergeWeekMap(def.Slot(slot), remote.Slot(slot)))
	}
	return out
}

// GetWeek returns the merged meal plan for (user, week), creating the row
// with the default shape on first read. Init-write failure is logged and the
// default served in-memory, same policy as the wellness record.
func (s *MealPlanService) GetWeek(userID uint, weekID string) (*models.MealPlanWeek, models.MealPlanDoc, error) {
	def := DefaultMealPlanDoc()

	var row models.MealPlanWeek
	err := s.db.Where("user_id = ? AND week_id = ?", userID, weekID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.MealPlanWeek{UserID: userID, WeekID: weekID, Doc: datatypes.NewJSONType(def)}
		if cerr := s.db.Create(&row).Error; cerr != nil {
			log.Printf("meal plan init failed for user %d week %s: %v", userID, weekID, cerr)
		}
		return &row, def, nil
	}
	if err != nil {
		return nil, models.MealPlanDoc{}, err
	}
	return &row, MergeMealPlanDoc(def, row.Doc.Data()), nil
}

// SetMeal writes a meal name into one slot/weekday cell. An empty name
// clears the cell. Unknown slots or weekdays are ignored without a write.
func (s *MealPlanService) SetMeal(userID uint, weekID, slot, weekday, name string) (models.MealPlanDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.MealPlanDoc{}, err
	}
	m := doc.Slot(slot)
	if m == nil || !utils.IsWeekdayKey(weekday) {
		return doc, nil
	}
	m[weekday] = name

	row.Doc = datatypes.NewJSONType(doc)
	if err := s.db.Model(row).Update("doc", row.Doc).Error; err != nil {
		return doc, err
	}
	return doc, nil
}

// MealsForDay lists the day's five slot values in slot order, skipping unset
// cells.
func MealsForDay(doc models.MealPlanDoc, weekday string) []string {
	var meals []string
	for _, slot := range models.MealSlots {
		if name := doc.Slot(slot)[weekday]; name != "" {
			meals = append(meals, name)
		}
	}
	return meals
}
