package services

import (
	"sort"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// Built-in meal catalog. Scores are 0..3 per nutrient; user-added custom
// meals shadow these by name.
var builtinMeals = map[string]models.NutrientProfile{
	"Oatmeal with berries":        {Iron: 1, Calcium: 1, Folate: 1, Fiber: 3, Protein: 1, Carbs: 2},
	"Greek yogurt parfait":        {Iron: 0, Calcium: 3, Folate: 0, Fiber: 1, Protein: 2, Carbs: 1},
	"Spinach omelette":            {Iron: 2, Calcium: 1, Folate: 3, Fiber: 1, Protein: 2, Carbs: 0},
	"Avocado toast":               {Iron: 1, Calcium: 0, Folate: 2, Fiber: 2, Protein: 1, Carbs: 2},
	"Lentil soup":                 {Iron: 3, Calcium: 1, Folate: 3, Fiber: 3, Protein: 2, Carbs: 2},
	"Grilled chicken salad":       {Iron: 1, Calcium: 1, Folate: 2, Fiber: 2, Protein: 3, Carbs: 0},
	"Salmon with quinoa":          {Iron: 2, Calcium: 1, Folate: 2, Fiber: 2, Protein: 3, Carbs: 2},
	"Brown rice with beans":       {Iron: 2, Calcium: 1, Folate: 2, Fiber: 3, Protein: 2, Carbs: 3},
	"Tofu vegetable stir-fry":     {Iron: 2, Calcium: 2, Folate: 2, Fiber: 2, Protein: 2, Carbs: 1},
	"Beef and broccoli":           {Iron: 3, Calcium: 1, Folate: 1, Fiber: 1, Protein: 3, Carbs: 1},
	"Hummus with carrot sticks":   {Iron: 1, Calcium: 0, Folate: 1, Fiber: 2, Protein: 1, Carbs: 1},
	"Apple with peanut butter":    {Iron: 0, Calcium: 0, Folate: 0, Fiber: 2, Protein: 1, Carbs: 2},
	"Banana smoothie":             {Iron: 0, Calcium: 2, Folate: 1, Fiber: 1, Protein: 1, Carbs: 2},
	"Cheese and wholegrain crackers": {Iron: 0, Calcium: 2, Folate: 0, Fiber: 1, Protein: 1, Carbs: 2},
}

// Built-in supplement catalog. Supplements carry iron/calcium/folate only.
var builtinSupplements = map[string]models.NutrientProfile{
	"Prenatal vitamin":   {Iron: 2, Calcium: 1, Folate: 3},
	"Iron supplement":    {Iron: 3},
	"Calcium supplement": {Calcium: 3},
	"Folic acid":         {Folate: 3},
	"Vitamin D":          {Calcium: 1},
	"Omega-3 / DHA":      {},
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

type CatalogOption struct {
	Name    string                 `json:"name"`
	Profile models.NutrientProfile `json:"profile"`
	Custom  bool                   `json:"custom"`
}

// MealProfiles returns the merged meal lookup: built-ins plus the user's
// custom meals, with custom entries shadowing built-ins by name.
func (s *CatalogService) MealProfiles(userID uint) (map[string]models.NutrientProfile, error) {
	out := make(map[string]models.NutrientProfile, len(builtinMeals))
	for name, p := range builtinMeals {
		out[name] = p
	}
	var customs []models.CustomMeal
	if err := s.db.Where("user_id = ?", userID).Find(&customs).Error; err != nil {
		return nil, err
	}
	for i := range customs {
		out[customs[i].Name] = customs[i].Profile()
	}
	return out, nil
}

func (s *CatalogService) SupplementProfiles(userID uint) (map[string]models.NutrientProfile, error) {
	out := make(map[string]models.NutrientProfile, len(builtinSupplements))
	for name, p := range builtinSupplements {
		out[name] = p
	}
	var customs []models.CustomSupplement
	if err := s.db.Where("user_id = ?", userID).Find(&customs).Error; err != nil {
		return nil, err
	}
	for i := range customs {
		out[customs[i].Name] = customs[i].Profile()
	}
	return out, nil
}

// MealOptions lists the merged catalog sorted for display, custom flag set
// on entries the user added (including shadowed built-ins).
func (s *CatalogService) MealOptions(userID uint) ([]CatalogOption, error) {
	var customs []models.CustomMeal
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&customs).Error; err != nil {
		return nil, err
	}
	customNames := make(map[string]bool, len(customs))
	for i := range customs {
		customNames[customs[i].Name] = true
	}

	profiles, err := s.MealProfiles(userID)
	if err != nil {
		return nil, err
	}
	return sortOptions(profiles, customNames), nil
}

func (s *CatalogService) SupplementOptions(userID uint) ([]CatalogOption, error) {
	var customs []models.CustomSupplement
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&customs).Error; err != nil {
		return nil, err
	}
	customNames := make(map[string]bool, len(customs))
	for i := range customs {
		customNames[customs[i].Name] = true
	}

	profiles, err := s.SupplementProfiles(userID)
	if err != nil {
		return nil, err
	}
	return sortOptions(profiles, customNames), nil
}

func sortOptions(profiles map[string]models.NutrientProfile, customNames map[string]bool) []CatalogOption {
	opts := make([]CatalogOption, 0, len(profiles))
	for name, p := range profiles {
		opts = append(opts, CatalogOption{Name: name, Profile: p, Custom: customNames[name]})
	}
	sort.Slice(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Name) < strings.ToLower(opts[j].Name)
	})
	return opts
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}

// AddCustomMeal upserts a custom meal profile by (user, name). An empty name
// skips the write.
func (s *CatalogService) AddCustomMeal(userID uint, name string, p models.NutrientProfile) (*models.CustomMeal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	meal := models.CustomMeal{
		UserID: userID, Name: name,
		Iron: clampScore(p.Iron), Calcium: clampScore(p.Calcium), Folate: clampScore(p.Folate),
		Fiber: clampScore(p.Fiber), Protein: clampScore(p.Protein), Carbs: clampScore(p.Carbs),
	}
	err := s.db.
		Where("user_id = ? AND name = ?", userID, name).
		Assign(meal).
		FirstOrCreate(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *CatalogService) DeleteCustomMeal(userID uint, name string) error {
	return s.db.Unscoped().
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.CustomMeal{}).Error
}

func (s *CatalogService) AddCustomSupplement(userID uint, name string, p models.NutrientProfile) (*models.CustomSupplement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	sup := models.CustomSupplement{
		UserID: userID, Name: name,
		Iron: clampScore(p.Iron), Calcium: clampScore(p.Calcium), Folate: clampScore(p.Folate),
	}
	err := s.db.
		Where("user_id = ? AND name = ?", userID, name).
		Assign(sup).
		FirstOrCreate(&sup).Error
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *CatalogService) DeleteCustomSupplement(userID uint, name string) error {
	return s.db.Unscoped().
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.CustomSupplement{}).Error
}
