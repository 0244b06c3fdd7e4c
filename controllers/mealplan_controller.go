package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealPlanController struct {
	Plans   *services.MealPlanService
	Catalog *services.CatalogService
	Hub     *services.RealtimeHub
}

func NewMealPlanController(db *gorm.DB, hub *services.RealtimeHub) *MealPlanController {
	return &MealPlanController{
		Plans:   services.NewMealPlanService(db),
		Catalog: services.NewCatalogService(db),
		Hub:     hub,
	}
}

func (mc *MealPlanController) notify(userID uint, weekID string, doc models.MealPlanDoc) {
	mc.Hub.BroadcastDoc(userID, services.DocEvent{
		Role:    services.RoleMealPlan,
		Key:     weekID,
		Payload: doc,
	})
}

// GET /mealplan/:weekId
func (mc *MealPlanController) GetWeek(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	_, doc, err := mc.Plans.GetWeek(c.GetUint("userID"), weekID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"week_id": weekID, "doc": doc})
}

// PUT /mealplan/:weekId/:slot/:weekday — empty name clears the cell.
func (mc *MealPlanController) SetMeal(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := mc.Plans.SetMeal(uid, weekID, c.Param("slot"), c.Param("weekday"), body.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// GET /catalog/meals
func (mc *MealPlanController) MealOptions(c *gin.Context) {
	opts, err := mc.Catalog.MealOptions(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GET /catalog/supplements
func (mc *MealPlanController) SupplementOptions(c *gin.Context) {
	opts, err := mc.Catalog.SupplementOptions(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opts)
}

type customMealInput struct {
	Name    string `json:"name"`
	Iron    int    `json:"iron"`
	Calcium int    `json:"calcium"`
	Folate  int    `json:"folate"`
	Fiber   int    `json:"fiber"`
	Protein int    `json:"protein"`
	Carbs   int    `json:"carbs"`
}

// POST /catalog/meals
func (mc *MealPlanController) AddCustomMeal(c *gin.Context) {
	var body customMealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := mc.Catalog.AddCustomMeal(c.GetUint("userID"), body.Name, models.NutrientProfile{
		Iron: body.Iron, Calcium: body.Calcium, Folate: body.Folate,
		Fiber: body.Fiber, Protein: body.Protein, Carbs: body.Carbs,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if meal == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to save"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// DELETE /catalog/meals/:name
func (mc *MealPlanController) DeleteCustomMeal(c *gin.Context) {
	if err := mc.Catalog.DeleteCustomMeal(c.GetUint("userID"), c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /catalog/supplements
func (mc *MealPlanController) AddCustomSupplement(c *gin.Context) {
	var body customMealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sup, err := mc.Catalog.AddCustomSupplement(c.GetUint("userID"), body.Name, models.NutrientProfile{
		Iron: body.Iron, Calcium: body.Calcium, Folate: body.Folate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sup == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to save"})
		return
	}
	c.JSON(http.StatusCreated, sup)
}

// DELETE /catalog/supplements/:name
func (mc *MealPlanController) DeleteCustomSupplement(c *gin.Context) {
	if err := mc.Catalog.DeleteCustomSupplement(c.GetUint("userID"), c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
