package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssistantController struct {
	AI       *services.AIService
	Wellness *services.WellnessService
	Plans    *services.MealPlanService
	Hub      *services.RealtimeHub
	db       *gorm.DB
}

func NewAssistantController(db *gorm.DB, ai *services.AIService, hub *services.RealtimeHub) *AssistantController {
	return &AssistantController{
		AI:       ai,
		Wellness: services.NewWellnessService(db),
		Plans:    services.NewMealPlanService(db),
		Hub:      hub,
		db:       db,
	}
}

// GET /assistant/tips — always succeeds; failures fall back to static tips.
func (ac *AssistantController) DailyTips(c *gin.Context) {
	week := 0
	if summary, err := services.NewDashboardService(ac.db).Summary(c.GetUint("userID"), time.Now()); err == nil {
		week = summary.PregnancyWeek
	}
	c.JSON(http.StatusOK, gin.H{"tips": ac.AI.DailyTips(week)})
}

// POST /assistant/evaluate-meal
func (ac *AssistantController) EvaluateMeal(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := ac.AI.EvaluateMeal(body.Name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't evaluate this meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": body.Name, "profile": profile})
}

// POST /assistant/evaluate-supplement
func (ac *AssistantController) EvaluateSupplement(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := ac.AI.EvaluateSupplement(body.Name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't evaluate this supplement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": body.Name, "profile": profile})
}

// POST /assistant/summarize/:weekId/:weekday — generates the day's nutrient
// verdicts and caches them on the wellness record, where they override
// computed totals from then on.
func (ac *AssistantController) SummarizeDay(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	weekday := c.Param("weekday")
	if !utils.IsWeekdayKey(weekday) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekday"})
		return
	}

	uid := c.GetUint("userID")
	_, wellnessDoc, err := ac.Wellness.GetWeek(uid, weekID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_, planDoc, err := ac.Plans.GetWeek(uid, weekID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	verdicts, err := ac.AI.DaySummary(
		services.MealsForDay(planDoc, weekday),
		wellnessDoc.DailySupplements[weekday],
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't generate a summary"})
		return
	}

	doc, err := ac.Wellness.SetDayNutrition(uid, weekID, weekday, verdicts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ac.Hub.BroadcastDoc(uid, services.DocEvent{
		Role:    services.RoleWellness,
		Key:     weekID,
		Payload: doc,
	})
	c.JSON(http.StatusOK, gin.H{"weekday": weekday, "verdicts": verdicts})
}
