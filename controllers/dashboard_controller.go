package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	Svc       *services.DashboardService
	Nutrition *services.NutritionService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		Svc:       services.NewDashboardService(db),
		Nutrition: services.NewNutritionService(db),
	}
}

// GET /dashboard
func (dc *DashboardController) Summary(c *gin.Context) {
	summary, err := dc.Svc.Summary(c.GetUint("userID"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /nutrition/:weekId/:weekday
func (dc *DashboardController) DayBreakdown(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	weekday := c.Param("weekday")
	if !utils.IsWeekdayKey(weekday) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekday"})
		return
	}
	breakdown, err := dc.Nutrition.DayBreakdown(c.GetUint("userID"), weekID, weekday)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
