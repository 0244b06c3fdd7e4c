package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CalmController struct {
	Svc *services.CalmService
	AI  *services.AIService
}

func NewCalmController(db *gorm.DB, ai *services.AIService) *CalmController {
	return &CalmController{Svc: services.NewCalmService(db), AI: ai}
}

// GET /calm/exercises
func (cc *CalmController) Exercises(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Svc.Exercises())
}

// POST /calm/sessions
func (cc *CalmController) LogSession(c *gin.Context) {
	var body struct {
		Exercise string `json:"exercise"`
		Seconds  int    `json:"seconds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := cc.Svc.LogSession(c.GetUint("userID"), body.Exercise, body.Seconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"message": "unknown exercise"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GET /calm/sessions?limit=10
func (cc *CalmController) RecentSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sessions, err := cc.Svc.RecentSessions(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GET /calm/affirmations — AI-generated, static fallback on failure.
func (cc *CalmController) Affirmations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"affirmations": cc.AI.Affirmations()})
}
