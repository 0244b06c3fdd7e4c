package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WellnessController struct {
	Svc *services.WellnessService
	Hub *services.RealtimeHub
}

func NewWellnessController(db *gorm.DB, hub *services.RealtimeHub) *WellnessController {
	return &WellnessController{Svc: services.NewWellnessService(db), Hub: hub}
}

// weekIDParam resolves the :weekId route segment; "current" means this week.
// Any date inside a week is accepted and normalized to its Monday.
func weekIDParam(c *gin.Context) (string, bool) {
	raw := c.Param("weekId")
	if raw == "" || raw == "current" {
		return utils.WeekID(time.Now()), true
	}
	t, err := utils.ParseWeekID(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week id, expected YYYY-MM-DD"})
		return "", false
	}
	return utils.WeekID(t), true
}

func (wc *WellnessController) notify(userID uint, weekID string, doc models.WellnessDoc) {
	wc.Hub.BroadcastDoc(userID, services.DocEvent{
		Role:    services.RoleWellness,
		Key:     weekID,
		Payload: doc,
	})
}

// GET /wellness/:weekId
func (wc *WellnessController) GetWeek(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	_, doc, err := wc.Svc.GetWeek(c.GetUint("userID"), weekID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"week_id": weekID, "doc": doc})
}

// PUT /wellness/:weekId/mood
func (wc *WellnessController) UpdateMood(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body models.MoodState
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.UpdateMood(uid, weekID, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/energy
func (wc *WellnessController) UpdateEnergy(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body models.EnergyState
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.UpdateEnergy(uid, weekID, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/water
func (wc *WellnessController) SetWater(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Intake int `json:"intake"`
		Goal   int `json:"goal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.SetWater(uid, weekID, body.Intake, body.Goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/sleep/:weekday
func (wc *WellnessController) SetSleep(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Sleep string `json:"sleep"`
		Wake  string `json:"wake"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.SetSleepEntry(uid, weekID, c.Param("weekday"), body.Sleep, body.Wake)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/log/:weekday
func (wc *WellnessController) LogDay(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Mood   string `json:"mood"`
		Energy string `json:"energy"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.LogDay(uid, weekID, c.Param("weekday"), body.Mood, body.Energy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/dates
func (wc *WellnessController) SetPregnancyDates(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.SetPregnancyDates(uid, weekID, body.Start, body.End)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// PUT /wellness/:weekId/tip
func (wc *WellnessController) SetDailyTip(c *gin.Context) {
	weekID, ok := weekIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Tip string `json:"tip"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	doc, err := wc.Svc.SetDailyTip(uid, weekID, body.Tip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// POST /wellness/:weekId/supplements/:weekday/toggle
func (wc *WellnessController) ToggleSupplement(c *gin.Context) {
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
	doc, added, err := wc.Svc.ToggleSupplement(uid, weekID, c.Param("weekday"), body.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wc.notify(uid, weekID, doc)
	c.JSON(http.StatusOK, gin.H{"doc": doc, "logged": added})
}
