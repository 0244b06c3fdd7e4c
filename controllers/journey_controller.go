package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JourneyController struct {
	Svc *services.JourneyService
	Hub *services.RealtimeHub
}

func NewJourneyController(db *gorm.DB, hub *services.RealtimeHub) *JourneyController {
	return &JourneyController{Svc: services.NewJourneyService(db), Hub: hub}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (jc *JourneyController) notify(userID uint, role services.DocRole, payload any) {
	jc.Hub.BroadcastDoc(userID, services.DocEvent{Role: role, Payload: payload})
}

// ---------- To-dos ----------

// POST /journey/todos
func (jc *JourneyController) AddTodo(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	todo, err := jc.Svc.AddTodo(uid, body.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if todo == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to save"})
		return
	}
	jc.notify(uid, services.RoleTodos, todo)
	c.JSON(http.StatusCreated, todo)
}

// GET /journey/todos
func (jc *JourneyController) ListTodos(c *gin.Context) {
	todos, err := jc.Svc.ListTodos(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// POST /journey/todos/:id/toggle
func (jc *JourneyController) ToggleTodo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetUint("userID")
	todo, err := jc.Svc.ToggleTodo(uid, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	jc.notify(uid, services.RoleTodos, todo)
	c.JSON(http.StatusOK, todo)
}

// DELETE /journey/todos/:id
func (jc *JourneyController) DeleteTodo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetUint("userID")
	if err := jc.Svc.DeleteTodo(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	jc.notify(uid, services.RoleTodos, gin.H{"deleted": id})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---------- Wishlist ----------

// POST /journey/wishes
func (jc *JourneyController) AddWish(c *gin.Context) {
	var body struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")
	wish, err := jc.Svc.AddWish(uid, body.Text, body.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if wish == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to save"})
		return
	}
	jc.notify(uid, services.RoleWishes, wish)
	c.JSON(http.StatusCreated, wish)
}

// GET /journey/wishes
func (jc *JourneyController) ListWishes(c *gin.Context) {
	wishes, err := jc.Svc.ListWishes(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wishes)
}

// DELETE /journey/wishes/:id
func (jc *JourneyController) DeleteWish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetUint("userID")
	if err := jc.Svc.DeleteWish(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	jc.notify(uid, services.RoleWishes, gin.H{"deleted": id})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---------- Reflections ----------

// POST /journey/reflections — optional base64 photo is stored on S3.
func (jc *JourneyController) AddReflection(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Photo string `json:"photo"` // base64 data URL, optional
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	photoURL := ""
	if body.Photo != "" {
		url, err := utils.UploadBase64Image(body.Photo, "journal-photos", c.GetString("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
			return
		}
		photoURL = url
	}

	note, err := jc.Svc.AddReflection(uid, body.Title, body.Body, photoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if note == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to save"})
		return
	}
	jc.notify(uid, services.RoleReflections, note)
	c.JSON(http.StatusCreated, note)
}

// GET /journey/reflections
func (jc *JourneyController) ListReflections(c *gin.Context) {
	notes, err := jc.Svc.ListReflections(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DELETE /journey/reflections/:id
func (jc *JourneyController) DeleteReflection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetUint("userID")
	if err := jc.Svc.DeleteReflection(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	jc.notify(uid, services.RoleReflections, gin.H{"deleted": id})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
