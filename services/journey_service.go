package services

import (
	"errors"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// JourneyService backs the journey journal: to-dos, wishlist and reflection
// notes. Each is an independent per-user collection with server-assigned
// timestamps; deletes are hard deletes.
type JourneyService struct {
	db *gorm.DB
}

func NewJourneyService(db *gorm.DB) *JourneyService { return &JourneyService{db: db} }

var ErrNotFound = errors.New("record not found")

// ---------- To-dos ----------

func (s *JourneyService) AddTodo(userID uint, text string) (*models.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil // empty input: skip the write
	}
	todo := models.TodoItem{UserID: userID, Text: text}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *JourneyService) ListTodos(userID uint) ([]models.TodoItem, error) {
	var todos []models.TodoItem
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&todos).Error
	return todos, err
}

func (s *JourneyService) ToggleTodo(userID, todoID uint) (*models.TodoItem, error) {
	var todo models.TodoItem
	if err := s.db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	todo.Done = !todo.Done
	if err := s.db.Save(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *JourneyService) DeleteTodo(userID, todoID uint) error {
	return s.db.Unscoped().
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&models.TodoItem{}).Error
}

// ---------- Wishlist ----------

func (s *JourneyService) AddWish(userID uint, text, category string) (*models.WishItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	wish := models.WishItem{UserID: userID, Text: text, Category: category}
	if err := s.db.Create(&wish).Error; err != nil {
		return nil, err
	}
	return &wish, nil
}

func (s *JourneyService) ListWishes(userID uint) ([]models.WishItem, error) {
	var wishes []models.WishItem
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&wishes).Error
	return wishes, err
}

func (s *JourneyService) DeleteWish(userID, wishID uint) error {
	return s.db.Unscoped().
		Where("id = ? AND user_id = ?", wishID, userID).
		Delete(&models.WishItem{}).Error
}

// ---------- Reflections ----------

func (s *JourneyService) AddReflection(userID uint, title, body, photoURL string) (*models.Reflection, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	note := models.Reflection{UserID: userID, Title: title, Body: body, PhotoURL: photoURL}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *JourneyService) ListReflections(userID uint) ([]models.Reflection, error) {
	var notes []models.Reflection
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (s *JourneyService) DeleteReflection(userID, noteID uint) error {
	return s.db.Unscoped().
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Reflection{}).Error
}
