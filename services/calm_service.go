package services

import (
	"backend/models"

	"gorm.io/gorm"
)

// CalmExercise is one guided relaxation exercise in the calm space.
type CalmExercise struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Seconds     int      `json:"seconds"`
	Steps       []string `json:"steps"`
}

var calmExercises = []CalmExercise{
	{
		Slug:        "box-breathing",
		Title:       "Box breathing",
		Description: "Slow square breathing to settle a racing mind.",
		Seconds:     240,
		Steps:       []string{"Inhale for 4", "Hold for 4", "Exhale for 4", "Hold for 4"},
	},
	{
		Slug:        "478-breathing",
		Title:       "4-7-8 breathing",
		Description: "A longer exhale that helps before sleep.",
		Seconds:     300,
		Steps:       []string{"Inhale for 4", "Hold for 7", "Exhale for 8"},
	},
	{
		Slug:        "body-scan",
		Title:       "Body scan",
		Description: "Move attention slowly from toes to head, releasing tension.",
		Seconds:     420,
		Steps:       []string{"Lie down comfortably", "Scan from feet upward", "Breathe into tight spots"},
	},
	{
		Slug:        "guided-imagery",
		Title:       "Guided imagery",
		Description: "Picture a calm place and stay with the details.",
		Seconds:     360,
		Steps:       []string{"Close your eyes", "Picture a peaceful scene", "Notice sounds and warmth"},
	},
	{
		Slug:        "affirmations",
		Title:       "Affirmations",
		Description: "Short phrases to repeat when the day feels heavy.",
		Seconds:     180,
		Steps:       []string{"Pick a phrase", "Repeat it slowly with each breath"},
	},
}

type CalmService struct {
	db *gorm.DB
}

func NewCalmService(db *gorm.DB) *CalmService { return &CalmService{db: db} }

func (s *CalmService) Exercises() []CalmExercise { return calmExercises }

func (s *CalmService) exerciseKnown(slug string) bool {
	for _, e := range calmExercises {
		if e.Slug == slug {
			return true
		}
	}
	return false
}

// LogSession records a completed exercise. Unknown exercises are skipped
// without a write.
func (s *CalmService) LogSession(userID uint, exercise string, seconds int) (*models.CalmSession, error) {
	if !s.exerciseKnown(exercise) {
		return nil, nil
	}
	if seconds < 0 {
		seconds = 0
	}
	session := models.CalmSession{UserID: userID, Exercise: exercise, Seconds: seconds}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *CalmService) RecentSessions(userID uint, limit int) ([]models.CalmSession, error) {
	if limit <= 0 {
		limit = 10
	}
	var sessions []models.CalmSession
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
