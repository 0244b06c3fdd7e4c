package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PregnancyStart string `json:"pregnancy_start"` // YYYY-MM-DD
	DueDate        string `json:"due_date"`        // YYYY-MM-DD
	ProfilePicture string `json:"profile_picture"` // base64 data URL
	Onboarded      *bool  `json:"onboarded"`       // omitted means unchanged
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	week := utils.PregnancyWeek(user.PregnancyStart, time.Now())

	profile := map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
		"pregnancy_week":  week,
		"trimester":       utils.Trimester(week),
		"baby_size":       utils.BabySize(week),
	}
	if !user.PregnancyStart.IsZero() {
		profile["pregnancy_start"] = user.PregnancyStart.Format("2006-01-02")
	}
	if !user.DueDate.IsZero() {
		profile["due_date"] = user.DueDate.Format("2006-01-02")
	}
	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}

	if input.PregnancyStart != "" {
		if start, err := time.Parse("2006-01-02", input.PregnancyStart); err == nil {
			user.PregnancyStart = start
			if user.DueDate.IsZero() {
				user.DueDate = start.AddDate(0, 0, 40*7)
			}
		}
	}
	if input.DueDate != "" {
		if due, err := time.Parse("2006-01-02", input.DueDate); err == nil {
			user.DueDate = due
		}
	}

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(input.ProfilePicture, "profile-pictures", user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if input.Onboarded != nil {
		user.Onboarded = *input.Onboarded
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
