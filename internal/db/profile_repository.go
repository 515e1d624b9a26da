package db

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
)

// ErrProfileNotFound signals that the user has no cycle profile yet. Callers
// must not substitute defaults for a missing profile.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
	}
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) UpdateLengths(userID uint, cycleLength int, periodLength int) error {
	result := repo.database.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"cycle_length":  cycleLength,
			"period_length": periodLength,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
	}
	return nil
}
