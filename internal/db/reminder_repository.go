package db

import (
	"errors"

	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
)

var ErrReminderNotFound = errors.New("reminder not found")

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) Save(reminder *models.Reminder) error {
	return repo.database.Save(reminder).Error
}

func (repo *ReminderRepository) FindByUserAndID(userID uint, reminderID string) (models.Reminder, error) {
	var reminder models.Reminder
	err := repo.database.Where("user_id = ? AND id = ?", userID, reminderID).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reminder{}, ErrReminderNotFound
	}
	if err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (repo *ReminderRepository) ListByUser(userID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListEnabled returns every enabled reminder across all users; soft-deleted
// rows are excluded by gorm.
func (repo *ReminderRepository) ListEnabled() ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("enabled = ?", true).
		Order("user_id ASC, created_at ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) SoftDelete(userID uint, reminderID string) error {
	result := repo.database.Where("user_id = ? AND id = ?", userID, reminderID).Delete(&models.Reminder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}
