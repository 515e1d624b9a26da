package db

import (
	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

// Append writes one forecast row. A second computation for the same user and
// day is dropped on the (user_id, computed_on) key, keeping the store
// append-only under concurrent sweeps.
func (repo *PredictionRepository) Append(prediction *models.Prediction) error {
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "computed_on"}},
			DoNothing: true,
		}).
		Create(prediction).Error
}

// LatestByUser returns the most recent forecast; latest wins by computation
// date. The found flag is false for users with no forecast yet.
func (repo *PredictionRepository) LatestByUser(userID uint) (models.Prediction, bool, error) {
	prediction := models.Prediction{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("computed_on DESC, id DESC").
		Limit(1).
		Find(&prediction)
	if result.Error != nil {
		return models.Prediction{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Prediction{}, false, nil
	}
	return prediction, true, nil
}

func (repo *PredictionRepository) ListByUser(userID uint) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("computed_on ASC, id ASC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
