// database/repository/training.go
package repository

import (
	"fmt"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// TrainingRepository defines the interface for training-example data access.
type TrainingRepository interface {
	Create(ex *models.TrainingExample) error
	GetByID(id uint) (*models.TrainingExample, error)
	List() ([]models.TrainingExample, error)
	Update(ex *models.TrainingExample) error
}

// GormTrainingRepo implements TrainingRepository using GORM.
type GormTrainingRepo struct {
	store *database.Store
}

// NewGormTrainingRepo builds a training repository over the given store.
func NewGormTrainingRepo(store *database.Store) *GormTrainingRepo {
	return &GormTrainingRepo{store: store}
}

// Create inserts a new training example.
func (repo *GormTrainingRepo) Create(ex *models.TrainingExample) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Create(ex).Error; err != nil {
		return fmt.Errorf("failed to create training example: %w", err)
	}
	return nil
}

// GetByID retrieves a training example by its ID.
func (repo *GormTrainingRepo) GetByID(id uint) (*models.TrainingExample, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var ex models.TrainingExample
	err = db.First(&ex, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("training example %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve training example %d: %w", id, err)
	}
	return &ex, nil
}

// List returns all training examples, newest first.
func (repo *GormTrainingRepo) List() ([]models.TrainingExample, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var out []models.TrainingExample
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list training examples: %w", err)
	}
	return out, nil
}

// Update saves the full training example record.
func (repo *GormTrainingRepo) Update(ex *models.TrainingExample) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Save(ex).Error; err != nil {
		return fmt.Errorf("failed to update training example %d: %w", ex.ID, err)
	}
	return nil
}
