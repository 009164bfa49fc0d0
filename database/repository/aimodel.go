// database/repository/aimodel.go
package repository

import (
	"fmt"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// AIModelRepository defines the interface for assistant-model records.
type AIModelRepository interface {
	Create(m *models.AIModel) error
	GetByID(id uint) (*models.AIModel, error)
	List() ([]models.AIModel, error)
	Update(m *models.AIModel) error
	Activate(id uint) error
}

// GormAIModelRepo implements AIModelRepository using GORM.
type GormAIModelRepo struct {
	store *database.Store
}

// NewGormAIModelRepo builds an AI-model repository over the given store.
func NewGormAIModelRepo(store *database.Store) *GormAIModelRepo {
	return &GormAIModelRepo{store: store}
}

// Create inserts a new model record.
func (repo *GormAIModelRepo) Create(m *models.AIModel) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Create(m).Error; err != nil {
		return fmt.Errorf("failed to create ai model: %w", err)
	}
	return nil
}

// GetByID retrieves a model record by its ID.
func (repo *GormAIModelRepo) GetByID(id uint) (*models.AIModel, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var m models.AIModel
	err = db.First(&m, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("ai model %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve ai model %d: %w", id, err)
	}
	return &m, nil
}

// List returns all model records, newest first.
func (repo *GormAIModelRepo) List() ([]models.AIModel, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var out []models.AIModel
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list ai models: %w", err)
	}
	return out, nil
}

// Update saves the full model record.
func (repo *GormAIModelRepo) Update(m *models.AIModel) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Save(m).Error; err != nil {
		return fmt.Errorf("failed to update ai model %d: %w", m.ID, err)
	}
	return nil
}

// Activate marks the given model active and archives whichever model was
// active before; both writes commit together.
func (repo *GormAIModelRepo) Activate(id uint) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.AIModel{}).
			Where("status = ?", models.AIModelStatusActive).
			Update("status", models.AIModelStatusArchived)
		if res.Error != nil {
			return fmt.Errorf("failed to archive active models: %w", res.Error)
		}

		res = tx.Model(&models.AIModel{}).Where("id = ?", id).
			Update("status", models.AIModelStatusActive)
		if res.Error != nil {
			return fmt.Errorf("failed to activate ai model %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotFound.WithMessage("ai model %d not found", id)
		}
		return nil
	})
}
