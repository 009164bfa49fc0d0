// database/repository/shopconfig.go
package repository

import (
	"fmt"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// ShopConfigRepository reads and writes the singleton shop configuration.
type ShopConfigRepository interface {
	Get() (*models.BarbershopConfig, error)
	Save(cfg *models.BarbershopConfig) error
}

// GormShopConfigRepo implements ShopConfigRepository using GORM.
type GormShopConfigRepo struct {
	store *database.Store
}

// NewGormShopConfigRepo builds a shop-config repository over the given store.
func NewGormShopConfigRepo(store *database.Store) *GormShopConfigRepo {
	return &GormShopConfigRepo{store: store}
}

// Get returns the singleton configuration row, falling back to the default
// when the row was never seeded.
func (repo *GormShopConfigRepo) Get() (*models.BarbershopConfig, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var cfg models.BarbershopConfig
	err = db.First(&cfg, 1).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			def := models.DefaultBarbershopConfig()
			return &def, nil
		}
		return nil, fmt.Errorf("failed to retrieve shop config: %w", err)
	}
	return &cfg, nil
}

// Save upserts the singleton configuration row.
func (repo *GormShopConfigRepo) Save(cfg *models.BarbershopConfig) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	cfg.ID = 1
	if err := db.Save(cfg).Error; err != nil {
		return fmt.Errorf("failed to save shop config: %w", err)
	}
	return nil
}
