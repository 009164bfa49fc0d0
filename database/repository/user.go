// database/repository/user.go
package repository

import (
	"fmt"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SetStripeCustomerID(id uint, customerID string) error
	SetFCMToken(id uint, token string) error
}

// GormUserRepo implements UserRepository using GORM.
type GormUserRepo struct {
	store *database.Store
}

// NewGormUserRepo builds a user repository over the given store.
func NewGormUserRepo(store *database.Store) *GormUserRepo {
	return &GormUserRepo{store: store}
}

// GetByID retrieves a user by their ID.
func (repo *GormUserRepo) GetByID(id uint) (*models.User, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var user models.User
	err = db.First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("user %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve user with id %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email.
func (repo *GormUserRepo) GetByEmail(email string) (*models.User, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var user models.User
	err = db.First(&user, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to retrieve user with email %s: %w", email, err)
	}
	return &user, nil
}

// Create inserts a new user record.
func (repo *GormUserRepo) Create(user *models.User) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update saves the full user record.
func (repo *GormUserRepo) Update(user *models.User) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user with id %d: %w", user.ID, err)
	}
	return nil
}

// SetStripeCustomerID persists the payment-provider customer id, but only
// when none is stored yet; the id is written at most once per user.
func (repo *GormUserRepo) SetStripeCustomerID(id uint, customerID string) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	res := db.Model(&models.User{}).
		Where("id = ? AND (stripe_customer_id IS NULL OR stripe_customer_id = '')", id).
		Update("stripe_customer_id", customerID)
	if res.Error != nil {
		return fmt.Errorf("failed to set stripe customer for user %d: %w", id, res.Error)
	}
	return nil
}

// SetFCMToken stores the user's push-notification target.
func (repo *GormUserRepo) SetFCMToken(id uint, token string) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	res := db.Model(&models.User{}).Where("id = ?", id).Update("fcm_token", token)
	if res.Error != nil {
		return fmt.Errorf("failed to set fcm token for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound.WithMessage("user %d not found", id)
	}
	return nil
}
