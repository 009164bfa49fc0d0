// database/repository/appointment.go
package repository

import (
	"fmt"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// AppointmentRepository defines the interface for appointment data access.
// There is deliberately no Delete: appointments are cancelled, never removed.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id uint) (*models.Appointment, error)
	ListByUser(userID uint) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	ListWithPayments(userID uint) ([]models.Appointment, error)
	Update(appt *models.Appointment) error
	StampCheckoutSession(id uint, sessionID string, price int64) error
	MarkCheckoutCompleted(id uint, sessionID string) error
	MarkPaymentSucceeded(id uint, intentID string) error
	MarkPaymentFailed(id uint, intentID string) error
	MarkPaymentRefunded(id uint) error
}

// GormAppointmentRepo implements AppointmentRepository using GORM.
type GormAppointmentRepo struct {
	store *database.Store
}

// NewGormAppointmentRepo builds an appointment repository over the given store.
func NewGormAppointmentRepo(store *database.Store) *GormAppointmentRepo {
	return &GormAppointmentRepo{store: store}
}

// Create inserts a new appointment.
func (repo *GormAppointmentRepo) Create(appt *models.Appointment) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Create(appt).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *GormAppointmentRepo) GetByID(id uint) (*models.Appointment, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var appt models.Appointment
	err = db.First(&appt, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("appointment %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve appointment %d: %w", id, err)
	}
	return &appt, nil
}

// ListByUser returns a user's appointments, soonest first.
func (repo *GormAppointmentRepo) ListByUser(userID uint) ([]models.Appointment, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var appts []models.Appointment
	err = db.Where("user_id = ?", userID).Order("scheduled_at ASC").Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %d: %w", userID, err)
	}
	return appts, nil
}

// ListAll returns every appointment; admin listing.
func (repo *GormAppointmentRepo) ListAll() ([]models.Appointment, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var appts []models.Appointment
	if err := db.Order("scheduled_at ASC").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ListWithPayments returns the user's appointments that have seen payment
// activity, newest first; this backs the payment-history query.
func (repo *GormAppointmentRepo) ListWithPayments(userID uint) ([]models.Appointment, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var appts []models.Appointment
	err = db.Where("user_id = ? AND stripe_session_id <> ''", userID).
		Order("updated_at DESC").Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payment history for user %d: %w", userID, err)
	}
	return appts, nil
}

// Update saves the full appointment record.
func (repo *GormAppointmentRepo) Update(appt *models.Appointment) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if err := db.Save(appt).Error; err != nil {
		return fmt.Errorf("failed to update appointment %d: %w", appt.ID, err)
	}
	return nil
}

// StampCheckoutSession records the session id and price after a checkout
// session is created.
func (repo *GormAppointmentRepo) StampCheckoutSession(id uint, sessionID string, price int64) error {
	return repo.set(id, map[string]interface{}{
		"stripe_session_id": sessionID,
		"price":             price,
	})
}

// MarkCheckoutCompleted applies the checkout-session-completed transition.
func (repo *GormAppointmentRepo) MarkCheckoutCompleted(id uint, sessionID string) error {
	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusCompleted,
		"status":         models.AppointmentStatusConfirmed,
	}
	if sessionID != "" {
		updates["stripe_session_id"] = sessionID
	}
	return repo.set(id, updates)
}

// MarkPaymentSucceeded applies the payment-intent-succeeded transition.
func (repo *GormAppointmentRepo) MarkPaymentSucceeded(id uint, intentID string) error {
	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusCompleted,
		"status":         models.AppointmentStatusConfirmed,
	}
	if intentID != "" {
		updates["stripe_payment_intent_id"] = intentID
	}
	return repo.set(id, updates)
}

// MarkPaymentFailed applies the payment-intent-failed transition.
func (repo *GormAppointmentRepo) MarkPaymentFailed(id uint, intentID string) error {
	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusFailed,
	}
	if intentID != "" {
		updates["stripe_payment_intent_id"] = intentID
	}
	return repo.set(id, updates)
}

// MarkPaymentRefunded applies the charge-refunded transition.
func (repo *GormAppointmentRepo) MarkPaymentRefunded(id uint) error {
	return repo.set(id, map[string]interface{}{
		"payment_status": models.PaymentStatusRefunded,
		"status":         models.AppointmentStatusCancelled,
	})
}

// set applies an unconditional column update; re-applying the same event
// lands on the same final row, which is what makes webhook replays safe.
func (repo *GormAppointmentRepo) set(id uint, updates map[string]interface{}) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	res := db.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound.WithMessage("appointment %d not found", id)
	}
	return nil
}
