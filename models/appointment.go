package models

import "time"

// Appointment lifecycle. Confirmed and completed are reached through
// payment reconciliation; cancelled through reconciliation (refund) or an
// explicit update. Rows are never physically deleted.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Payment lifecycle, driven exclusively by the webhook reconciler.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Appointment represents a booked slot at the shop.
type Appointment struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	UserID                uint       `gorm:"index;not null" json:"user_id"`
	ConversationID        *uint      `gorm:"index" json:"conversation_id,omitempty"` // set when booked through chat
	ServiceID             string     `gorm:"not null" json:"service_id"`
	DurationMinutes       int        `json:"duration_minutes"`
	ScheduledAt           time.Time  `gorm:"index" json:"scheduled_at"`
	Status                string     `gorm:"default:pending" json:"status"`
	PaymentStatus         string     `gorm:"default:pending" json:"payment_status"`
	StripeSessionID       string     `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string     `json:"stripe_payment_intent_id,omitempty"`
	Price                 int64      `json:"price"` // minor currency units
	BarberName            string     `json:"barber_name,omitempty"`
	Notes                 string     `gorm:"type:text" json:"notes,omitempty"`
	PhotoURL              string     `json:"photo_url,omitempty"` // reference photo for the barber
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// CreateAppointmentRequest is the booking API payload for a new appointment.
type CreateAppointmentRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	ScheduledAt    string `json:"scheduled_at" binding:"required"` // RFC 3339
	ConversationID *uint  `json:"conversation_id,omitempty"`
	BarberName     string `json:"barber_name,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest carries the fields an owner may change. Payment
// fields and the confirmed/completed transitions are reconciler-only.
type UpdateAppointmentRequest struct {
	ScheduledAt *string `json:"scheduled_at,omitempty"`
	BarberName  *string `json:"barber_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Cancel      bool    `json:"cancel,omitempty"`
}

// PaymentStatusResponse answers the payment-status query for one appointment.
type PaymentStatusResponse struct {
	AppointmentID   uint   `json:"appointment_id"`
	PaymentStatus   string `json:"payment_status"`
	Status          string `json:"status"`
	Price           int64  `json:"price"`
	FormattedPrice  string `json:"formatted_price"`
	StripeSessionID string `json:"stripe_session_id,omitempty"`
}
