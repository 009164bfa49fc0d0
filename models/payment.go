package models

// CheckoutSessionRequest asks for a hosted payment page for an appointment.
type CheckoutSessionRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
}

// CheckoutSessionResponse returns the provider session and its hosted URL.
type CheckoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PaymentHistoryEntry is one row of a user's payment history: an
// appointment that has seen payment activity.
type PaymentHistoryEntry struct {
	AppointmentID  uint   `json:"appointment_id"`
	ServiceID      string `json:"service_id"`
	Price          int64  `json:"price"`
	FormattedPrice string `json:"formatted_price"`
	PaymentStatus  string `json:"payment_status"`
	ScheduledAt    string `json:"scheduled_at"`
}
