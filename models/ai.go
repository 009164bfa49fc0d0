package models

import "time"

// AI model lifecycle. At most one row is active at a time; activating a
// model archives the previously active one.
const (
	AIModelStatusTraining = "training"
	AIModelStatusActive   = "active"
	AIModelStatusArchived = "archived"
)

// AIModel records a trained assistant model version.
type AIModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Version   string    `gorm:"not null" json:"version"`
	Status    string    `gorm:"default:training" json:"status"`
	Accuracy  float64   `json:"accuracy"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AIModelRequest is the admin payload for registering or amending a model.
type AIModelRequest struct {
	Name     string   `json:"name" binding:"required"`
	Version  string   `json:"version" binding:"required"`
	Accuracy *float64 `json:"accuracy,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// --- NLP backend wire contract ---

// AppointmentData is the structured draft the NLP backend extracts from a
// conversation. All fields are optional until the draft is complete.
type AppointmentData struct {
	Service    string `json:"service,omitempty"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD
	Time       string `json:"time,omitempty"` // HH:MM
	BarberName string `json:"barber_name,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ChatRequest is forwarded to the NLP backend's /chat/message.
type ChatRequest struct {
	ConversationID uint   `json:"conversation_id"`
	Message        string `json:"message"`
}

// ChatResponse is what the NLP backend answers with.
type ChatResponse struct {
	Response        string           `json:"response"`
	AppointmentData *AppointmentData `json:"appointment_data,omitempty"`
	Confidence      float64          `json:"confidence"`
}

// ExtractResponse is the NLP backend's /chat/extract-appointment answer.
type ExtractResponse struct {
	AppointmentData  *AppointmentData `json:"appointment_data,omitempty"`
	IsComplete       bool             `json:"is_complete"`
	ValidationErrors []string         `json:"validation_errors"`
}

// ValidateResponse is the NLP backend's /chat/validate-appointment answer.
type ValidateResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
