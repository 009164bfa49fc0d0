package models

import "time"

// TrainingCategories is the fixed taxonomy a training example must fall
// into. It mirrors the topics the assistant handles.
var TrainingCategories = []string{
	"greeting",
	"services",
	"pricing",
	"hours",
	"booking",
	"cancellation",
	"other",
}

// ValidTrainingCategory reports whether c belongs to the taxonomy.
func ValidTrainingCategory(c string) bool {
	for _, v := range TrainingCategories {
		if v == c {
			return true
		}
	}
	return false
}

// TrainingExample is one curated prompt/response pair used to tune the
// assistant. Admin-only.
type TrainingExample struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"` // author
	Category          string    `gorm:"not null" json:"category"`
	UserMessage       string    `gorm:"type:text;not null" json:"user_message"`
	AssistantResponse string    `gorm:"type:text;not null" json:"assistant_response"`
	Active            bool      `gorm:"default:true" json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TrainingExampleRequest is the create/update payload.
type TrainingExampleRequest struct {
	Category          string `json:"category" binding:"required"`
	UserMessage       string `json:"user_message" binding:"required"`
	AssistantResponse string `json:"assistant_response" binding:"required"`
	Active            *bool  `json:"active,omitempty"`
}
