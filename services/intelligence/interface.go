// File: services/intelligence/interface.go
package intelligence

import (
	"context"

	"barberbook/models"
)

// NLPService is the language-understanding surface the chat layer depends
// on. The production implementation is NLPClient; tests substitute fakes.
type NLPService interface {
	Health(ctx context.Context) error
	SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	ExtractAppointment(ctx context.Context, conversationID uint) (*models.ExtractResponse, error)
	ValidateAppointment(ctx context.Context, data models.AppointmentData) (*models.ValidateResponse, error)
	Reset(ctx context.Context, conversationID uint) error
}

var _ NLPService = (*NLPClient)(nil)

// DraftStore caches the appointment draft extracted for a conversation.
type DraftStore interface {
	Get(ctx context.Context, conversationID uint) (*Draft, error)
	Set(ctx context.Context, conversationID uint, d *Draft) error
	Clear(ctx context.Context, conversationID uint) error
}

var _ DraftStore = (*RedisDraftStore)(nil)
