package chat

import (
	"context"

	"barberbook/models"
)

// SendMessageResult is what a chat round-trip returns to the client: the
// persisted assistant reply plus whatever appointment draft the language
// backend extracted from the exchange.
type SendMessageResult struct {
	Reply           models.Message          `json:"reply"`
	AppointmentData *models.AppointmentData `json:"appointment_data,omitempty"`
	Confidence      float64                 `json:"confidence"`
}

// ChatService defines conversation management and the proxied language
// operations.
type ChatService interface {
	// StartConversation creates a conversation for the caller. An empty
	// title gets the default.
	StartConversation(userID uint, title string) (*models.Conversation, error)
	// ListConversations returns the caller's conversations, most recently
	// updated first.
	ListConversations(userID uint) ([]models.Conversation, error)
	// ListMessages returns a conversation's messages in creation order.
	ListMessages(callerID, conversationID uint) ([]models.Message, error)
	// SendMessage persists the user message, forwards it to the language
	// backend, persists the reply, and caches any extracted draft.
	SendMessage(ctx context.Context, callerID, conversationID uint, text string) (*SendMessageResult, error)
	// ResetConversation clears the backend context and the cached draft.
	// Stored messages are append-only and remain.
	ResetConversation(ctx context.Context, callerID, conversationID uint) error
	// ExtractAppointment returns the structured appointment draft for the
	// conversation.
	ExtractAppointment(ctx context.Context, callerID, conversationID uint) (*models.ExtractResponse, error)
	// ValidateAppointment checks draft fields with the backend and the
	// shop's business hours.
	ValidateAppointment(ctx context.Context, data models.AppointmentData) (*models.ValidateResponse, error)
}
