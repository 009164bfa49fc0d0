// File: barberbook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public endpoints
	HealthHandler        gin.HandlerFunc
	ListServicesHandler  gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	GetShopConfigHandler gin.HandlerFunc

	// Conversation endpoints
	StartConversationHandler gin.HandlerFunc
	ListConversationsHandler gin.HandlerFunc
	ListMessagesHandler      gin.HandlerFunc
	SendMessageHandler       gin.HandlerFunc
	VoiceMessageHandler      gin.HandlerFunc
	ResetConversationHandler gin.HandlerFunc
	ExtractHandler           gin.HandlerFunc
	ValidateHandler          gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	UploadPhotoHandler       gin.HandlerFunc

	// Payment endpoints
	CreateCheckoutSessionHandler gin.HandlerFunc
	PaymentStatusHandler         gin.HandlerFunc
	PaymentHistoryHandler        gin.HandlerFunc
	StripeWebhookHandler         gin.HandlerFunc

	// Device endpoints
	RegisterDeviceTokenHandler gin.HandlerFunc

	// Admin endpoints
	AdminListAppointmentsHandler gin.HandlerFunc
	ListTrainingExamplesHandler  gin.HandlerFunc
	CreateTrainingExampleHandler gin.HandlerFunc
	UpdateTrainingExampleHandler gin.HandlerFunc
	ListModelsHandler            gin.HandlerFunc
	CreateModelHandler           gin.HandlerFunc
	UpdateModelHandler           gin.HandlerFunc
	ActivateModelHandler         gin.HandlerFunc
	UpdateShopConfigHandler      gin.HandlerFunc
}
