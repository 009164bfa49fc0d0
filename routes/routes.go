package routes

import (
	"time"

	"barberbook/config"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoute registers the Stripe webhook. It must be called
// before the rate limiter is installed: gin binds middleware at
// registration time, and provider retries must never be throttled or see
// a consumed body.
func RegisterWebhookRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/stripe/webhook", hb.StripeWebhookHandler)
}

// RegisterPublicRoutes registers endpoints that need no identity.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)

	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/config", hb.GetShopConfigHandler)
	}
}

// RegisterConversationRoutes registers the chat surface.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	convos := r.Group("/api/conversations")
	{
		convos.Use(middleware.RequireAuth())
		convos.POST("", hb.StartConversationHandler)
		convos.GET("", hb.ListConversationsHandler)
		convos.GET("/:id/messages", hb.ListMessagesHandler)
		convos.POST("/:id/messages", hb.SendMessageHandler)
		convos.POST("/:id/voice", hb.VoiceMessageHandler)
		convos.POST("/:id/reset", hb.ResetConversationHandler)
		convos.POST("/:id/extract", hb.ExtractHandler)
	}

	chat := r.Group("/api/chat")
	{
		chat.Use(middleware.RequireAuth())
		chat.POST("/validate", hb.ValidateHandler)
	}
}

// RegisterAppointmentRoutes registers appointment CRUD.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	appts := r.Group("/api/appointments")
	{
		appts.Use(middleware.RequireAuth())
		appts.POST("", hb.CreateAppointmentHandler)
		appts.GET("", hb.ListAppointmentsHandler)
		appts.GET("/:id", hb.GetAppointmentHandler)
		appts.PATCH("/:id", hb.UpdateAppointmentHandler)
		appts.POST("/:id/photo", hb.UploadPhotoHandler)
	}
}

// RegisterPaymentRoutes registers checkout and payment queries.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pay := r.Group("/api/payments")
	{
		pay.Use(middleware.RequireAuth())
		pay.POST("/checkout-session", hb.CreateCheckoutSessionHandler)
		pay.GET("/status/:id", hb.PaymentStatusHandler)
		pay.GET("/history", hb.PaymentHistoryHandler)
	}
}

// RegisterDeviceRoutes registers push-notification registration.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	devices := r.Group("/api/devices")
	{
		devices.Use(middleware.RequireAuth())
		devices.POST("/token", hb.RegisterDeviceTokenHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		adminGroup.GET("/appointments", hb.AdminListAppointmentsHandler)

		adminGroup.GET("/training-examples", hb.ListTrainingExamplesHandler)
		adminGroup.POST("/training-examples", hb.CreateTrainingExampleHandler)
		adminGroup.PATCH("/training-examples/:id", hb.UpdateTrainingExampleHandler)

		adminGroup.GET("/models", hb.ListModelsHandler)
		adminGroup.POST("/models", hb.CreateModelHandler)
		adminGroup.PATCH("/models/:id", hb.UpdateModelHandler)
		adminGroup.POST("/models/:id/activate", hb.ActivateModelHandler)

		adminGroup.PUT("/config", hb.UpdateShopConfigHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(middleware.RequestID())
	r.Use(utils.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebhookRoute(r, hb)

	r.Use(middleware.RateLimitMiddleware())

	RegisterPublicRoutes(r, hb)
	RegisterConversationRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
