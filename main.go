// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	"barberbook/database/repository"
	"barberbook/handlers"
	"barberbook/routes"
	"barberbook/services/admin"
	"barberbook/services/booking"
	"barberbook/services/chat"
	ai "barberbook/services/intelligence"
	"barberbook/services/notification"
	"barberbook/services/payments"
	"barberbook/services/storage"
	"barberbook/services/tasks"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	if err := store.Seed(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed database: %v", err)
	}

	utils.InitCache()
	utils.FirebaseInit()
	payments.InitStripe()

	cld, err := utils.Cloudinary()
	if err != nil {
		// Photo upload degrades to an explicit error; everything else runs.
		logger.Sugar().Warnf("main: cloudinary disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := repository.NewGormUserRepo(store)
	apptRepo := repository.NewGormAppointmentRepo(store)
	convoRepo := repository.NewGormConversationRepo(store)
	trainingRepo := repository.NewGormTrainingRepo(store)
	modelRepo := repository.NewGormAIModelRepo(store)
	shopRepo := repository.NewGormShopConfigRepo(store)

	// services.
	nlpClient := ai.NewNLPClient(config.AppConfig.NLPBaseURL)
	draftStore := ai.NewRedisDraftStore(utils.GetCacheClient(), utils.DraftCacheTTL)

	chatService := &chat.DefaultChatService{
		Convos: convoRepo,
		Shop:   shopRepo,
		NLP:    nlpClient,
		Drafts: draftStore,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo: apptRepo,
		Scheduler: &tasks.AsynqReminderScheduler{
			Client: asynqClient,
			Lead:   config.AppConfig.ReminderLead,
		},
	}

	adminService := &admin.DefaultAdminService{
		Training: trainingRepo,
		Models:   modelRepo,
		Shop:     shopRepo,
	}

	checkoutService := payments.NewStripeCheckoutService(logger, userRepo, apptRepo)
	reconciler := payments.NewStripeReconciler(logger, apptRepo)

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	var storageService storage.StorageService
	if cld != nil {
		storageService = storage.NewCloudinaryStorageService(cld)
	}

	// handlers.
	chatHandler := &handlers.ChatHandler{Chat: chatService}
	bookingHandler := &handlers.BookingHandler{Booking: bookingService, Storage: storageService}
	paymentHandler := &handlers.PaymentHandler{Checkout: checkoutService}
	webhookHandler := &handlers.WebhookHandler{Reconciler: reconciler}
	adminHandler := &handlers.AdminHandler{Admin: adminService, Booking: bookingService}
	deviceHandler := &handlers.DeviceHandler{Users: userRepo}
	shopConfigHandler := &handlers.ShopConfigHandler{Shop: shopRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public endpoints.
		HealthHandler:        handlers.HealthHandler,
		ListServicesHandler:  handlers.ListServicesHandler,
		GetServiceHandler:    handlers.GetServiceHandler,
		GetShopConfigHandler: shopConfigHandler.GetShopConfigHandler,

		// Conversation endpoints.
		StartConversationHandler: chatHandler.StartConversationHandler,
		ListConversationsHandler: chatHandler.ListConversationsHandler,
		ListMessagesHandler:      chatHandler.ListMessagesHandler,
		SendMessageHandler:       chatHandler.SendMessageHandler,
		VoiceMessageHandler:      chatHandler.VoiceMessageHandler,
		ResetConversationHandler: chatHandler.ResetConversationHandler,
		ExtractHandler:           chatHandler.ExtractHandler,
		ValidateHandler:          chatHandler.ValidateHandler,

		// Appointment endpoints.
		CreateAppointmentHandler: bookingHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:  bookingHandler.ListAppointmentsHandler,
		GetAppointmentHandler:    bookingHandler.GetAppointmentHandler,
		UpdateAppointmentHandler: bookingHandler.UpdateAppointmentHandler,
		UploadPhotoHandler:       bookingHandler.UploadPhotoHandler,

		// Payment endpoints.
		CreateCheckoutSessionHandler: paymentHandler.CreateCheckoutSessionHandler,
		PaymentStatusHandler:         paymentHandler.PaymentStatusHandler,
		PaymentHistoryHandler:        paymentHandler.PaymentHistoryHandler,
		StripeWebhookHandler:         webhookHandler.StripeWebhookHandler,

		// Device endpoints.
		RegisterDeviceTokenHandler: deviceHandler.RegisterDeviceTokenHandler,

		// Admin endpoints.
		AdminListAppointmentsHandler: adminHandler.AdminListAppointmentsHandler,
		ListTrainingExamplesHandler:  adminHandler.ListTrainingExamplesHandler,
		CreateTrainingExampleHandler: adminHandler.CreateTrainingExampleHandler,
		UpdateTrainingExampleHandler: adminHandler.UpdateTrainingExampleHandler,
		ListModelsHandler:            adminHandler.ListModelsHandler,
		CreateModelHandler:           adminHandler.CreateModelHandler,
		UpdateModelHandler:           adminHandler.UpdateModelHandler,
		ActivateModelHandler:         adminHandler.ActivateModelHandler,
		UpdateShopConfigHandler:      adminHandler.UpdateShopConfigHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitReminderWorker(apptRepo, notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), store.Gorm(), nlpClient.Health)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
