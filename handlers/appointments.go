package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/services/storage"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxPhotoFileSize caps reference photo uploads.
const MaxPhotoFileSize = 10 * 1024 * 1024 // 10MB

// allowedPhotoExtensions defines permitted reference photo formats.
var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// BookingHandler exposes the appointment endpoints.
type BookingHandler struct {
	Booking booking.BookingService
	Storage storage.StorageService
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	appt, err := h.Booking.CreateAppointment(middleware.CallerID(c), req)
	if err != nil {
		logger.Error("CreateAppointmentHandler: failed to create appointment", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Booking.ListAppointments(middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	apptID, ok := pathID(c, "id")
	if !ok {
		return
	}
	appt, err := h.Booking.GetAppointment(middleware.CallerID(c), middleware.CallerRole(c), apptID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentHandler handles PATCH /api/appointments/:id.
func (h *BookingHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	apptID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	appt, err := h.Booking.UpdateAppointment(middleware.CallerID(c), middleware.CallerRole(c), apptID, req)
	if err != nil {
		logger.Error("UpdateAppointmentHandler: failed to update appointment",
			zap.Uint("appointmentID", apptID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UploadPhotoHandler handles POST /api/appointments/:id/photo. The photo
// gives the barber a visual reference for the requested cut.
func (h *BookingHandler) UploadPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	apptID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "photo storage is not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "photo file is required",
			"details": err.Error(),
		})
		return
	}
	if fileHeader.Size > MaxPhotoFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "photo exceeds the 10MB limit",
		})
		return
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); !allowedPhotoExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": "allowed formats: jpg, jpeg, png, webp",
		})
		return
	}

	// Ownership is enforced before the upload so a foreign caller cannot
	// push bytes to storage.
	if _, err := h.Booking.GetAppointment(middleware.CallerID(c), middleware.CallerRole(c), apptID); err != nil {
		utils.RespondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read photo",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	photoURL, err := h.Storage.UploadReferencePhoto(c.Request.Context(), file, apptID)
	if err != nil {
		logger.Error("UploadPhotoHandler: upload failed",
			zap.Uint("appointmentID", apptID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to upload photo",
			"details": err.Error(),
		})
		return
	}

	appt, err := h.Booking.AttachReferencePhoto(middleware.CallerID(c), apptID, photoURL)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
