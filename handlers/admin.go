package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/admin"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office endpoints. Role enforcement lives
// in the route guard.
type AdminHandler struct {
	Admin   admin.AdminService
	Booking booking.BookingService
}

// AdminListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) AdminListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Booking.ListAllAppointments()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListTrainingExamplesHandler handles GET /api/admin/training-examples.
func (h *AdminHandler) ListTrainingExamplesHandler(c *gin.Context) {
	examples, err := h.Admin.ListTrainingExamples()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"training_examples": examples})
}

// CreateTrainingExampleHandler handles POST /api/admin/training-examples.
func (h *AdminHandler) CreateTrainingExampleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.TrainingExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	example, err := h.Admin.CreateTrainingExample(middleware.CallerID(c), req)
	if err != nil {
		logger.Error("CreateTrainingExampleHandler: create failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, example)
}

// UpdateTrainingExampleHandler handles PATCH /api/admin/training-examples/:id.
func (h *AdminHandler) UpdateTrainingExampleHandler(c *gin.Context) {
	exampleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.TrainingExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	example, err := h.Admin.UpdateTrainingExample(exampleID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, example)
}

// ListModelsHandler handles GET /api/admin/models.
func (h *AdminHandler) ListModelsHandler(c *gin.Context) {
	aiModels, err := h.Admin.ListModels()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": aiModels})
}

// CreateModelHandler handles POST /api/admin/models.
func (h *AdminHandler) CreateModelHandler(c *gin.Context) {
	var req models.AIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	model, err := h.Admin.CreateModel(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// UpdateModelHandler handles PATCH /api/admin/models/:id.
func (h *AdminHandler) UpdateModelHandler(c *gin.Context) {
	modelID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.AIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	model, err := h.Admin.UpdateModel(modelID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// ActivateModelHandler handles POST /api/admin/models/:id/activate.
func (h *AdminHandler) ActivateModelHandler(c *gin.Context) {
	logger := utils.GetLogger()
	modelID, ok := pathID(c, "id")
	if !ok {
		return
	}

	model, err := h.Admin.ActivateModel(modelID)
	if err != nil {
		logger.Error("ActivateModelHandler: activation failed",
			zap.Uint("modelID", modelID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// UpdateShopConfigHandler handles PUT /api/admin/config.
func (h *AdminHandler) UpdateShopConfigHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var cfg models.BarbershopConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.Admin.UpdateShopConfig(middleware.CallerID(c), cfg)
	if err != nil {
		logger.Error("UpdateShopConfigHandler: update failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
