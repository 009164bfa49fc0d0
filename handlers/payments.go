package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/payments"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the checkout and payment-query endpoints.
type PaymentHandler struct {
	Checkout *payments.StripeCheckoutService
}

// CreateCheckoutSessionHandler handles POST /api/payments/checkout-session.
func (h *PaymentHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.Checkout.CreateCheckoutSession(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		logger.Error("CreateCheckoutSessionHandler: failed to create session",
			zap.Uint("appointmentID", req.AppointmentID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PaymentStatusHandler handles GET /api/payments/status/:id.
func (h *PaymentHandler) PaymentStatusHandler(c *gin.Context) {
	apptID, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := h.Checkout.PaymentStatus(middleware.CallerID(c), apptID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// PaymentHistoryHandler handles GET /api/payments/history.
func (h *PaymentHandler) PaymentHistoryHandler(c *gin.Context) {
	history, err := h.Checkout.PaymentHistory(middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": history})
}
