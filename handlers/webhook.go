package handlers

import (
	"io"
	"net/http"
	"strings"

	"barberbook/config"
	"barberbook/services/payments"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// maxWebhookBody caps the webhook payload read. Stripe events are small;
// anything bigger is not one.
const maxWebhookBody = 1 << 20 // 1 MiB

// WebhookHandler receives Stripe events. Signature verification is the
// auth; the route carries no JWT middleware and must see the raw body.
type WebhookHandler struct {
	Reconciler *payments.StripeReconciler
}

// StripeWebhookHandler handles POST /api/stripe/webhook.
func (h *WebhookHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	secret := config.AppConfig.StripeWebhookSecret
	if strings.TrimSpace(secret) == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "stripe webhook not configured",
		})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing Stripe-Signature header",
		})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to read request body",
		})
		return
	}

	// The endpoint's dashboard-pinned API version may trail the SDK pin;
	// a mismatch must not drop real events.
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		logger.Warn("StripeWebhookHandler: signature verification failed", zap.Error(err))
		utils.RespondError(c, utils.ErrInvalidSignature)
		return
	}

	// Stripe's endpoint verification sends synthetic events; acknowledge
	// them without touching any state.
	if payments.IsTestEvent(event) {
		logger.Info("StripeWebhookHandler: test event acknowledged", zap.String("eventID", event.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.Reconciler.HandleEvent(event); err != nil {
		logger.Error("StripeWebhookHandler: reconciliation failed",
			zap.String("eventID", event.ID),
			zap.String("eventType", string(event.Type)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to process event",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
