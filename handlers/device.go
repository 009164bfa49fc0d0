package handlers

import (
	"net/http"

	"barberbook/database/repository"
	"barberbook/middleware"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler manages the caller's push-notification registration.
type DeviceHandler struct {
	Users repository.UserRepository
}

// RegisterDeviceTokenHandler handles POST /api/devices/token. Reminder
// pushes go to the most recently registered token.
func (h *DeviceHandler) RegisterDeviceTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := middleware.CallerID(c)
	if err := h.Users.SetFCMToken(userID, req.Token); err != nil {
		logger.Error("RegisterDeviceTokenHandler: failed to store token",
			zap.Uint("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token registered"})
}
