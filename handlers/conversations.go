package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/chat"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking surface.
type ChatHandler struct {
	Chat chat.ChatService
}

// StartConversationHandler handles POST /api/conversations. The title is
// optional; an empty body is accepted.
func (h *ChatHandler) StartConversationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Title string `json:"title"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request body",
				"details": err.Error(),
			})
			return
		}
	}

	convo, err := h.Chat.StartConversation(middleware.CallerID(c), req.Title)
	if err != nil {
		logger.Error("StartConversationHandler: failed to create conversation", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, convo)
}

// ListConversationsHandler handles GET /api/conversations.
func (h *ChatHandler) ListConversationsHandler(c *gin.Context) {
	convos, err := h.Chat.ListConversations(middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convos})
}

// ListMessagesHandler handles GET /api/conversations/:id/messages.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	convoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	msgs, err := h.Chat.ListMessages(middleware.CallerID(c), convoID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendMessageHandler handles POST /api/conversations/:id/messages.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	convoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Chat.SendMessage(c.Request.Context(), middleware.CallerID(c), convoID, req.Message)
	if err != nil {
		logger.Error("SendMessageHandler: chat round-trip failed",
			zap.Uint("conversationID", convoID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResetConversationHandler handles POST /api/conversations/:id/reset.
func (h *ChatHandler) ResetConversationHandler(c *gin.Context) {
	convoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Chat.ResetConversation(c.Request.Context(), middleware.CallerID(c), convoID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
}

// ExtractHandler handles POST /api/conversations/:id/extract.
func (h *ChatHandler) ExtractHandler(c *gin.Context) {
	convoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.Chat.ExtractAppointment(c.Request.Context(), middleware.CallerID(c), convoID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateHandler handles POST /api/chat/validate. The body mirrors the
// language backend's wire shape.
func (h *ChatHandler) ValidateHandler(c *gin.Context) {
	var req struct {
		AppointmentData models.AppointmentData `json:"appointment_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.Chat.ValidateAppointment(c.Request.Context(), req.AppointmentData)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
