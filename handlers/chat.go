package handlers

import (
	"net/http"

	"tripdesk/models"
	"tripdesk/services/assistant"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler runs one assistant turn per request. The loop never fails
// outward: orchestration errors arrive here already collapsed into the
// apology reply, which is returned as a normal 200 so the UI always has
// displayable text.
type ChatHandler struct {
	Assistant assistant.Service
}

func NewChatHandler(svc assistant.Service) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

func (h *ChatHandler) ChatHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	reply := h.Assistant.Chat(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
