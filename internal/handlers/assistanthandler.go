package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobquestapp/jobquest-backend/internal/dtos"
	"github.com/jobquestapp/jobquest-backend/internal/models"
	"github.com/jobquestapp/jobquest-backend/internal/services"
)

// Assistant answers resume and cover-letter requests.
type Assistant interface {
	Chat(ctx context.Context, token string, req dtos.ChatRequest) (*models.ChatMessage, error)
}

type AssistantHandler struct {
	assistant Assistant
}

func NewAssistantHandler(assistant Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat is the POST /api/v1/assistant/chat endpoint.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.assistant.Chat(c.Request.Context(), bearerToken(c), req)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": msg.Response, "id": msg.ID})
}
