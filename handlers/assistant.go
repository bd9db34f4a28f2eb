package handlers

import (
	"net/http"
	"strings"

	"staynest/models"
	ai "staynest/services/intelligence"
	"staynest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the chat assistant over HTTP.
type AssistantHandler struct {
	Service ai.AssistantService
}

func NewAssistantHandler(svc ai.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// HandleChat answers POST /api/chat. Authentication is optional; the status
// code and body come straight from the assistant's reply.
func (h *AssistantHandler) HandleChat(c *gin.Context) {
	logger := utils.RequestLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	reply := h.Service.Respond(c.Request.Context(), ai.ChatInput{
		Message:    req.Message,
		History:    req.History,
		Credential: bearerToken(c),
	})

	logger.Debug("chat request served",
		zap.String("outcome", string(reply.Outcome)),
		zap.String("model", reply.Model),
		zap.Int("status", reply.Status))
	c.JSON(reply.Status, models.ChatResponse{Response: reply.Text})
}
