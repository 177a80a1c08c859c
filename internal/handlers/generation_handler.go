package handlers

import (
	"context"
	"net/http"

	"readdash-service/internal/generation"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct {
	Client *generation.Client
}

func NewGenerationHandler(client *generation.Client) *GenerationHandler {
	return &GenerationHandler{Client: client}
}

// GenerateQuiz proxies a prompt to the AI text-generation backend and returns
// a quiz draft for the authoring editor. Failures abort the operation; no
// partial state is written anywhere.
func (h *GenerationHandler) GenerateQuiz(c *gin.Context) {
	var req generation.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quiz, err := h.Client.Generate(context.Background(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
