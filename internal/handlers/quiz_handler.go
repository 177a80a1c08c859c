package handlers

import (
	"context"
	"net/http"

	"readdash-service/internal/authoring"
	"readdash-service/internal/middleware"
	"readdash-service/internal/models"
	"readdash-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type quizRequest struct {
	Title        string             `json:"title" binding:"required"`
	ReadingLevel string             `json:"readingLevel" binding:"required"`
	Category     string             `json:"category" binding:"required"`
	Components   []models.Component `json:"components" binding:"required"`
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListQuizzes(context.Background(), c.Query("level"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuiz(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meta := authoring.QuizMeta{
		Title:        req.Title,
		ReadingLevel: req.ReadingLevel,
		Category:     req.Category,
		CreatedBy:    c.GetString(middleware.CtxUID),
	}
	quiz, warnings, err := h.Service.CreateQuiz(context.Background(), meta, req.Components)
	if err != nil {
		if authoring.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quiz": quiz, "warnings": warnings})
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meta := authoring.QuizMeta{
		Title:        req.Title,
		ReadingLevel: req.ReadingLevel,
		Category:     req.Category,
	}
	quiz, warnings, err := h.Service.UpdateQuiz(context.Background(), c.Param("id"), meta, req.Components)
	if err != nil {
		switch {
		case authoring.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == mongo.ErrNoDocuments:
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "warnings": warnings})
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.DeleteQuiz(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
