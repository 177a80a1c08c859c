package handlers

import (
	"context"
	"net/http"

	"readdash-service/internal/middleware"
	"readdash-service/internal/models"
	"readdash-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

type submitRequest struct {
	Answers          map[string]string `json:"answers" binding:"required"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
}

func (h *ResultHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentIdentity(c)
	result, earned, err := h.Service.SubmitQuiz(context.Background(), user, c.Param("id"), req.Answers, req.TimeSpentSeconds)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if earned == nil {
		earned = []models.Achievement{}
	}
	c.JSON(http.StatusCreated, gin.H{"result": result, "achievements": earned})
}

func (h *ResultHandler) GetMyResults(c *gin.Context) {
	uid := c.GetString(middleware.CtxUID)
	var (
		results []models.Result
		err     error
	)
	if c.Query("best") == "true" {
		results, err = h.Service.BestResultsByUser(context.Background(), uid)
	} else {
		results, err = h.Service.ResultsByUser(context.Background(), uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	c.JSON(http.StatusOK, results)
}

// GetQuizResults lists all attempts on a quiz across users. Admin only.
func (h *ResultHandler) GetQuizResults(c *gin.Context) {
	results, err := h.Service.ResultsByQuiz(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetBestAttempt(c *gin.Context) {
	uid := c.GetString(middleware.CtxUID)
	best, err := h.Service.BestAttempt(context.Background(), uid, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if best == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No attempts for this quiz"})
		return
	}
	c.JSON(http.StatusOK, best)
}

func (h *ResultHandler) ResetQuiz(c *gin.Context) {
	uid := c.GetString(middleware.CtxUID)
	deleted, err := h.Service.ResetQuiz(context.Background(), uid, c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *ResultHandler) GetReview(c *gin.Context) {
	uid := c.GetString(middleware.CtxUID)
	entries, err := h.Service.Review(context.Background(), uid, c.Param("id"), c.Param("resultId"))
	if err != nil {
		if err == mongo.ErrNoDocuments || err == service.ErrResultNotOwned {
			c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
