package router

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"athena.merchant/go-api/pkg/ai"
	"athena.merchant/go-api/pkg/global"
	"athena.merchant/go-api/pkg/metrics"
	"athena.merchant/go-api/pkg/models"
)

// Asker is the part of the insight service the handlers need.
type Asker interface {
	Ask(ctx context.Context, question string) (*models.StructuredAnswer, error)
	Enabled() bool
}

type Handler struct {
	insights Asker
	metrics  *metrics.Recorder
	log      *zap.Logger
}

func NewHandler(insights Asker, rec *metrics.Recorder, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{insights: insights, metrics: rec, log: log}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Athena Merchant Assistant API is running",
		"aiEnabled": h.insights.Enabled(),
	})
}

func invalidQuestion(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request", "Please provide a valid question", []global.ValidationError{
		{Field: "question", Message: detail, Code: "invalid_question"},
	}))
}

// AskAthena accepts a merchant question and returns a structured insight
func (h *Handler) AskAthena(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidQuestion(c, "request body must be JSON with a string question field")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		invalidQuestion(c, "question is required and must not be blank")
		return
	}

	answer, err := h.insights.Ask(c.Request.Context(), question)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyQuestion) {
			invalidQuestion(c, err.Error())
			return
		}
		h.log.Error("error in /ask-athena", zap.Error(err), zap.String("request_id", c.GetString("request_id")))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Internal server error", "Failed to process request", nil))
		return
	}

	c.JSON(http.StatusOK, models.NewAskResponse(question, answer))
}
