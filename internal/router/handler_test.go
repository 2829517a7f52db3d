package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"athena.merchant/go-api/pkg/ai"
	"athena.merchant/go-api/pkg/config"
	"athena.merchant/go-api/pkg/metrics"
	"athena.merchant/go-api/pkg/models"
	"athena.merchant/go-api/pkg/store"
)

type stubAsker struct {
	answer   *models.StructuredAnswer
	err      error
	question string
}

func (s *stubAsker) Ask(_ context.Context, question string) (*models.StructuredAnswer, error) {
	s.question = question
	return s.answer, s.err
}

func (s *stubAsker) Enabled() bool { return false }

func setupRouter(t *testing.T, asker Asker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Environment: "test", CORSOrigins: []string{"*"}}
	log := zaptest.NewLogger(t)
	router := NewEngine(cfg, log)
	InitializeRoutes(router, NewHandler(asker, metrics.New(), log))
	return router
}

func fallbackService(t *testing.T) *ai.Service {
	provider := &store.MockProvider{Now: func() time.Time { return time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC) }}
	return ai.NewService(config.OpenAIConfig{Model: "gpt-3.5-turbo", Timeout: time.Second}, provider, nil, zaptest.NewLogger(t), nil)
}

func postQuestion(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ask-athena", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAskAthenaFallbackAnswer(t *testing.T) {
	router := setupRouter(t, fallbackService(t))

	w := postQuestion(router, `{"question": "  What about my sales today?  "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "What about my sales today?", resp.Question)
	assert.Contains(t, resp.Response.Insight, "$543.87")
	assert.Contains(t, resp.Response.Insight, "12 orders")
	assert.NotEmpty(t, resp.Response.Explanation)
	assert.NotEmpty(t, resp.Response.Action)
	assert.NotContains(t, w.Body.String(), "rawResponse")
}

func TestAskAthenaPassesTrimmedQuestion(t *testing.T) {
	stub := &stubAsker{answer: &models.StructuredAnswer{Insight: "i", Explanation: "e", Action: "a", RawResponse: "INSIGHT: i"}}
	router := setupRouter(t, stub)

	w := postQuestion(router, `{"question": "\n low stock items? \t"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "low stock items?", stub.question)
	assert.JSONEq(t, `{"success":true,"question":"low stock items?","response":{"insight":"i","explanation":"e","action":"a"}}`, w.Body.String())
}

func TestAskAthenaRejectsInvalidInput(t *testing.T) {
	testCases := map[string]string{
		"empty body":     ``,
		"malformed json": `{"question":`,
		"missing field":  `{}`,
		"blank question": `{"question": "   "}`,
		"non-string":     `{"question": 42}`,
		"null question":  `{"question": null}`,
		"array body":     `["sales"]`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			stub := &stubAsker{}
			router := setupRouter(t, stub)

			w := postQuestion(router, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, stub.question, "service must not be called")

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "Invalid request", resp["error"])
			assert.Equal(t, "Please provide a valid question", resp["message"])
		})
	}
}

func TestAskAthenaInternalError(t *testing.T) {
	router := setupRouter(t, &stubAsker{err: errors.New("failed to fetch store data: boom")})

	w := postQuestion(router, `{"question": "sales?"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	assert.Equal(t, "Failed to process request", resp["message"])
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestAskAthenaEmptyQuestionFromService(t *testing.T) {
	router := setupRouter(t, &stubAsker{err: ai.ErrEmptyQuestion})

	w := postQuestion(router, `{"question": "sales?"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t, fallbackService(t))

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"status":"ok","message":"Athena Merchant Assistant API is running","aiEnabled":false}`, w.Body.String(), path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t, fallbackService(t))
	postQuestion(router, `{"question": "hello"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRequestIDHeader(t *testing.T) {
	router := setupRouter(t, fallbackService(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t, fallbackService(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/ask-athena", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfigWithExplicitOrigins(t *testing.T) {
	c := corsConfig([]string{"http://localhost:3000"})

	assert.False(t, c.AllowAllOrigins)
	assert.True(t, c.AllowCredentials)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowOrigins)

	assert.True(t, corsConfig([]string{"http://localhost:3000", "*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)
}
