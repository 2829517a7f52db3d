package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"athena.merchant/go-api/pkg/config"
	"athena.merchant/go-api/pkg/metrics"
	"athena.merchant/go-api/pkg/models"
	"athena.merchant/go-api/pkg/store"
)

// ErrEmptyQuestion is returned when the question is blank after trimming.
var ErrEmptyQuestion = errors.New("question must not be empty")

const reasonUnconfigured = "unconfigured"

// Service turns a merchant question into a StructuredAnswer, using the chat
// model when configured and the keyword rules otherwise.
type Service struct {
	cfg       config.OpenAIConfig
	store     store.Provider
	completer Completer
	log       *zap.Logger
	metrics   *metrics.Recorder
}

// NewService wires the insight flow. completer may be nil, in which case
// every answer comes from the fallback rules.
func NewService(cfg config.OpenAIConfig, provider store.Provider, completer Completer, log *zap.Logger, rec *metrics.Recorder) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cfg:       cfg,
		store:     provider,
		completer: completer,
		log:       log,
		metrics:   rec,
	}
}

// Enabled reports whether questions are sent to the model.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled() && s.completer != nil
}

// Ask answers one question. Model failures never surface as errors; only an
// empty question or a failing store provider does.
func (s *Service) Ask(ctx context.Context, question string) (*models.StructuredAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	snapshot, err := s.store.FetchStoreData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store data: %w", err)
	}

	log := s.log.With(zap.Int("question_length", len(question)))

	if !s.Enabled() {
		log.Info("no OpenAI API key configured, using fallback response")
		return s.fallback(question, snapshot, reasonUnconfigured), nil
	}

	raw, err := s.complete(ctx, BuildPrompt(question, snapshot))
	if err != nil {
		reason := ReasonTransport
		if errors.Is(err, context.DeadlineExceeded) {
			reason = ReasonTimeout
		}
		fields := []zap.Field{zap.Error(err), zap.String("model", s.cfg.Model)}

		var aiErr *AIError
		if errors.As(err, &aiErr) {
			reason = aiErr.Reason
			fields = append(fields, zap.String("reason", aiErr.Reason))
			if aiErr.StatusCode != 0 {
				fields = append(fields, zap.Int("status_code", aiErr.StatusCode))
			}
			if hint := aiErr.Hint(s.cfg.Model); hint != "" {
				fields = append(fields, zap.String("hint", hint))
			}
		}
		log.Warn("chat completion failed, using fallback response", fields...)
		return s.fallback(question, snapshot, reason), nil
	}

	answer := ParseResponse(raw, question)
	s.metrics.RecordAnswer(string(models.SourceModel), "none")
	log.Info("answered from model", zap.String("model", s.cfg.Model))
	return &answer, nil
}

// complete runs the model call under the configured timeout. The call is
// detached from caller cancellation and only bounded by the timeout.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.completer.Complete(ctx, SystemPrompt, prompt)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveModelCall(outcome, time.Since(start))
	return raw, err
}

func (s *Service) fallback(question string, snapshot *models.StoreSnapshot, reason string) *models.StructuredAnswer {
	answer := FallbackResponse(question, snapshot)
	s.metrics.RecordFallback(reason)
	s.metrics.RecordAnswer(string(models.SourceFallback), answer.Rule)
	s.log.Debug("fallback rule selected", zap.String("rule", answer.Rule), zap.String("reason", reason))
	return &answer
}
