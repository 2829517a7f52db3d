package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"athena.merchant/go-api/pkg/config"
)

// Failure reasons reported by AIError.Reason.
const (
	ReasonTimeout       = "timeout"
	ReasonHTTPStatus    = "http_status"
	ReasonTransport     = "transport"
	ReasonEmptyResponse = "empty_response"
)

// Completer sends one system + user message pair to a chat model and returns
// the reply text.
type Completer interface {
	Complete(ctx context.Context, systemMessage, userMessage string) (string, error)
}

// Client is a Completer backed by an OpenAI compatible chat completions API.
type Client struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewClient returns nil when no API key is configured.
func NewClient(cfg config.OpenAIConfig) *Client {
	if !cfg.Enabled() {
		return nil
	}

	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey(cfg.APIKey),
			option.WithMaxRetries(0),
		),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemMessage),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", classifyError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", &AIError{Message: "invalid response format from chat completions API", Reason: ReasonEmptyResponse}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &AIError{Message: "empty response from chat completions API", Reason: ReasonEmptyResponse}
	}

	return content, nil
}

func classifyError(ctx context.Context, err error) *AIError {
	var apiErr *openai.Error
	switch {
	case errors.As(err, &apiErr):
		return &AIError{
			Message:    fmt.Sprintf("chat completions API returned status %d", apiErr.StatusCode),
			Reason:     ReasonHTTPStatus,
			StatusCode: apiErr.StatusCode,
			Cause:      err,
		}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &AIError{Message: "chat completions request timed out", Reason: ReasonTimeout, Cause: err}
	default:
		return &AIError{Message: "no response from chat completions API", Reason: ReasonTransport, Cause: err}
	}
}

// AIError represents a failed model call
type AIError struct {
	Message    string
	Reason     string
	StatusCode int
	Cause      error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AIError) Unwrap() error {
	return e.Cause
}

// Hint returns an operator-facing explanation for well known status codes.
func (e *AIError) Hint(model string) string {
	switch e.StatusCode {
	case 401:
		return "authentication failed, check OPENAI_API_KEY"
	case 429:
		return "rate limit exceeded, too many requests"
	case 404:
		return fmt.Sprintf("model %q not found, try gpt-3.5-turbo or gpt-4", model)
	}
	if e.Reason == ReasonTransport {
		return "network issue or the API is down"
	}
	return ""
}
