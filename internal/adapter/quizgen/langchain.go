// Package quizgen adapts a langchaingo model to the domain's
// generation ports. The model is an unreliable external dependency: it
// may return non-JSON, fenced JSON, or fail outright. This client makes
// exactly one attempt per call and leaves classification and recovery
// to its callers.
package quizgen

import (
	"context"
	"fmt"
	"net/http"

	"learntendo/internal/config"
	"learntendo/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOllama   = "ollama"
)

type Client struct {
	llm         llms.Model
	temperature float64
	logger      *zap.Logger
}

var (
	_ domain.QuestionGenerator = (*Client)(nil)
	_ domain.ChatModel         = (*Client)(nil)
)

// New wraps an already-constructed model. Used directly by tests.
func New(llm llms.Model, temperature float64, logger *zap.Logger) *Client {
	return &Client{llm: llm, temperature: temperature, logger: logger}
}

// NewFromConfig builds the model selected by cfg.Provider.
func NewFromConfig(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*Client, error) {
	var (
		llm llms.Model
		err error
	)
	switch cfg.Provider {
	case ProviderGoogleAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("missing GEMINI_API_KEY for the googleai provider")
		}
		llm, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	case ProviderOllama:
		llm, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	logger.Info("LLM client initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
	)
	return New(llm, cfg.Temperature, logger), nil
}

// Generate sends one finished prompt and returns the raw reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(c.temperature))
	if err != nil {
		c.logger.Error("LLM generation call failed", zap.Error(err))
		return "", err
	}
	return reply, nil
}

// Converse runs one multi-turn exchange for the tutor chat.
func (c *Client) Converse(ctx context.Context, system string, history []domain.ChatMessage, input string) (string, error) {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	for _, m := range history {
		role := llms.ChatMessageTypeHuman
		if m.Role == domain.ChatRoleModel {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, input))

	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithTemperature(c.temperature))
	if err != nil {
		c.logger.Error("LLM chat call failed", zap.Error(err))
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}
