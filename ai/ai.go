// Package ai wraps the generative model providers behind a single
// prompt-in, text-out capability.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"newschat/config"
	"newschat/observability"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

// HTTPStatusError captures non-2xx upstream responses.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderDashScope = "dashscope"
)

var providerDefaults = map[string]struct{ model, baseURL string }{
	ProviderGemini:    {"gemini-1.5-flash", "https://generativelanguage.googleapis.com/v1beta/openai"},
	ProviderOpenAI:    {"gpt-4o", "https://api.openai.com/v1"},
	ProviderAnthropic: {"claude-sonnet-4-20250514", "https://api.anthropic.com/v1"},
	ProviderDashScope: {"qwen-max", "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"},
}

// New builds the configured provider, fills in per-provider defaults, and
// wraps it with logging and metrics.
func New(cfg config.LLMConfig, logger *zap.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderGemini
	}
	defaults, ok := providerDefaults[provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: gemini, openai, anthropic, dashscope)", cfg.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = defaults.model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.baseURL
	}

	// Timeouts are applied per call through the context; a zero timeout
	// leaves the call bounded only by the caller.
	httpClient := &http.Client{}

	var g Generator
	switch provider {
	case ProviderGemini, ProviderOpenAI:
		g = NewOpenAIProvider(provider, cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens, httpClient)
	case ProviderAnthropic:
		g = NewAnthropicProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens, httpClient)
	case ProviderDashScope:
		g = NewDashScopeProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient)
	}

	return &instrumented{
		next:    g,
		timeout: cfg.Timeout,
		logger:  logger.Named("ai"),
	}, nil
}

type instrumented struct {
	next    Generator
	timeout time.Duration
	logger  *zap.Logger
}

func (i *instrumented) Name() string  { return i.next.Name() }
func (i *instrumented) Model() string { return i.next.Model() }

func (i *instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	i.logger.Debug("LLM request",
		zap.String("provider", i.next.Name()),
		zap.String("model", i.next.Model()),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()
	text, err := i.next.Generate(ctx, prompt)
	observability.ObserveLLMRequest(i.next.Name(), err)
	if err != nil {
		i.logger.Error("LLM request failed",
			zap.String("provider", i.next.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("%s: %w", i.next.Name(), err)
	}

	i.logger.Info("LLM request completed",
		zap.String("provider", i.next.Name()),
		zap.Int("response_len", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
