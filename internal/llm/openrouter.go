package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterCompleter wraps OpenAICompleter with OpenRouter-specific
// defaults. OpenRouter exposes an OpenAI-compatible API, so the underlying
// SDK is reused.
type OpenRouterCompleter struct {
	*OpenAICompleter
}

// NewOpenRouterCompleter creates a completer targeting the OpenRouter API.
func NewOpenRouterCompleter(cfg OpenRouterConfig) (*OpenRouterCompleter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := NewOpenAICompleter(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &OpenRouterCompleter{OpenAICompleter: inner}, nil
}
