package llm

import (
	"context"

	"go.uber.org/zap"
)

// New creates a Completer from configuration, wrapped with logging
// middleware. Construction never fails: a missing credential, an unknown
// provider, or a client setup error all yield an Unavailable completer whose
// stream carries the explanation as its only chunk.
func New(ctx context.Context, cfg Config, log *zap.Logger) Completer {
	return WithLogging(newBase(ctx, cfg), log)
}

func newBase(ctx context.Context, cfg Config) Completer {
	switch cfg.Provider {
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return Unavailable{Reason: MsgMissingCredential}
		}
		c, err := NewGeminiCompleter(ctx, cfg.Gemini)
		if err != nil {
			return Unavailable{Reason: msgClientUnavailable("Gemini", err)}
		}
		return c

	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return Unavailable{Reason: MsgMissingCredential}
		}
		c, err := NewOpenAICompleter(cfg.OpenAI)
		if err != nil {
			return Unavailable{Reason: msgClientUnavailable("OpenAI", err)}
		}
		return c

	case "anthropic":
		if cfg.Anthropic.APIKey == "" {
			return Unavailable{Reason: MsgMissingCredential}
		}
		c, err := NewAnthropicCompleter(cfg.Anthropic)
		if err != nil {
			return Unavailable{Reason: msgClientUnavailable("Anthropic", err)}
		}
		return c

	case "openrouter":
		if cfg.OpenRouter.APIKey == "" {
			return Unavailable{Reason: MsgMissingCredential}
		}
		c, err := NewOpenRouterCompleter(cfg.OpenRouter)
		if err != nil {
			return Unavailable{Reason: msgClientUnavailable("OpenRouter", err)}
		}
		return c

	case "mock":
		return NewMockCompleter()

	default:
		return Unavailable{Reason: msgUnknownProvider(cfg.Provider)}
	}
}
