package llm

import "os"

// Config holds provider configuration for one generation action. The
// credential is resolved once, up front, and passed through explicitly —
// never stored as process state.
type Config struct {
	// Provider selects which service to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with the default model per provider.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
	}
}

// ConfigFromEnv builds a Config from ambient environment variables, falling
// back to defaults for unset values. interactiveKey is the key supplied
// through the UI, if any; the ambient value wins when both are present.
func ConfigFromEnv(interactiveKey string) Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MCQGEN_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Gemini.APIKey = resolveKey(os.Getenv("GEMINI_API_KEY"), interactiveKey)
	if m := os.Getenv("MCQGEN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	cfg.OpenAI.APIKey = resolveKey(os.Getenv("OPENAI_API_KEY"), interactiveKey)
	if m := os.Getenv("MCQGEN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("MCQGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Anthropic.APIKey = resolveKey(os.Getenv("ANTHROPIC_API_KEY"), interactiveKey)
	if m := os.Getenv("MCQGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenRouter.APIKey = resolveKey(os.Getenv("OPENROUTER_API_KEY"), interactiveKey)
	if m := os.Getenv("MCQGEN_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// resolveKey applies the credential precedence: ambient value first, then
// the interactively supplied one.
func resolveKey(ambient, interactive string) string {
	if ambient != "" {
		return ambient
	}
	return interactive
}

// SetModel points the selected provider at the given friendly model name.
// An empty name keeps the provider default.
func (c *Config) SetModel(model string) {
	if model == "" {
		return
	}
	switch c.Provider {
	case "gemini":
		c.Gemini.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
