package llm

import "testing"

func TestResolveKey_AmbientWins(t *testing.T) {
	tests := []struct {
		ambient     string
		interactive string
		want        string
	}{
		{"env-key", "flag-key", "env-key"},
		{"", "flag-key", "flag-key"},
		{"env-key", "", "env-key"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := resolveKey(tt.ambient, tt.interactive); got != tt.want {
			t.Errorf("resolveKey(%q, %q) = %q, want %q", tt.ambient, tt.interactive, got, tt.want)
		}
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestConfigFromEnv_InteractiveKeyFillsAllProviders(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := ConfigFromEnv("typed-in")
	if cfg.Gemini.APIKey != "typed-in" {
		t.Errorf("gemini key = %q", cfg.Gemini.APIKey)
	}
	if cfg.OpenAI.APIKey != "typed-in" {
		t.Errorf("openai key = %q", cfg.OpenAI.APIKey)
	}
}

func TestConfigFromEnv_AmbientBeatsInteractive(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "ambient")

	cfg := ConfigFromEnv("typed-in")
	if cfg.Gemini.APIKey != "ambient" {
		t.Errorf("expected ambient key to win, got %q", cfg.Gemini.APIKey)
	}
}

func TestConfigFromEnv_ProviderOverride(t *testing.T) {
	t.Setenv("MCQGEN_PROVIDER", "anthropic")
	t.Setenv("MCQGEN_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv("")
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
}

func TestSetModel_TargetsSelectedProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.SetModel("gpt-4o")

	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("gemini model should keep its default, got %q", cfg.Gemini.Model)
	}

	cfg.SetModel("")
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Error("empty model name must not reset the configured model")
	}
}
