package llm

import (
	"context"
	"strings"
	"testing"
)

func TestNew_MissingCredential(t *testing.T) {
	for _, provider := range []string{"gemini", "openai", "anthropic", "openrouter"} {
		cfg := DefaultConfig()
		cfg.Provider = provider

		c := New(context.Background(), cfg, nil)
		s := c.StreamCompletion(context.Background(), Request{Prompt: "p"})

		chunks := drain(s)
		if len(chunks) != 1 {
			t.Fatalf("%s: expected 1 informational chunk, got %d", provider, len(chunks))
		}
		if chunks[0] != MsgMissingCredential {
			t.Errorf("%s: unexpected chunk %q", provider, chunks[0])
		}
		if s.Text() != "" {
			t.Errorf("%s: expected empty accumulation", provider)
		}
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "frontier-9000"

	c := New(context.Background(), cfg, nil)
	chunks := drain(c.StreamCompletion(context.Background(), Request{}))

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.Contains(chunks[0], "frontier-9000") {
		t.Errorf("chunk should name the unknown provider: %q", chunks[0])
	}
}

func TestNew_MockProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	c := New(context.Background(), cfg, nil)
	if c.ModelID() != "mock" {
		t.Errorf("model id = %q", c.ModelID())
	}
}

func TestWithLogging_PreservesChunksAndAccumulation(t *testing.T) {
	mock := NewMockCompleter(MockScript{Chunks: []string{"аб", "вг"}})
	c := WithLogging(mock, nil)

	s := c.StreamCompletion(context.Background(), Request{Prompt: "p"})
	chunks := drain(s)

	if len(chunks) != 2 || chunks[0] != "аб" || chunks[1] != "вг" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
	if s.Text() != "абвг" {
		t.Errorf("accumulator = %q, want %q", s.Text(), "абвг")
	}
	if c.ModelID() != "mock" {
		t.Errorf("model id should pass through, got %q", c.ModelID())
	}
}
