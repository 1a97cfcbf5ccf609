// Package llm wraps hosted text-generation services behind a streaming
// completion interface. One completer issues one request at a time; chunks
// are surfaced in arrival order and accumulated for downstream parsing.
package llm

import (
	"context"
	"strings"
)

// maxOutputTokens is the fixed upper bound on response length for every
// completion request.
const maxOutputTokens = 4096

// Completer issues a single streaming completion request.
type Completer interface {
	// StreamCompletion sends the prompt and returns a Stream of text chunks.
	// The stream is finite and not restartable. Faults never escape as
	// errors: preconditions (missing credential, unconfigured client) and
	// transport failures each surface as one final informational chunk
	// before the stream closes.
	StreamCompletion(ctx context.Context, req Request) *Stream

	// ModelID returns the model identifier this completer is configured to use.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// Prompt is the full natural-language instruction.
	Prompt string

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Stream delivers completion chunks in arrival order while accumulating the
// transport text. Informational chunks (precondition and fault messages) are
// delivered on the channel but excluded from the accumulator.
type Stream struct {
	ch  chan string
	acc strings.Builder
}

func newStream() *Stream {
	// Buffer one chunk so precondition guards can emit without a consumer.
	return &Stream{ch: make(chan string, 1)}
}

// Chunks returns the channel of text chunks. The channel is closed when the
// completion ends, whether normally or on a fault.
func (s *Stream) Chunks() <-chan string {
	return s.ch
}

// Text returns the accumulated transport text. Valid only after Chunks has
// been drained; informational chunks are not included.
func (s *Stream) Text() string {
	return s.acc.String()
}

// emit delivers a transport chunk and records it in the accumulator.
func (s *Stream) emit(text string) {
	s.acc.WriteString(text)
	s.ch <- text
}

// info delivers a chunk without recording it.
func (s *Stream) info(text string) {
	s.ch <- text
}

// adopt replaces the accumulator wholesale. Used by middleware that forwards
// chunks from an inner stream.
func (s *Stream) adopt(text string) {
	s.acc.Reset()
	s.acc.WriteString(text)
}

func (s *Stream) close() {
	close(s.ch)
}

// Unavailable is a Completer whose preconditions already failed. Every call
// yields the reason as a single informational chunk and an empty accumulation.
type Unavailable struct {
	Reason string
}

func (u Unavailable) StreamCompletion(_ context.Context, _ Request) *Stream {
	s := newStream()
	s.info(u.Reason)
	s.close()
	return s
}

func (u Unavailable) ModelID() string {
	return "unavailable"
}
