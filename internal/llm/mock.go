package llm

import (
	"context"
	"errors"
	"sync"
)

// MockScript is one canned streaming response for the MockCompleter.
type MockScript struct {
	// Chunks are emitted in order as transport text.
	Chunks []string

	// Fault, when set, is surfaced as a final informational chunk after
	// Chunks, the way a real transport fault would be.
	Fault error
}

// MockCompleter is a deterministic Completer for testing. It plays scripts
// in FIFO order and records all requests.
type MockCompleter struct {
	mu      sync.Mutex
	scripts []MockScript
	Calls   []Request
}

// NewMockCompleter creates a MockCompleter with the given canned scripts.
func NewMockCompleter(scripts ...MockScript) *MockCompleter {
	return &MockCompleter{scripts: scripts}
}

// AddScript appends a canned script to the queue.
func (m *MockCompleter) AddScript(s MockScript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts = append(m.scripts, s)
}

// CallCount returns the number of StreamCompletion calls made.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// StreamCompletion plays the next script. An empty queue behaves like an
// exhausted transport: a single fault chunk, then the stream closes.
func (m *MockCompleter) StreamCompletion(_ context.Context, req Request) *Stream {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)

	var script MockScript
	if len(m.scripts) == 0 {
		script.Fault = errors.New("mock: no scripts queued")
	} else {
		script = m.scripts[0]
		m.scripts = m.scripts[1:]
	}
	m.mu.Unlock()

	s := newStream()
	go func() {
		defer s.close()
		for _, chunk := range script.Chunks {
			s.emit(chunk)
		}
		if script.Fault != nil {
			s.info(faultChunk(script.Fault))
		}
	}()
	return s
}

func (m *MockCompleter) ModelID() string {
	return "mock"
}
