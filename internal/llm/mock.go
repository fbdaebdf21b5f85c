package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
// When the queue runs dry it falls back to Default, if set.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Default   *MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response. An empty queue without a
// Default yields ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.Default != nil:
		resp = *m.Default
	default:
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Text:       resp.Text,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// FuncProvider answers every request through a function. Useful for
// stubs that need to look at the prompt before replying.
type FuncProvider struct {
	Model string
	Fn    func(req Request) (string, error)

	mu    sync.Mutex
	calls int
}

// NewFuncProvider creates a FuncProvider reporting model "mock".
func NewFuncProvider(fn func(req Request) (string, error)) *FuncProvider {
	return &FuncProvider{Model: "mock", Fn: fn}
}

func (f *FuncProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	text, err := f.Fn(req)
	if err != nil {
		return nil, err
	}
	return &Response{Text: text, Model: f.ModelID(), StopReason: "end"}, nil
}

func (f *FuncProvider) ModelID() string {
	if f.Model == "" {
		return "mock"
	}
	return f.Model
}

// CallCount returns the number of Generate calls made.
func (f *FuncProvider) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
