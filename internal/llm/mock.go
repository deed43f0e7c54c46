package llm

import (
	"context"
	"sync"
)

// MockProvider returns canned responses in FIFO order and records every
// request it receives. When the queue runs dry it repeats the last
// response, or returns a fixed placeholder if none were queued.
type MockProvider struct {
	mu        sync.Mutex
	responses []mockAnswer
	Calls     []Request
}

type mockAnswer struct {
	resp *Response
	err  error
}

// NewMockProvider creates an empty mock.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// QueueResponse appends a successful canned response.
func (m *MockProvider) QueueResponse(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockAnswer{resp: &Response{
		Content: content,
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	}})
}

// QueueError appends a canned failure.
func (m *MockProvider) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockAnswer{err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return &Response{Content: `{}`}, nil
	}

	ans := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	if ans.err != nil {
		return nil, ans.err
	}
	if err := validateResponse(ans.resp.Content, req.Schema); err != nil {
		return nil, err
	}
	return ans.resp, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns how many requests the mock has served.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
