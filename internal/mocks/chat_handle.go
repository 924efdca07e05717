package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/bridgepath-ai/gateway/internal/generation"
)

// MockChatHandle implements generation.ChatHandle for testing.
type MockChatHandle struct {
	// SendMessageFn allows test cases to mock the SendMessage behavior
	SendMessageFn func(ctx context.Context, text string) (generation.Response, error)

	// Err, when set, is returned by every SendMessage call.
	Err error

	mu       sync.Mutex
	messages []string
}

// SendMessage implements the generation.ChatHandle interface. Without a
// custom function it replies "reply to: <text>".
func (m *MockChatHandle) SendMessage(ctx context.Context, text string) (generation.Response, error) {
	m.mu.Lock()
	m.messages = append(m.messages, text)
	m.mu.Unlock()

	if m.SendMessageFn != nil {
		return m.SendMessageFn(ctx, text)
	}
	if m.Err != nil {
		return generation.Response{}, m.Err
	}
	return generation.Response{Text: fmt.Sprintf("reply to: %s", text)}, nil
}

// Messages returns a copy of every text passed to SendMessage.
func (m *MockChatHandle) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}
