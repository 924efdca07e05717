package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
)

// ErrMockTransport is a generic transport failure for tests.
var ErrMockTransport = errors.New("mock transport failure")

// CreateChatCall records the arguments of one CreateChat call.
type CreateChatCall struct {
	Model             string
	SystemInstruction string
	History           []domain.Turn
}

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// GenerateContentFn allows test cases to mock the GenerateContent behavior
	GenerateContentFn func(ctx context.Context, model string, payload generation.RequestPayload) (generation.Response, error)

	// CreateChatFn allows test cases to mock the CreateChat behavior.
	// When nil, CreateChat returns Chat (or a fresh MockChatHandle).
	CreateChatFn func(ctx context.Context, model, systemInstruction string, history []domain.Turn) (generation.ChatHandle, error)

	// Default response values
	Text string
	Err  error
	Chat *MockChatHandle

	mu              sync.Mutex
	generateCalls   []generation.RequestPayload
	createChatCalls []CreateChatCall
}

// NewMockProviderWithText creates a MockProvider whose GenerateContent returns text.
func NewMockProviderWithText(text string) *MockProvider {
	return &MockProvider{Text: text}
}

// NewMockProviderWithError creates a MockProvider whose calls all fail with err.
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{
		Err:  err,
		Chat: &MockChatHandle{Err: err},
	}
}

// GenerateContent implements the generation.Provider interface
func (m *MockProvider) GenerateContent(
	ctx context.Context,
	model string,
	payload generation.RequestPayload,
) (generation.Response, error) {
	m.mu.Lock()
	m.generateCalls = append(m.generateCalls, payload)
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, model, payload)
	}
	if m.Err != nil {
		return generation.Response{}, m.Err
	}
	return generation.Response{Text: m.Text}, nil
}

// CreateChat implements the generation.Provider interface
func (m *MockProvider) CreateChat(
	ctx context.Context,
	model string,
	systemInstruction string,
	history []domain.Turn,
) (generation.ChatHandle, error) {
	m.mu.Lock()
	recorded := make([]domain.Turn, len(history))
	copy(recorded, history)
	m.createChatCalls = append(m.createChatCalls, CreateChatCall{
		Model:             model,
		SystemInstruction: systemInstruction,
		History:           recorded,
	})
	if m.Chat == nil && m.CreateChatFn == nil {
		m.Chat = &MockChatHandle{}
	}
	chat := m.Chat
	m.mu.Unlock()

	if m.CreateChatFn != nil {
		return m.CreateChatFn(ctx, model, systemInstruction, history)
	}
	return chat, nil
}

// GenerateCalls returns a copy of the payloads passed to GenerateContent.
func (m *MockProvider) GenerateCalls() []generation.RequestPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]generation.RequestPayload, len(m.generateCalls))
	copy(out, m.generateCalls)
	return out
}

// CreateChatCalls returns a copy of the recorded CreateChat calls.
func (m *MockProvider) CreateChatCalls() []CreateChatCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CreateChatCall, len(m.createChatCalls))
	copy(out, m.createChatCalls)
	return out
}

// Reset clears the call tracking state
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generateCalls = nil
	m.createChatCalls = nil
}
