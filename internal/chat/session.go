package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
)

// Session is one mentor conversation. It is safe for concurrent use; sends
// are applied one at a time in the order they were issued.
type Session struct {
	id      string
	manager *Manager
	created time.Time

	mu         sync.Mutex
	handle     generation.ChatHandle
	history    []domain.Turn
	lastActive time.Time
	closed     bool
	// tail is closed when the most recently queued send completes.
	tail chan struct{}
}

func newSession(id string, m *Manager, history []domain.Turn) *Session {
	now := time.Now().UTC()
	done := make(chan struct{})
	close(done)
	return &Session{
		id:         id,
		manager:    m,
		created:    now,
		history:    history,
		lastActive: now,
		tail:       done,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.created
}

// LastActive returns the time of the last send attempt.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// History returns a copy of the recorded turns.
func (s *Session) History() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Close marks the session unusable. Queued sends fail with ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.handle = nil
}

// Send records message as a user turn, forwards it to the provider and
// records the reply as a model turn. On failure the user turn is kept and
// the error is returned.
//
// A send that is still waiting for its predecessors gives up when ctx is
// done, without recording anything.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	prev := s.tail
	next := make(chan struct{})
	s.tail = next
	s.mu.Unlock()

	select {
	case <-prev:
	case <-ctx.Done():
		// Keep the queue intact for later senders.
		go func() {
			<-prev
			close(next)
		}()
		return "", ctx.Err()
	}
	defer close(next)

	return s.send(ctx, message)
}

func (s *Session) send(ctx context.Context, message string) (string, error) {
	logger := s.manager.logger.With("session_id", s.id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrSessionClosed
	}
	prior := make([]domain.Turn, len(s.history))
	copy(prior, s.history)
	s.history = append(s.history, domain.Turn{Role: domain.RoleUser, Text: message})
	s.lastActive = time.Now().UTC()
	handle := s.handle
	s.mu.Unlock()

	if handle == nil {
		var err error
		handle, err = s.manager.provider.CreateChat(ctx, s.manager.model, s.manager.persona, prior)
		if err != nil {
			if !errors.Is(err, generation.ErrGenerationFailed) {
				err = fmt.Errorf("%w: %w", generation.ErrTransientFailure, err)
			}
			logger.WarnContext(ctx, "chat creation failed",
				"failure_kind", string(generation.Classify(err)))
			return "", err
		}

		s.mu.Lock()
		if !s.closed {
			s.handle = handle
		}
		s.mu.Unlock()
	}

	resp, err := handle.SendMessage(ctx, message)
	if err == nil && strings.TrimSpace(resp.Text) == "" {
		err = generation.ErrEmptyResponse
	}
	if err != nil {
		if !errors.Is(err, generation.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", generation.ErrTransientFailure, err)
		}
		logger.WarnContext(ctx, "chat message failed",
			"failure_kind", string(generation.Classify(err)))
		return "", err
	}

	s.mu.Lock()
	s.history = append(s.history, domain.Turn{Role: domain.RoleModel, Text: resp.Text})
	s.lastActive = time.Now().UTC()
	s.mu.Unlock()

	return resp.Text, nil
}
