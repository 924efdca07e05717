package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/google/uuid"
)

// Manager creates mentor sessions against a provider.
type Manager struct {
	provider generation.Provider
	model    string
	persona  string
	logger   *slog.Logger
}

// NewManager creates a Manager for the given provider and model.
func NewManager(provider generation.Provider, model string, logger *slog.Logger) (*Manager, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		provider: provider,
		model:    model,
		persona:  Persona,
		logger:   logger.With("component", "chat_manager"),
	}, nil
}

// CreateSession starts a session seeded with priorHistory. It never fails:
// if the provider cannot open a chat now, the session retries on its first
// send. Invalid prior turns are dropped.
func (m *Manager) CreateSession(ctx context.Context, priorHistory []domain.Turn) *Session {
	history := make([]domain.Turn, 0, len(priorHistory))
	for i, turn := range priorHistory {
		if err := turn.Validate(); err != nil {
			m.logger.WarnContext(ctx, "dropping invalid prior turn", "index", i, "error", err)
			continue
		}
		history = append(history, turn)
	}

	s := newSession(uuid.NewString(), m, history)

	handle, err := m.provider.CreateChat(ctx, m.model, m.persona, history)
	if err != nil {
		m.logger.WarnContext(ctx, "chat creation deferred to first message",
			"session_id", s.id,
			"failure_kind", string(generation.Classify(err)))
	} else {
		s.handle = handle
	}

	m.logger.DebugContext(ctx, "chat session created",
		"session_id", s.id,
		"prior_turns", len(history))

	return s
}
