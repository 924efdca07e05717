package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bridgepath-ai/gateway/internal/api/shared"
	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
)

// ChatHandler serves the hackathon mentor chat endpoints.
type ChatHandler struct {
	assistant Assistant
	sessions  *chat.Registry
	logger    *slog.Logger
}

// NewChatHandler creates a ChatHandler backed by sessions.
func NewChatHandler(assistant Assistant, sessions *chat.Registry, logger *slog.Logger) *ChatHandler {
	if assistant == nil || sessions == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("assistant and sessions cannot be nil for ChatHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		assistant: assistant,
		sessions:  sessions,
		logger:    logger.With(slog.String("component", "chat_handler")),
	}
}

// CreateChat handles POST /api/chats. The body is optional.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	session := h.assistant.CreateHackathonChat(r.Context(), req.History)
	h.sessions.Add(session)

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("chat session created",
		slog.String("session_id", session.ID()),
		slog.Int("prior_turns", len(req.History)))

	shared.RespondWithJSON(w, r, http.StatusCreated, ChatSessionResponse{
		SessionID: session.ID(),
		Messages:  []domain.ChatMessage{domain.NewChatMessage(domain.RoleModel, fallback.ChatGreeting)},
	})
}

// SendMessage handles POST /api/chats/{id}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	userMessage := domain.NewChatMessage(domain.RoleUser, req.Text)
	res := h.assistant.Reply(r.Context(), session, req.Text)
	if res.Err != nil && !res.Demo {
		HandleAPIError(w, r, res.Err, "Failed to send message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SendMessageResponse{
		UserMessage: userMessage,
		Reply:       domain.NewChatMessage(domain.RoleModel, res.Value),
		Demo:        res.Demo,
	})
}

// GetChat handles GET /api/chats/{id}.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatHistoryResponse{
		SessionID:  session.ID(),
		CreatedAt:  session.CreatedAt(),
		LastActive: session.LastActive(),
		Turns:      session.History(),
	})
}

// DeleteChat handles DELETE /api/chats/{id}.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.sessions.Delete(id); err != nil {
		HandleAPIError(w, r, err, "Failed to end chat")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) lookup(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	session, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Debug("chat session not found", slog.String("session_id", id))
		}
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return session, true
}
