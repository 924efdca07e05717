package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/coder/websocket"
)

// Websocket message types.
const (
	WSTypeMessage = "message"
	WSTypeReply   = "reply"
	WSTypePing    = "ping"
	WSTypePong    = "pong"
	WSTypeError   = "error"
)

const wsWriteTimeout = 10 * time.Second

// WSClientMessage is a frame sent by the browser.
type WSClientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// WSServerMessage is a frame sent to the browser.
type WSServerMessage struct {
	Type    string              `json:"type"`
	Message *domain.ChatMessage `json:"message,omitempty"`
	Demo    bool                `json:"demo,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// ServeWS handles GET /api/chats/{id}/ws. Messages on one connection are
// answered in the order they arrive.
func (h *ChatHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	log := logger.FromContextOrDefault(r.Context(), h.logger).
		With(slog.String("session_id", session.ID()))

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Warn("failed to accept websocket", "error", err)
		return
	}
	defer func() { _ = conn.CloseNow() }()

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled) {
				log.Debug("websocket closed by client")
			} else {
				log.Warn("websocket read error", "error", err)
			}
			return
		}

		reply, closeConn := h.handleFrame(ctx, session, data)
		if err := h.writeFrame(ctx, conn, reply); err != nil {
			log.Debug("websocket write error", "error", err)
			return
		}
		if closeConn {
			_ = conn.Close(websocket.StatusNormalClosure, "session ended")
			return
		}
	}
}

// handleFrame produces the answer to one client frame and whether the
// connection should be closed afterwards.
func (h *ChatHandler) handleFrame(ctx context.Context, session *chat.Session, data []byte) (WSServerMessage, bool) {
	var msg WSClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return WSServerMessage{Type: WSTypeError, Error: "invalid message format"}, false
	}

	switch msg.Type {
	case WSTypePing:
		return WSServerMessage{Type: WSTypePong}, false
	case WSTypeMessage:
		res := h.assistant.Reply(ctx, session, msg.Text)
		if res.Err != nil && !res.Demo {
			return WSServerMessage{Type: WSTypeError, Error: GetSafeErrorMessage(res.Err)},
				errors.Is(res.Err, chat.ErrSessionClosed)
		}
		reply := domain.NewChatMessage(domain.RoleModel, res.Value)
		return WSServerMessage{Type: WSTypeReply, Message: &reply, Demo: res.Demo}, false
	default:
		return WSServerMessage{Type: WSTypeError, Error: "unknown message type"}, false
	}
}

func (h *ChatHandler) writeFrame(ctx context.Context, conn *websocket.Conn, msg WSServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}
