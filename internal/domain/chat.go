package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat turn.
type Role string

// Possible chat roles, matching the remote provider's vocabulary.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleModel
}

// Turn is one message in a chat session's ordered history.
type Turn struct {
	Role Role   `json:"role" yaml:"role"`
	Text string `json:"text" yaml:"text"`
}

// Validate checks that the turn has a known role and some text. The remote
// chat drops empty turns from its history, so they are rejected here.
func (t Turn) Validate() error {
	if !t.Role.IsValid() {
		return NewValidationError("role", "must be user or model", ErrInvalidRole)
	}
	if strings.TrimSpace(t.Text) == "" {
		return NewValidationError("text", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// ChatMessage is the display form of a turn. Callers build it around each
// turn; the gateway itself only deals in Turns.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage wraps text in a ChatMessage with a fresh ID and UTC timestamp.
func NewChatMessage(role Role, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}
