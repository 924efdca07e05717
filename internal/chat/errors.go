package chat

import "errors"

var (
	// ErrEmptyMessage is returned by Send for a blank message.
	ErrEmptyMessage = errors.New("chat message cannot be empty")

	// ErrSessionNotFound is returned by Registry lookups for unknown or expired IDs.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrSessionClosed is returned by Send after the session was closed.
	ErrSessionClosed = errors.New("chat session closed")
)
