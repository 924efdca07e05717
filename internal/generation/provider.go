package generation

import (
	"context"

	"github.com/bridgepath-ai/gateway/internal/domain"
)

// Response is the provider-neutral result of one model round trip.
type Response struct {
	// Text is the concatenated text of the first candidate.
	Text string
}

// Provider is the boundary to the remote generative model. It serves as
// the seam between the application core and the external LLM service.
type Provider interface {
	// GenerateContent performs one single-shot generation for the payload.
	GenerateContent(ctx context.Context, model string, payload RequestPayload) (Response, error)

	// CreateChat opens a stateful conversation seeded with a system
	// instruction and prior turns. The system instruction is delivered here
	// and never again on individual messages.
	CreateChat(
		ctx context.Context,
		model string,
		systemInstruction string,
		history []domain.Turn,
	) (ChatHandle, error)
}

// ChatHandle is the provider's opaque conversation state. Implementations
// are not safe for concurrent use; callers serialize SendMessage.
type ChatHandle interface {
	// SendMessage sends one user message and returns the model's reply.
	SendMessage(ctx context.Context, text string) (Response, error)
}
