package fallback

import (
	"context"
	"log/slog"

	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/redact"
)

// Result is the outcome of a gateway operation.
//
// When Demo is true Value holds the demo payload and Err the failure it
// replaced. When Demo is false and Err is nil Value is a real generation.
type Result[T any] struct {
	Value T
	Err   error
	Demo  bool
}

// OK reports whether Value came from a successful generation.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Policy decides what a caller sees after a failed generation.
type Policy struct {
	// Mask substitutes demo payloads for failures. When false the failure
	// is returned with a zero Value.
	Mask bool

	Logger *slog.Logger
}

// DefaultPolicy masks failures and logs through slog.Default.
func DefaultPolicy() Policy {
	return Policy{Mask: true, Logger: slog.Default()}
}

// Apply resolves the outcome of operation op. value and err are the raw
// generation outcome; demo supplies the substitute payload.
func Apply[T any](ctx context.Context, p Policy, op string, value T, err error, demo func() T) Result[T] {
	if err == nil {
		return Result[T]{Value: value}
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.WarnContext(ctx, "generation failed",
		"operation", op,
		"failure_kind", string(generation.Classify(err)),
		"masked", p.Mask,
		"error", redact.Error(err))

	if !p.Mask {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}

	return Result[T]{Value: demo(), Err: err, Demo: true}
}
