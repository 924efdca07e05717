package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/generation"
	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned by every call of a Provider built without a key.
var ErrMissingAPIKey = fmt.Errorf("%w: gemini API key is not configured", generation.ErrUnauthenticated)

// classifyError maps an error from the genai client to a generation sentinel.
// The boolean reports whether retrying could help.
func classifyError(err error) (error, bool) {
	if err == nil {
		return nil, false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", generation.ErrTransientFailure, err), false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %w", generation.ErrUnauthenticated, err), false
		case apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "api key"):
			return fmt.Errorf("%w: %w", generation.ErrUnauthenticated, err), false
		case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %w", generation.ErrTransientFailure, err), true
		default:
			return fmt.Errorf("%w: %w", generation.ErrInvalidConfig, err), false
		}
	}

	// Anything else is a transport problem: DNS, TLS, connection reset.
	return fmt.Errorf("%w: %w", generation.ErrTransientFailure, err), true
}
