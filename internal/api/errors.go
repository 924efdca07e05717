package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/api/shared"
	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/service"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Malformed model output can wrap a domain validation error.
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	case errors.Is(err, chat.ErrSessionNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound

	case errors.Is(err, chat.ErrSessionClosed):
		return http.StatusGone

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, task.ErrUnsupportedTaskType),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, service.ErrEnqueueFailed):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that does not
// expose internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var fieldErr *domain.ValidationError

	switch {
	case errors.Is(err, generation.ErrGenerationFailed):
		return "The assistant is unavailable right now"
	case errors.Is(err, chat.ErrSessionNotFound):
		return "Chat session not found"
	case errors.Is(err, chat.ErrSessionClosed):
		return "Chat session has ended"
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, task.ErrTaskNotFound):
		return "Job not found"
	case errors.Is(err, chat.ErrEmptyMessage):
		return "Message text is required"
	case errors.Is(err, task.ErrUnsupportedTaskType):
		return "Unsupported job type"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field, fieldErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, task.ErrQueueFull), errors.Is(err, service.ErrEnqueueFailed):
		return "Job queue is busy, try again later"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message that
// names the first failing field by its JSON name.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	field := fe.Field()
	if field == "" {
		return "Validation error"
	}
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "notblank":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "uuid", "uuid4":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. defaultMsg replaces the
// generic message for otherwise unmapped errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && strings.TrimSpace(defaultMsg) != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
