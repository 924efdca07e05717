package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/api/shared"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrValidation)
	}

	return id, nil
}

// getPathParam returns a required, non-blank path parameter.
func getPathParam(r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, paramName))
	if value == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return value, nil
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing a 400 response on failure. It reports whether the handler
// should continue. When optional is set an empty body is accepted.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any, optional bool) bool {
	err := shared.DecodeJSON(r, req)
	switch {
	case err == nil, optional && errors.Is(err, shared.ErrEmptyBody):
	case errors.Is(err, shared.ErrEmptyBody):
		HandleAPIError(w, r, err, "")
		return false
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
