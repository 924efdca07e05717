package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is the umbrella for any failed generation.
	// Every other error in this file wraps it.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrTransientFailure is returned for transport or availability errors
	// (unreachable service, timeout, rate limiting, 5xx).
	ErrTransientFailure = wrap("transient error during generation")

	// ErrUnauthenticated is returned when the credential is missing or rejected.
	ErrUnauthenticated = wrap("language model credential missing or invalid")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = wrap("invalid response from language model")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = wrap("language model returned no text")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = wrap("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the provider configuration is invalid
	ErrInvalidConfig = wrap("invalid generator configuration")
)

type kindError struct {
	msg string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return ErrGenerationFailed }

func wrap(msg string) error {
	return &kindError{msg: msg}
}

// FailureKind is the coarse category a generation failure belongs to.
type FailureKind string

// Failure categories. All of them are handled identically by the fallback
// policy; the distinction exists for logs and metrics.
const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureAuth      FailureKind = "auth"
	FailureMalformed FailureKind = "malformed"
)

// Classify maps an error to its failure category. Unknown errors count as
// transport failures.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrUnauthenticated):
		return FailureAuth
	case errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrContentBlocked):
		return FailureMalformed
	default:
		return FailureTransport
	}
}
