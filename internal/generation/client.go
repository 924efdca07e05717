package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// RawResult is the unparsed outcome of a generation call.
type RawResult struct {
	Text string
}

// Client performs exactly one request/response round trip per call against
// a Provider. It never retries and never caches.
type Client struct {
	provider Provider
	model    string
	logger   *slog.Logger
}

// NewClient creates a Client for the given provider and model name.
func NewClient(provider Provider, model string, logger *slog.Logger) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", ErrInvalidConfig)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		provider: provider,
		model:    model,
		logger:   logger.With("component", "generation_client"),
	}, nil
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Generate sends payload to the provider and returns the raw text.
// An empty text result is reported as ErrEmptyResponse.
func (c *Client) Generate(ctx context.Context, payload RequestPayload) (RawResult, error) {
	c.logger.DebugContext(ctx, "sending generation request",
		"operation", payload.Operation,
		"model", c.model,
		"structured", payload.Structured(),
		"prompt_length", len(payload.Instruction))

	resp, err := c.provider.GenerateContent(ctx, c.model, payload)
	if err != nil {
		if !errors.Is(err, ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", ErrTransientFailure, err)
		}
		return RawResult{}, err
	}

	if strings.TrimSpace(resp.Text) == "" {
		return RawResult{}, ErrEmptyResponse
	}

	c.logger.DebugContext(ctx, "generation request succeeded",
		"operation", payload.Operation,
		"response_length", len(resp.Text))

	return RawResult{Text: resp.Text}, nil
}

// GenerateJSON calls Generate and decodes the text into target. Beyond the
// parse attempt no structural validation is performed here.
func (c *Client) GenerateJSON(ctx context.Context, payload RequestPayload, target any) error {
	raw, err := c.Generate(ctx, payload)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw.Text), target); err != nil {
		return fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}

	return nil
}
