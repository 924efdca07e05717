package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"google.golang.org/genai"
)

// modelsAPI is the subset of genai.Models used by the provider.
type modelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		cfg *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// chatSender is the subset of genai.Chat used by chat handles.
type chatSender interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type chatFactory func(
	ctx context.Context,
	model string,
	chatConfig *genai.GenerateContentConfig,
	history []*genai.Content,
) (chatSender, error)

// Provider implements generation.Provider using Google's Gemini API.
type Provider struct {
	logger  *slog.Logger
	config  config.LLMConfig
	models  modelsAPI
	newChat chatFactory
}

var _ generation.Provider = (*Provider)(nil)

// NewProvider creates a Provider for the given configuration.
//
// An empty API key is not an error. The returned Provider fails every call
// with ErrMissingAPIKey, letting the caller's fallback policy take over.
func NewProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	logger = logger.With("component", "gemini_provider")

	if cfg.GeminiAPIKey == "" {
		logger.WarnContext(ctx, "Gemini API key is not configured, all generations will fail over")
		return newProvider(logger, cfg, nil, nil), nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.RequestTimeoutSeconds > 0 {
		clientConfig.HTTPClient = &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		}
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	newChat := func(
		ctx context.Context,
		model string,
		chatConfig *genai.GenerateContentConfig,
		history []*genai.Content,
	) (chatSender, error) {
		return client.Chats.Create(ctx, model, chatConfig, history)
	}

	return newProvider(logger, cfg, client.Models, newChat), nil
}

func newProvider(logger *slog.Logger, cfg config.LLMConfig, models modelsAPI, newChat chatFactory) *Provider {
	return &Provider{
		logger:  logger,
		config:  cfg,
		models:  models,
		newChat: newChat,
	}
}

// GenerateContent implements generation.Provider.
func (p *Provider) GenerateContent(
	ctx context.Context,
	model string,
	payload generation.RequestPayload,
) (generation.Response, error) {
	if p.models == nil {
		return generation.Response{}, ErrMissingAPIKey
	}
	if payload.Instruction == "" {
		return generation.Response{}, fmt.Errorf("%w: empty instruction", generation.ErrInvalidConfig)
	}

	text, err := p.generateWithRetry(ctx, model, payload)
	if err != nil {
		return generation.Response{}, err
	}
	return generation.Response{Text: text}, nil
}

// generateWithRetry calls the API, retrying transient failures with
// exponential backoff up to config.MaxRetries times.
func (p *Provider) generateWithRetry(ctx context.Context, model string, payload generation.RequestPayload) (string, error) {
	maxRetries := p.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelaySeconds := p.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	contents := []*genai.Content{textContent(domain.RoleUser, payload.Instruction)}
	cfg := generateConfig(payload)

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		p.logger.DebugContext(ctx, "Making Gemini API call",
			"operation", payload.Operation,
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		resp, err := p.models.GenerateContent(ctx, model, contents, cfg)

		var retryable bool
		var text string
		if err != nil {
			err, retryable = classifyError(err)
		} else {
			text, err = responseText(resp)
		}

		if err == nil {
			return text, nil
		}

		p.logger.WarnContext(ctx, "Gemini API call failed",
			"operation", payload.Operation,
			"attempt", attemptNum,
			"error", err)

		if !retryable {
			return "", err
		}
		if attempt >= maxRetries {
			if maxRetries > 0 {
				return "", fmt.Errorf("%w (exceeded maximum retry attempts: %d)", err, maxRetries)
			}
			return "", err
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoffSeconds * (0.5 + rand.Float64()*0.5) * float64(time.Second))

		p.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// CreateChat implements generation.Provider. The system instruction is
// installed on the chat configuration once.
func (p *Provider) CreateChat(
	ctx context.Context,
	model string,
	systemInstruction string,
	history []domain.Turn,
) (generation.ChatHandle, error) {
	if p.newChat == nil {
		return nil, ErrMissingAPIKey
	}

	var cfg *genai.GenerateContentConfig
	if systemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: textContent(domain.RoleUser, systemInstruction),
		}
	}

	chat, err := p.newChat(ctx, model, cfg, toHistory(history))
	if err != nil {
		err, _ = classifyError(err)
		return nil, err
	}

	p.logger.DebugContext(ctx, "Gemini chat created",
		"model", model,
		"history_turns", len(history))

	return &chatHandle{chat: chat, logger: p.logger}, nil
}

// chatHandle adapts a genai chat to generation.ChatHandle.
type chatHandle struct {
	chat   chatSender
	logger *slog.Logger
}

// SendMessage implements generation.ChatHandle. Chat messages are never
// retried since the remote history may already contain the turn.
func (h *chatHandle) SendMessage(ctx context.Context, text string) (generation.Response, error) {
	resp, err := h.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		err, _ = classifyError(err)
		h.logger.WarnContext(ctx, "Gemini chat message failed", "error", err)
		return generation.Response{}, err
	}

	reply, err := responseText(resp)
	if err != nil {
		return generation.Response{}, err
	}
	return generation.Response{Text: reply}, nil
}
