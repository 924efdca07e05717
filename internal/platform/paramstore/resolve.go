package paramstore

import (
	"context"
	"log/slog"

	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/redact"
)

// ResolveAPIKey fills cfg.GeminiAPIKey from the parameter named by
// cfg.APIKeyParameter when no key is configured directly.
//
// Lookup failures are logged and leave the key empty: the gateway then
// runs on demo payloads instead of refusing to start.
func ResolveAPIKey(ctx context.Context, getter Getter, cfg *config.LLMConfig, logger *slog.Logger) {
	if cfg.GeminiAPIKey != "" || cfg.APIKeyParameter == "" {
		return
	}
	if getter == nil {
		logger.WarnContext(ctx, "no parameter store available for API key lookup",
			"parameter", cfg.APIKeyParameter)
		return
	}

	key, err := getter.GetParameter(ctx, cfg.APIKeyParameter)
	if err != nil {
		logger.WarnContext(ctx, "failed to resolve API key from parameter store",
			"parameter", cfg.APIKeyParameter,
			"error", redact.Error(err))
		return
	}

	cfg.GeminiAPIKey = key
	logger.InfoContext(ctx, "resolved API key from parameter store",
		"parameter", cfg.APIKeyParameter)
}

// ResolveAPIKeyFromAWS is ResolveAPIKey backed by the default AWS
// credentials chain. The AWS client is only created when a lookup is needed.
func ResolveAPIKeyFromAWS(ctx context.Context, cfg *config.LLMConfig, logger *slog.Logger) {
	if cfg.GeminiAPIKey != "" || cfg.APIKeyParameter == "" {
		return
	}

	var getter Getter
	client, err := NewFromAWS(ctx, cfg.AWSRegion)
	if err != nil {
		logger.WarnContext(ctx, "failed to create parameter store client", "error", redact.Error(err))
	} else {
		getter = client
	}

	ResolveAPIKey(ctx, getter, cfg, logger)
}
