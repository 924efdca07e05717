package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Chat    ChatConfig    `mapstructure:"chat"    validate:"required"`
	Task    TaskConfig    `mapstructure:"task"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful HTTP shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is deliberately optional: a missing key is reported as an
// authentication failure on each call, which the gateway's fallback policy
// absorbs, instead of preventing startup.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	// APIKeyParameter names an SSM parameter holding the key. Used when
	// GeminiAPIKey is empty.
	APIKeyParameter string `mapstructure:"api_key_parameter"`
	AWSRegion       string `mapstructure:"aws_region"`

	ModelName string `mapstructure:"model_name" validate:"required"`
	// BaseURL overrides the Gemini endpoint, mainly for tests and proxies.
	BaseURL               string `mapstructure:"base_url"                validate:"omitempty,url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gte=1"`
	// MaxRetries is zero by default: each gateway call is one round trip.
	MaxRetries        int `mapstructure:"max_retries"         validate:"gte=0,lte=5"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1"`
}

// GatewayConfig controls the fallback policy.
type GatewayConfig struct {
	// MaskFailures substitutes demo payloads for failed generations.
	MaskFailures bool `mapstructure:"mask_failures"`
}

// ChatConfig controls the lifetime of chat sessions held by the server.
type ChatConfig struct {
	SessionTTLMinutes    int `mapstructure:"session_ttl_minutes"    validate:"gte=1"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" validate:"gte=1"`
}

// TaskConfig contains settings for the background generation job runner.
type TaskConfig struct {
	WorkerCount         int `mapstructure:"worker_count"           validate:"gte=1"`
	QueueSize           int `mapstructure:"queue_size"             validate:"gte=1"`
	StuckTaskAgeMinutes int `mapstructure:"stuck_task_age_minutes" validate:"gte=1"`
}
