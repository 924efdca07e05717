package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/gateway"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/platform/gemini"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/bridgepath-ai/gateway/internal/platform/paramstore"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "bridgepath"
)

// errGenerationFailed marks a strict-mode failure so main exits non-zero
// after the error has been reported.
var errGenerationFailed = errors.New("generation failed")

// providerFactory builds the model provider once configuration is loaded.
type providerFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Provider, error)

type deps struct {
	newProvider providerFactory
}

func defaultDeps() deps {
	return deps{newProvider: newGeminiProvider}
}

func newGeminiProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Provider, error) {
	paramstore.ResolveAPIKeyFromAWS(ctx, &cfg.LLM, logger)
	return gemini.NewProvider(ctx, logger, cfg.LLM)
}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	output     string
	strict     bool
	logLevel   string
}

// env is what a subcommand needs once flags have been parsed.
type env struct {
	gateway *gateway.Gateway
	format  outputFormat
	strict  bool
	logger  *slog.Logger
}

func rootCmd(d deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "AI assistant for student founders",
		Long: `bridgepath turns research into startup plans, drafts scholarship essays,
scores pitch readiness and hosts a hackathon mentor chat.

When the model is unreachable the commands print demo results and say so.
Use --strict to fail instead.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVarP(&opts.output, "output", "o", string(formatText), "Output format (text, json, yaml)")
	flags.BoolVar(&opts.strict, "strict", false, "Report generation failures instead of printing demo results")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	setup := func(cmd *cobra.Command) (*env, error) {
		return newEnv(cmd.Context(), d, opts, cmd.ErrOrStderr())
	}

	cmd.AddCommand(
		startupCmd(setup),
		essayCmd(setup),
		pitchCmd(setup),
		chatCmd(setup),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func newEnv(ctx context.Context, d deps, opts options, stderr io.Writer) (*env, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := parseFormat(opts.output)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{ConfigFile: opts.configPath})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: opts.logLevel, Output: stderr})
	if err != nil {
		return nil, fmt.Errorf("set up logger: %w", err)
	}

	provider, err := d.newProvider(ctx, cfg, log.With("component", "llm_provider"))
	if err != nil {
		return nil, fmt.Errorf("create model provider: %w", err)
	}

	g, err := gateway.New(gateway.Config{
		Provider: provider,
		Model:    cfg.LLM.ModelName,
		Policy:   fallback.Policy{Mask: cfg.Gateway.MaskFailures && !opts.strict, Logger: log},
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	return &env{gateway: g, format: format, strict: opts.strict, logger: log}, nil
}

// readInput returns the text given as arguments, from --file, or from stdin
// when neither is set or the only argument is "-".
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	var text string
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		text = string(data)
	case len(args) == 0 || (len(args) == 1 && args[0] == "-"):
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	default:
		text = strings.Join(args, " ")
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("input text is empty")
	}
	return text, nil
}
