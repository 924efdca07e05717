package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/events"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/gateway"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/platform/gemini"
	"github.com/bridgepath-ai/gateway/internal/platform/paramstore"
	"github.com/bridgepath-ai/gateway/internal/service"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	metricsRegistry *prometheus.Registry
	gateway         *gateway.Gateway
	sessions        *chat.Registry

	// Background jobs
	taskStore    *task.MemoryStore
	eventEmitter *events.InMemoryEventEmitter
	taskRunner   *task.TaskRunner
	jobService   service.JobService
}

// newApplication resolves the model credentials, builds the Gemini provider
// and wires the rest of the application around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	paramstore.ResolveAPIKeyFromAWS(ctx, &cfg.LLM, logger)

	provider, err := gemini.NewProvider(ctx, logger.With("component", "llm_provider"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	logger.Info("LLM provider initialized", "model", cfg.LLM.ModelName)

	return newApplicationWithProvider(cfg, logger, provider)
}

// newApplicationWithProvider wires every component around provider and
// starts the background workers.
func newApplicationWithProvider(
	cfg *config.Config,
	logger *slog.Logger,
	provider generation.Provider,
) (*application, error) {
	app := &application{
		config:          cfg,
		logger:          logger,
		metricsRegistry: prometheus.NewRegistry(),
	}

	app.metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := gateway.NewMetrics(app.metricsRegistry)
	if err != nil {
		return nil, fmt.Errorf("failed to register gateway metrics: %w", err)
	}

	app.gateway, err = gateway.New(gateway.Config{
		Provider: provider,
		Model:    cfg.LLM.ModelName,
		Policy: fallback.Policy{
			Mask:   cfg.Gateway.MaskFailures,
			Logger: logger.With("component", "fallback"),
		},
		Metrics: metrics,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	app.sessions = chat.NewRegistry(chat.RegistryConfig{
		TTL:           time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute,
		SweepInterval: time.Duration(cfg.Chat.SweepIntervalSeconds) * time.Second,
	}, logger)
	app.sessions.Start()

	app.taskStore = task.NewMemoryStore()
	app.taskRunner = setupTaskRunner(app)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	factory := task.NewGenerationTaskFactory(app.gateway, app.taskStore, logger)
	handler := task.NewTaskFactoryEventHandler(factory, app.taskRunner, logger)
	app.eventEmitter.RegisterHandler(handler, task.TaskTypes...)

	app.jobService, err = service.NewJobService(app.eventEmitter, app.taskStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create job service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setupTaskRunner creates and starts the background job runner.
func setupTaskRunner(app *application) *task.TaskRunner {
	runner := task.NewTaskRunner(app.taskStore, task.TaskRunnerConfig{
		QueueSize:    app.config.Task.QueueSize,
		WorkerCount:  app.config.Task.WorkerCount,
		StuckTaskAge: time.Duration(app.config.Task.StuckTaskAgeMinutes) * time.Minute,
	}, app.logger)

	runner.Start()
	return runner
}

// cleanup stops the background workers.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}
	if app.sessions != nil {
		app.sessions.Stop()
	}
	app.logger.Info("Application resources released")
}
