package main

import (
	"net/http"

	"github.com/bridgepath-ai/gateway/internal/api"
	apiMiddleware "github.com/bridgepath-ai/gateway/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	generationHandler := api.NewGenerationHandler(app.gateway, app.logger)
	chatHandler := api.NewChatHandler(app.gateway, app.sessions, app.logger)
	jobHandler := api.NewJobHandler(app.jobService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/startup-plans", generationHandler.CreateStartupPlan)
		r.Post("/essays", generationHandler.CreateEssay)
		r.Post("/pitch-readiness", generationHandler.AnalyzePitch)

		r.Route("/chats", func(r chi.Router) {
			r.Post("/", chatHandler.CreateChat)
			r.Get("/{id}", chatHandler.GetChat)
			r.Delete("/{id}", chatHandler.DeleteChat)
			r.Post("/{id}/messages", chatHandler.SendMessage)
			r.Get("/{id}/ws", chatHandler.ServeWS)
		})

		r.Post("/jobs", jobHandler.CreateJob)
		r.Get("/jobs/{id}", jobHandler.GetJob)
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.metricsRegistry, promhttp.HandlerOpts{}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
