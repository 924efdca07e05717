package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bridgepath-ai/gateway/internal/api/shared"
	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
)

// Assistant is the gateway surface used by the HTTP handlers.
type Assistant interface {
	TryConvertResearchToStartup(ctx context.Context, researchText string) fallback.Result[domain.StartupPlan]
	TryGenerateScholarshipEssay(ctx context.Context, scholarshipName, userDetails string) fallback.Result[string]
	TryAnalyzePitchReadiness(ctx context.Context, pitchText string) fallback.Result[domain.ReadinessAssessment]
	CreateHackathonChat(ctx context.Context, priorHistory []domain.Turn) *chat.Session
	Reply(ctx context.Context, session *chat.Session, message string) fallback.Result[string]
}

// GenerationHandler serves the one-shot generation endpoints.
type GenerationHandler struct {
	assistant Assistant
	logger    *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(assistant Assistant, logger *slog.Logger) *GenerationHandler {
	if assistant == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("assistant cannot be nil for GenerationHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		assistant: assistant,
		logger:    logger.With(slog.String("component", "generation_handler")),
	}
}

// CreateStartupPlan handles POST /api/startup-plans.
func (h *GenerationHandler) CreateStartupPlan(w http.ResponseWriter, r *http.Request) {
	var req StartupPlanRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	res := h.assistant.TryConvertResearchToStartup(r.Context(), req.ResearchText)
	if !h.usable(w, r, "startup plan", res.Err, res.Demo) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StartupPlanResponse{
		StartupPlan: res.Value,
		Demo:        res.Demo,
	})
}

// CreateEssay handles POST /api/essays.
func (h *GenerationHandler) CreateEssay(w http.ResponseWriter, r *http.Request) {
	var req EssayRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	res := h.assistant.TryGenerateScholarshipEssay(r.Context(), req.ScholarshipName, req.UserDetails)
	if !h.usable(w, r, "essay", res.Err, res.Demo) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EssayResponse{Essay: res.Value, Demo: res.Demo})
}

// AnalyzePitch handles POST /api/pitch-readiness.
func (h *GenerationHandler) AnalyzePitch(w http.ResponseWriter, r *http.Request) {
	var req PitchReadinessRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	res := h.assistant.TryAnalyzePitchReadiness(r.Context(), req.PitchText)
	if !h.usable(w, r, "pitch readiness", res.Err, res.Demo) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PitchReadinessResponse{
		ReadinessAssessment: res.Value,
		Demo:                res.Demo,
	})
}

// usable reports whether a result can be returned to the client. Demo
// results are usable; an unmasked failure is written as an error response.
func (h *GenerationHandler) usable(w http.ResponseWriter, r *http.Request, what string, err error, demo bool) bool {
	if err == nil || demo {
		if demo {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Info("serving demo result", slog.String("result", what))
		}
		return true
	}
	HandleAPIError(w, r, err, "Failed to generate "+what)
	return false
}
