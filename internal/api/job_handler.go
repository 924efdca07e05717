package api

import (
	"log/slog"
	"net/http"

	"github.com/bridgepath-ai/gateway/internal/api/shared"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/bridgepath-ai/gateway/internal/service"
	"github.com/bridgepath-ai/gateway/internal/task"
)

// JobHandler serves the background generation job endpoints.
type JobHandler struct {
	jobs   service.JobService
	logger *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs service.JobService, logger *slog.Logger) *JobHandler {
	if jobs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("job service cannot be nil for JobHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{
		jobs:   jobs,
		logger: logger.With(slog.String("component", "job_handler")),
	}
}

// CreateJob handles POST /api/jobs. Processing happens asynchronously, so
// the response is 202 Accepted with the job ID to poll.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	id, err := h.jobs.Enqueue(r.Context(), req.Type, req.Input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create job")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("job accepted",
		slog.String("job_id", id.String()),
		slog.String("job_type", req.Type))

	shared.RespondWithJSON(w, r, http.StatusAccepted, JobAcceptedResponse{
		ID:     id,
		Status: task.TaskStatusPending,
	})
}

// GetJob handles GET /api/jobs/{id}.
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	rec, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get job")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rec)
}
