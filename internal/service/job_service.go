package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bridgepath-ai/gateway/internal/events"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/google/uuid"
)

// JobService schedules background generations.
type JobService interface {
	// Enqueue validates input for jobType and schedules it. The returned
	// ID can be passed to Get.
	Enqueue(ctx context.Context, jobType string, input task.GenerationInput) (uuid.UUID, error)

	// Get returns the current state of a job.
	Get(ctx context.Context, id uuid.UUID) (task.Record, error)
}

// RecordReader reads task records.
type RecordReader interface {
	GetRecord(ctx context.Context, taskID uuid.UUID) (task.Record, error)
}

type jobServiceImpl struct {
	emitter events.EventEmitter
	records RecordReader
	logger  *slog.Logger
}

// NewJobService creates a JobService.
func NewJobService(emitter events.EventEmitter, records RecordReader, logger *slog.Logger) (JobService, error) {
	if emitter == nil {
		return nil, errors.New("emitter cannot be nil")
	}
	if records == nil {
		return nil, errors.New("record reader cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &jobServiceImpl{
		emitter: emitter,
		records: records,
		logger:  logger.With("component", "job_service"),
	}, nil
}

// Enqueue implements JobService.
func (s *jobServiceImpl) Enqueue(ctx context.Context, jobType string, input task.GenerationInput) (uuid.UUID, error) {
	if err := input.Validate(jobType); err != nil {
		return uuid.Nil, err
	}

	event, err := events.NewTaskRequestEvent(jobType, input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrEnqueueFailed, err)
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit job event",
			"job_id", event.ID,
			"job_type", jobType,
			"error", err)
		return uuid.Nil, fmt.Errorf("%w: %w", ErrEnqueueFailed, err)
	}

	s.logger.InfoContext(ctx, "job enqueued", "job_id", event.ID, "job_type", jobType)
	return event.ID, nil
}

// Get implements JobService.
func (s *jobServiceImpl) Get(ctx context.Context, id uuid.UUID) (task.Record, error) {
	rec, err := s.records.GetRecord(ctx, id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return task.Record{}, ErrJobNotFound
	}
	if err != nil {
		return task.Record{}, fmt.Errorf("failed to load job: %w", err)
	}
	return rec, nil
}
