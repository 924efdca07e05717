package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bridgepath-ai/gateway/internal/events"
	"github.com/google/uuid"
)

// TaskCreator builds a task from an event's identity and payload.
type TaskCreator interface {
	CreateTask(id uuid.UUID, taskType string, payload []byte) (Task, error)
}

// TaskSubmitter queues a task for execution.
type TaskSubmitter interface {
	Submit(ctx context.Context, task Task) error
}

// TaskFactoryEventHandler turns TaskRequestEvents into submitted tasks.
type TaskFactoryEventHandler struct {
	taskFactory TaskCreator
	taskRunner  TaskSubmitter
	logger      *slog.Logger
}

var _ events.EventHandler = (*TaskFactoryEventHandler)(nil)

// NewTaskFactoryEventHandler creates a handler.
func NewTaskFactoryEventHandler(
	taskFactory TaskCreator,
	taskRunner TaskSubmitter,
	logger *slog.Logger,
) *TaskFactoryEventHandler {
	return &TaskFactoryEventHandler{
		taskFactory: taskFactory,
		taskRunner:  taskRunner,
		logger:      logger.With("component", "task_factory_event_handler"),
	}
}

// HandleEvent creates a task whose ID is the event ID and submits it.
func (h *TaskFactoryEventHandler) HandleEvent(ctx context.Context, event *events.TaskRequestEvent) error {
	task, err := h.taskFactory.CreateTask(event.ID, event.Type, event.Payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create task",
			"error", err,
			"event_id", event.ID,
			"event_type", event.Type)
		return fmt.Errorf("failed to create task: %w", err)
	}

	if err := h.taskRunner.Submit(ctx, task); err != nil {
		h.logger.ErrorContext(ctx, "failed to submit task",
			"error", err,
			"task_id", task.ID(),
			"event_type", event.Type)
		return fmt.Errorf("failed to submit task: %w", err)
	}

	h.logger.InfoContext(ctx, "task created and submitted",
		"task_id", task.ID(),
		"task_type", task.Type())
	return nil
}
