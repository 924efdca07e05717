package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task lifecycle states. Completed and failed are terminal.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// Task types, one per single-shot gateway operation.
const (
	TaskTypeStartupPlan      = "startup_plan"
	TaskTypeScholarshipEssay = "scholarship_essay"
	TaskTypePitchReadiness   = "pitch_readiness"
)

// TaskTypes lists every supported task type.
var TaskTypes = []string{TaskTypeStartupPlan, TaskTypeScholarshipEssay, TaskTypePitchReadiness}

var (
	// ErrTaskNotFound is returned for unknown task IDs.
	ErrTaskNotFound = errors.New("task not found")

	// ErrQueueFull is returned by Submit when the queue has no room.
	ErrQueueFull = errors.New("task queue is full, try again later")

	// ErrUnsupportedTaskType is returned for task types with no implementation.
	ErrUnsupportedTaskType = errors.New("unsupported task type")

	// ErrTerminalStatus is returned when updating a finished task.
	ErrTerminalStatus = errors.New("task already finished")
)

// Task is a unit of background work.
type Task interface {
	ID() uuid.UUID
	Type() string
	Payload() []byte
	Status() TaskStatus
	Execute(ctx context.Context) error
}

// Record is the externally visible state of a task.
type Record struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Status    TaskStatus      `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	Demo      bool            `json:"demo"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TaskStore persists tasks and their status for the runner.
type TaskStore interface {
	SaveTask(ctx context.Context, task Task) error
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status TaskStatus, errorMsg string) error
	// GetProcessingTasks returns tasks that have been processing for longer than olderThan.
	GetProcessingTasks(ctx context.Context, olderThan time.Duration) ([]Task, error)
}

// ResultStore records task output.
type ResultStore interface {
	SetResult(ctx context.Context, taskID uuid.UUID, result any, demo bool) error
	GetRecord(ctx context.Context, taskID uuid.UUID) (Record, error)
}
