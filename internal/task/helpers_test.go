package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// stubTask is a minimal Task for runner tests.
type stubTask struct {
	id        uuid.UUID
	taskType  string
	executeFn func(ctx context.Context) error

	mu     sync.Mutex
	status TaskStatus
}

func newStubTask(executeFn func(ctx context.Context) error) *stubTask {
	if executeFn == nil {
		executeFn = func(context.Context) error { return nil }
	}
	return &stubTask{
		id:        uuid.New(),
		taskType:  "stub",
		executeFn: executeFn,
		status:    TaskStatusPending,
	}
}

func (t *stubTask) ID() uuid.UUID   { return t.id }
func (t *stubTask) Type() string    { return t.taskType }
func (t *stubTask) Payload() []byte { return nil }

func (t *stubTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *stubTask) Execute(ctx context.Context) error {
	err := t.executeFn(ctx)
	t.mu.Lock()
	if err != nil {
		t.status = TaskStatusFailed
	} else {
		t.status = TaskStatusCompleted
	}
	t.mu.Unlock()
	return err
}
