package task

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type storedTask struct {
	task     Task
	record   Record
	statusAt time.Time
}

// MemoryStore keeps tasks and results in process memory. It implements
// TaskStore and ResultStore.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*storedTask
	now   func() time.Time
}

var (
	_ TaskStore   = (*MemoryStore)(nil)
	_ ResultStore = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[uuid.UUID]*storedTask),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SaveTask stores task as pending.
func (s *MemoryStore) SaveTask(_ context.Context, task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.tasks[task.ID()] = &storedTask{
		task: task,
		record: Record{
			ID:        task.ID(),
			Type:      task.Type(),
			Status:    TaskStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		statusAt: now,
	}
	return nil
}

// UpdateTaskStatus moves a task to status. Finished tasks cannot change.
func (s *MemoryStore) UpdateTaskStatus(_ context.Context, taskID uuid.UUID, status TaskStatus, errorMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.tasks[taskID]
	if !ok {
		return ErrTaskNotFound
	}
	if st.record.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrTerminalStatus, taskID, st.record.Status)
	}

	now := s.now()
	st.record.Status = status
	st.record.Error = errorMsg
	st.record.UpdatedAt = now
	st.statusAt = now
	return nil
}

// GetProcessingTasks returns tasks processing since before now minus olderThan.
func (s *MemoryStore) GetProcessingTasks(_ context.Context, olderThan time.Duration) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-olderThan)
	var out []Task
	for _, st := range s.tasks {
		if st.record.Status == TaskStatusProcessing && !st.statusAt.After(cutoff) {
			out = append(out, st.task)
		}
	}
	return out, nil
}

// SetResult stores the JSON encoding of result.
func (s *MemoryStore) SetResult(_ context.Context, taskID uuid.UUID, result any, demo bool) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode task result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.tasks[taskID]
	if !ok {
		return ErrTaskNotFound
	}
	st.record.Result = data
	st.record.Demo = demo
	st.record.UpdatedAt = s.now()
	return nil
}

// GetRecord returns a copy of the task's record.
func (s *MemoryStore) GetRecord(_ context.Context, taskID uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.tasks[taskID]
	if !ok {
		return Record{}, ErrTaskNotFound
	}
	rec := st.record
	if rec.Result != nil {
		rec.Result = append(json.RawMessage(nil), rec.Result...)
	}
	return rec, nil
}
