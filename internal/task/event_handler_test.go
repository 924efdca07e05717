package task

import (
	"context"
	"errors"
	"testing"

	"github.com/bridgepath-ai/gateway/internal/events"
	"github.com/bridgepath-ai/gateway/internal/mocks"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	submitted []Task
	err       error
}

func (s *recordingSubmitter) Submit(_ context.Context, task Task) error {
	s.submitted = append(s.submitted, task)
	return s.err
}

type failingCreator struct{}

func (failingCreator) CreateTask(uuid.UUID, string, []byte) (Task, error) {
	return nil, errors.New("factory error")
}

func TestTaskFactoryEventHandler_HandleEvent(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)
	ctx := context.Background()

	factory := NewGenerationTaskFactory(newTestGateway(t, &mocks.MockProvider{}, true), NewMemoryStore(), log)

	t.Run("creates and submits", func(t *testing.T) {
		t.Parallel()
		submitter := &recordingSubmitter{}
		handler := NewTaskFactoryEventHandler(factory, submitter, log)

		event, err := events.NewTaskRequestEvent(TaskTypeStartupPlan, GenerationInput{ResearchText: "drones"})
		require.NoError(t, err)

		require.NoError(t, handler.HandleEvent(ctx, event))
		require.Len(t, submitter.submitted, 1)
		assert.Equal(t, event.ID, submitter.submitted[0].ID())
		assert.Equal(t, TaskTypeStartupPlan, submitter.submitted[0].Type())
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		submitter := &recordingSubmitter{}
		handler := NewTaskFactoryEventHandler(factory, submitter, log)

		event, err := events.NewTaskRequestEvent(TaskTypeStartupPlan, GenerationInput{})
		require.NoError(t, err)

		assert.Error(t, handler.HandleEvent(ctx, event))
		assert.Empty(t, submitter.submitted)
	})

	t.Run("factory error", func(t *testing.T) {
		t.Parallel()
		handler := NewTaskFactoryEventHandler(failingCreator{}, &recordingSubmitter{}, log)

		event, err := events.NewTaskRequestEvent(TaskTypeStartupPlan, GenerationInput{ResearchText: "x"})
		require.NoError(t, err)

		assert.ErrorContains(t, handler.HandleEvent(ctx, event), "factory error")
	})

	t.Run("submit error", func(t *testing.T) {
		t.Parallel()
		handler := NewTaskFactoryEventHandler(factory, &recordingSubmitter{err: ErrQueueFull}, log)

		event, err := events.NewTaskRequestEvent(TaskTypePitchReadiness, GenerationInput{PitchText: "x"})
		require.NoError(t, err)

		assert.ErrorIs(t, handler.HandleEvent(ctx, event), ErrQueueFull)
	})
}
