package task

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// GenerationTaskFactory builds GenerationTasks bound to one generator and store.
type GenerationTaskFactory struct {
	generator Generator
	results   ResultStore
	logger    *slog.Logger
}

// NewGenerationTaskFactory creates a factory.
func NewGenerationTaskFactory(generator Generator, results ResultStore, logger *slog.Logger) *GenerationTaskFactory {
	return &GenerationTaskFactory{
		generator: generator,
		results:   results,
		logger:    logger,
	}
}

// CreateTask decodes payload as GenerationInput and builds a task of taskType.
func (f *GenerationTaskFactory) CreateTask(id uuid.UUID, taskType string, payload []byte) (Task, error) {
	var input GenerationInput
	if err := json.Unmarshal(payload, &input); err != nil {
		return nil, fmt.Errorf("failed to decode task payload: %w", err)
	}
	return NewGenerationTask(id, taskType, input, f.generator, f.results, f.logger)
}
