package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/google/uuid"
)

// Generator is the part of the gateway background tasks drive.
type Generator interface {
	TryConvertResearchToStartup(ctx context.Context, researchText string) fallback.Result[domain.StartupPlan]
	TryGenerateScholarshipEssay(ctx context.Context, scholarshipName, userDetails string) fallback.Result[string]
	TryAnalyzePitchReadiness(ctx context.Context, pitchText string) fallback.Result[domain.ReadinessAssessment]
}

// GenerationInput carries the caller text for any generation task type.
// Only the fields relevant to the type are used.
type GenerationInput struct {
	ResearchText    string `json:"research_text,omitempty"`
	ScholarshipName string `json:"scholarship_name,omitempty"`
	UserDetails     string `json:"user_details,omitempty"`
	PitchText       string `json:"pitch_text,omitempty"`
}

// Validate checks that the fields required by taskType are not blank.
func (in GenerationInput) Validate(taskType string) error {
	var required map[string]string
	switch taskType {
	case TaskTypeStartupPlan:
		required = map[string]string{"research_text": in.ResearchText}
	case TaskTypeScholarshipEssay:
		required = map[string]string{"scholarship_name": in.ScholarshipName, "user_details": in.UserDetails}
	case TaskTypePitchReadiness:
		required = map[string]string{"pitch_text": in.PitchText}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTaskType, taskType)
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domain.NewValidationError(field, "cannot be empty", domain.ErrEmptyContent)
		}
	}
	return nil
}

// GenerationTask runs one gateway operation and stores its result.
//
// A demo substitution still completes the task; the stored record carries
// the demo flag. A failure the policy did not mask fails the task.
type GenerationTask struct {
	id        uuid.UUID
	taskType  string
	input     GenerationInput
	payload   []byte
	generator Generator
	results   ResultStore
	logger    *slog.Logger

	mu     sync.Mutex
	status TaskStatus
}

var _ Task = (*GenerationTask)(nil)

// NewGenerationTask creates a pending task. The input must be valid for taskType.
func NewGenerationTask(
	id uuid.UUID,
	taskType string,
	input GenerationInput,
	generator Generator,
	results ResultStore,
	logger *slog.Logger,
) (*GenerationTask, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if results == nil {
		return nil, fmt.Errorf("result store cannot be nil")
	}
	if err := input.Validate(taskType); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task payload: %w", err)
	}

	return &GenerationTask{
		id:        id,
		taskType:  taskType,
		input:     input,
		payload:   payload,
		generator: generator,
		results:   results,
		logger:    logger.With("task_id", id, "task_type", taskType),
		status:    TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier.
func (t *GenerationTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type.
func (t *GenerationTask) Type() string {
	return t.taskType
}

// Payload returns the JSON-encoded input.
func (t *GenerationTask) Payload() []byte {
	return t.payload
}

// Status returns the task's last known status.
func (t *GenerationTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *GenerationTask) setStatus(s TaskStatus) {
	t.mu.Lock()
	t.status = s
	t.mu.Unlock()
}

// Execute runs the gateway operation and records the outcome.
func (t *GenerationTask) Execute(ctx context.Context) error {
	t.setStatus(TaskStatusProcessing)

	var (
		value any
		demo  bool
		err   error
	)

	switch t.taskType {
	case TaskTypeStartupPlan:
		res := t.generator.TryConvertResearchToStartup(ctx, t.input.ResearchText)
		value, demo, err = res.Value, res.Demo, res.Err
	case TaskTypeScholarshipEssay:
		res := t.generator.TryGenerateScholarshipEssay(ctx, t.input.ScholarshipName, t.input.UserDetails)
		value, demo, err = map[string]string{"essay": res.Value}, res.Demo, res.Err
	case TaskTypePitchReadiness:
		res := t.generator.TryAnalyzePitchReadiness(ctx, t.input.PitchText)
		value, demo, err = res.Value, res.Demo, res.Err
	default:
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("%w: %q", ErrUnsupportedTaskType, t.taskType)
	}

	if err != nil && !demo {
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("generation failed: %w", err)
	}

	if serr := t.results.SetResult(ctx, t.id, value, demo); serr != nil {
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("failed to store result: %w", serr)
	}

	t.logger.DebugContext(ctx, "generation task finished", "demo", demo)
	t.setStatus(TaskStatusCompleted)
	return nil
}
