package api

import (
	"time"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/google/uuid"
)

// StartupPlanRequest is the body of POST /api/startup-plans.
type StartupPlanRequest struct {
	ResearchText string `json:"research_text" validate:"required,notblank"`
}

// StartupPlanResponse is a generated plan plus whether it is the demo plan.
type StartupPlanResponse struct {
	domain.StartupPlan
	Demo bool `json:"demo"`
}

// EssayRequest is the body of POST /api/essays.
type EssayRequest struct {
	ScholarshipName string `json:"scholarship_name" validate:"required,notblank"`
	UserDetails     string `json:"user_details"     validate:"required,notblank"`
}

// EssayResponse carries the essay draft.
type EssayResponse struct {
	Essay string `json:"essay"`
	Demo  bool   `json:"demo"`
}

// PitchReadinessRequest is the body of POST /api/pitch-readiness.
type PitchReadinessRequest struct {
	PitchText string `json:"pitch_text" validate:"required,notblank"`
}

// PitchReadinessResponse is a readiness assessment plus the demo flag.
type PitchReadinessResponse struct {
	domain.ReadinessAssessment
	Demo bool `json:"demo"`
}

// CreateChatRequest is the optional body of POST /api/chats.
type CreateChatRequest struct {
	History []domain.Turn `json:"history" validate:"max=200"`
}

// ChatSessionResponse describes a newly opened chat.
type ChatSessionResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []domain.ChatMessage `json:"messages"`
}

// SendMessageRequest is the body of POST /api/chats/{id}/messages.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// SendMessageResponse pairs the user's message with the mentor reply.
type SendMessageResponse struct {
	UserMessage domain.ChatMessage `json:"user_message"`
	Reply       domain.ChatMessage `json:"reply"`
	Demo        bool               `json:"demo"`
}

// ChatHistoryResponse is the transcript of a chat session.
type ChatHistoryResponse struct {
	SessionID  string        `json:"session_id"`
	CreatedAt  time.Time     `json:"created_at"`
	LastActive time.Time     `json:"last_active"`
	Turns      []domain.Turn `json:"turns"`
}

// CreateJobRequest is the body of POST /api/jobs.
type CreateJobRequest struct {
	Type  string               `json:"type"  validate:"required,notblank"`
	Input task.GenerationInput `json:"input"`
}

// JobAcceptedResponse is returned when a job has been queued.
type JobAcceptedResponse struct {
	ID     uuid.UUID       `json:"id"`
	Status task.TaskStatus `json:"status"`
}
