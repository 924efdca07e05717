package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/prompt"
)

// Operation names used in logs and metrics beyond the prompt operations.
const (
	OperationChatCreate  = "chat_create"
	OperationChatMessage = "chat_message"
)

// Config holds the Gateway's dependencies. The caller owns their lifecycle.
type Config struct {
	Provider generation.Provider
	Model    string
	Policy   fallback.Policy
	// Metrics is optional.
	Metrics *Metrics
	Logger  *slog.Logger
}

// Gateway exposes the AI-backed operations.
type Gateway struct {
	client  *generation.Client
	chats   *chat.Manager
	policy  fallback.Policy
	metrics *Metrics
	logger  *slog.Logger
}

// New creates a Gateway from its dependencies.
func New(cfg Config) (*Gateway, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := generation.NewClient(cfg.Provider, cfg.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	chats, err := chat.NewManager(cfg.Provider, cfg.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat manager: %w", err)
	}

	policy := cfg.Policy
	if policy.Logger == nil {
		policy.Logger = logger
	}

	return &Gateway{
		client:  client,
		chats:   chats,
		policy:  policy,
		metrics: cfg.Metrics,
		logger:  logger.With("component", "gateway"),
	}, nil
}

// TryConvertResearchToStartup turns research text into a StartupPlan.
// A plan missing required fields counts as malformed output.
func (g *Gateway) TryConvertResearchToStartup(ctx context.Context, researchText string) fallback.Result[domain.StartupPlan] {
	return g.convertResearchToStartup(ctx, g.policy, researchText)
}

// ConvertResearchToStartup is TryConvertResearchToStartup that always
// returns a plan.
func (g *Gateway) ConvertResearchToStartup(ctx context.Context, researchText string) domain.StartupPlan {
	return g.convertResearchToStartup(ctx, g.masking(), researchText).Value
}

func (g *Gateway) convertResearchToStartup(ctx context.Context, p fallback.Policy, researchText string) fallback.Result[domain.StartupPlan] {
	start := time.Now()
	payload := prompt.BuildResearchToStartup(researchText)

	var plan domain.StartupPlan
	err := g.client.GenerateJSON(ctx, payload, &plan)
	if err == nil {
		if verr := plan.Validate(); verr != nil {
			err = fmt.Errorf("%w: %w", generation.ErrInvalidResponse, verr)
		}
	}

	return finish(ctx, g, p, payload.Operation, start, plan, err, fallback.StartupPlan)
}

// TryGenerateScholarshipEssay writes an essay for the named scholarship.
func (g *Gateway) TryGenerateScholarshipEssay(ctx context.Context, scholarshipName, userDetails string) fallback.Result[string] {
	return g.generateScholarshipEssay(ctx, g.policy, scholarshipName, userDetails)
}

// GenerateScholarshipEssay is TryGenerateScholarshipEssay that always
// returns an essay.
func (g *Gateway) GenerateScholarshipEssay(ctx context.Context, scholarshipName, userDetails string) string {
	return g.generateScholarshipEssay(ctx, g.masking(), scholarshipName, userDetails).Value
}

func (g *Gateway) generateScholarshipEssay(ctx context.Context, p fallback.Policy, scholarshipName, userDetails string) fallback.Result[string] {
	start := time.Now()
	payload := prompt.BuildEssay(scholarshipName, userDetails)

	raw, err := g.client.Generate(ctx, payload)

	return finish(ctx, g, p, payload.Operation, start, raw.Text, err, fallback.Essay)
}

// TryAnalyzePitchReadiness scores a pitch. Scores outside the advisory
// range are passed through unchanged and logged.
func (g *Gateway) TryAnalyzePitchReadiness(ctx context.Context, pitchText string) fallback.Result[domain.ReadinessAssessment] {
	return g.analyzePitchReadiness(ctx, g.policy, pitchText)
}

// AnalyzePitchReadiness is TryAnalyzePitchReadiness that always returns an
// assessment.
func (g *Gateway) AnalyzePitchReadiness(ctx context.Context, pitchText string) domain.ReadinessAssessment {
	return g.analyzePitchReadiness(ctx, g.masking(), pitchText).Value
}

func (g *Gateway) analyzePitchReadiness(ctx context.Context, p fallback.Policy, pitchText string) fallback.Result[domain.ReadinessAssessment] {
	start := time.Now()
	payload := prompt.BuildPitchAnalysis(pitchText)

	var (
		reply      readinessReply
		assessment domain.ReadinessAssessment
	)
	err := g.client.GenerateJSON(ctx, payload, &reply)
	if err == nil && reply.Score == nil {
		err = fmt.Errorf("%w: readiness reply has no score", generation.ErrInvalidResponse)
	}
	if err == nil {
		assessment = domain.ReadinessAssessment{Score: *reply.Score, Feedback: reply.Feedback}
		if verr := assessment.Validate(); verr != nil {
			err = fmt.Errorf("%w: %w", generation.ErrInvalidResponse, verr)
		} else if !assessment.InRange() {
			g.logger.WarnContext(ctx, "readiness score outside advisory range",
				"score", assessment.Score,
				"min", domain.MinReadinessScore,
				"max", domain.MaxReadinessScore)
		}
	}

	return finish(ctx, g, p, payload.Operation, start, assessment, err, fallback.Readiness)
}

// masking is the gateway policy with substitution forced on, for the
// operations that never fail.
func (g *Gateway) masking() fallback.Policy {
	p := g.policy
	p.Mask = true
	return p
}

// CreateHackathonChat opens a mentor session seeded with priorHistory.
// It always succeeds; connection problems surface on Send.
func (g *Gateway) CreateHackathonChat(ctx context.Context, priorHistory []domain.Turn) *chat.Session {
	start := time.Now()
	s := g.chats.CreateSession(ctx, priorHistory)
	g.metrics.observe(OperationChatCreate, OutcomeSuccess, time.Since(start))
	return s
}

// Reply sends message on session and returns the mentor's answer. On
// failure the result carries the display fallback when masking is on; the
// session history keeps the user turn only.
func (g *Gateway) Reply(ctx context.Context, session *chat.Session, message string) fallback.Result[string] {
	start := time.Now()
	reply, err := session.Send(ctx, message)

	// Caller errors are not generation failures.
	if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrSessionClosed) {
		g.metrics.observe(OperationChatMessage, OutcomeError, time.Since(start))
		return fallback.Result[string]{Err: err}
	}

	return finish(ctx, g, g.policy, OperationChatMessage, start, reply, err, fallback.ChatReply)
}

// readinessReply tells a missing score apart from a zero score.
type readinessReply struct {
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

func finish[T any](
	ctx context.Context,
	g *Gateway,
	p fallback.Policy,
	operation string,
	start time.Time,
	value T,
	err error,
	demo func() T,
) fallback.Result[T] {
	res := fallback.Apply(ctx, p, operation, value, err, demo)

	outcome := OutcomeSuccess
	switch {
	case res.Demo:
		outcome = OutcomeFallback
	case res.Err != nil:
		outcome = OutcomeError
	}
	g.metrics.observe(operation, outcome, time.Since(start))

	return res
}
