package domain

import "strings"

// Advisory bounds for a readiness score. The model is asked to stay inside
// them but nothing clamps the value.
const (
	MinReadinessScore = 1
	MaxReadinessScore = 100
)

// ReadinessAssessment is the investment-readiness evaluation of a pitch.
type ReadinessAssessment struct {
	Score    float64 `json:"score"    yaml:"score"`
	Feedback string  `json:"feedback" yaml:"feedback"`
}

// Validate reports whether the assessment carries feedback text.
// The score is numeric by construction.
func (a ReadinessAssessment) Validate() error {
	if strings.TrimSpace(a.Feedback) == "" {
		return NewValidationError("feedback", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// InRange reports whether the score lies within the advisory 1-100 range.
func (a ReadinessAssessment) InRange() bool {
	return a.Score >= MinReadinessScore && a.Score <= MaxReadinessScore
}
