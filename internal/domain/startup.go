package domain

import "strings"

// RoadmapPhase is one ordered step of a startup roadmap.
type RoadmapPhase struct {
	Phase       string `json:"phase"       yaml:"phase"`
	Description string `json:"description" yaml:"description"`
}

// StartupPlan is the structured business plan derived from research text.
//
// StartupName, Tagline, ValueProposition and Roadmap are required by the
// output schema requested from the model. TargetAudience may be empty.
type StartupPlan struct {
	StartupName      string         `json:"startupName"              yaml:"startupName"`
	Tagline          string         `json:"tagline"                  yaml:"tagline"`
	ValueProposition string         `json:"valueProposition"         yaml:"valueProposition"`
	TargetAudience   string         `json:"targetAudience,omitempty" yaml:"targetAudience,omitempty"`
	Roadmap          []RoadmapPhase `json:"roadmap"                  yaml:"roadmap"`
}

// Validate checks the invariants of a successfully generated plan: the
// required strings are non-blank and the roadmap has at least one phase.
func (p StartupPlan) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"startupName", p.StartupName},
		{"tagline", p.Tagline},
		{"valueProposition", p.ValueProposition},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "cannot be empty", ErrEmptyContent)
		}
	}

	if len(p.Roadmap) == 0 {
		return NewValidationError("roadmap", "must not be empty", ErrEmptyRoadmap)
	}

	return nil
}

// Clone returns a deep copy so the roadmap slice is never shared.
func (p StartupPlan) Clone() StartupPlan {
	out := p
	if p.Roadmap != nil {
		out.Roadmap = make([]RoadmapPhase, len(p.Roadmap))
		copy(out.Roadmap, p.Roadmap)
	}
	return out
}
