package prompt

import "github.com/bridgepath-ai/gateway/internal/generation"

// StartupPlanSchema returns the output schema for a domain.StartupPlan.
// A fresh value is returned on each call so payloads never share nodes.
func StartupPlanSchema() *generation.Schema {
	return &generation.Schema{
		Type: generation.TypeObject,
		Properties: map[string]*generation.Schema{
			"startupName":      {Type: generation.TypeString},
			"tagline":          {Type: generation.TypeString},
			"valueProposition": {Type: generation.TypeString},
			"targetAudience":   {Type: generation.TypeString},
			"roadmap": {
				Type: generation.TypeArray,
				Items: &generation.Schema{
					Type: generation.TypeObject,
					Properties: map[string]*generation.Schema{
						"phase":       {Type: generation.TypeString},
						"description": {Type: generation.TypeString},
					},
					PropertyOrder: []string{"phase", "description"},
				},
			},
		},
		PropertyOrder: []string{"startupName", "tagline", "valueProposition", "targetAudience", "roadmap"},
		Required:      []string{"startupName", "tagline", "valueProposition", "roadmap"},
	}
}

// ReadinessSchema returns the output schema for a domain.ReadinessAssessment.
func ReadinessSchema() *generation.Schema {
	return &generation.Schema{
		Type: generation.TypeObject,
		Properties: map[string]*generation.Schema{
			"score":    {Type: generation.TypeNumber},
			"feedback": {Type: generation.TypeString},
		},
		PropertyOrder: []string{"score", "feedback"},
		Required:      []string{"score", "feedback"},
	}
}
