package prompt

import (
	"strings"
	"text/template"

	"github.com/bridgepath-ai/gateway/internal/generation"
)

// BuildResearchToStartup embeds researchText in the startup-plan template
// and attaches the StartupPlan output schema.
func BuildResearchToStartup(researchText string) generation.RequestPayload {
	return generation.RequestPayload{
		Operation: OperationResearchToStartup,
		Instruction: render(researchTemplate, struct{ ResearchText string }{
			ResearchText: researchText,
		}),
		ResponseMIMEType: generation.MIMETypeJSON,
		Schema:           StartupPlanSchema(),
	}
}

// BuildEssay embeds the scholarship name and the applicant's details in the
// essay template. The essay is free text, so no schema is attached.
func BuildEssay(scholarshipName, userDetails string) generation.RequestPayload {
	return generation.RequestPayload{
		Operation: OperationScholarshipEssay,
		Instruction: render(essayTemplate, struct {
			ScholarshipName string
			UserDetails     string
		}{
			ScholarshipName: scholarshipName,
			UserDetails:     userDetails,
		}),
	}
}

// BuildPitchAnalysis embeds pitchText in the readiness template and attaches
// the {score, feedback} schema.
func BuildPitchAnalysis(pitchText string) generation.RequestPayload {
	return generation.RequestPayload{
		Operation: OperationPitchAnalysis,
		Instruction: render(pitchTemplate, struct{ PitchText string }{
			PitchText: pitchText,
		}),
		ResponseMIMEType: generation.MIMETypeJSON,
		Schema:           ReadinessSchema(),
	}
}

// render executes a package template. The templates are fixed and only
// reference string fields, so execution cannot fail at runtime.
func render(tmpl *template.Template, data any) string {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		panic("prompt: executing " + tmpl.Name() + ": " + err.Error())
	}
	return b.String()
}
