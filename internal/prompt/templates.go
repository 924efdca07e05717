package prompt

import "text/template"

// Operation tags attached to every payload.
const (
	OperationResearchToStartup = "research_to_startup"
	OperationScholarshipEssay  = "scholarship_essay"
	OperationPitchAnalysis     = "pitch_analysis"
)

// text/template is used deliberately: html/template would escape quotes
// and ampersands in the caller's text.
var (
	researchTemplate = template.Must(template.New(OperationResearchToStartup).Parse(
		`Analyze the following academic research or project idea and convert it into a viable startup business plan:

RESEARCH INPUT:
{{.ResearchText}}`))

	essayTemplate = template.Must(template.New(OperationScholarshipEssay).Parse(
		`Write a compelling, professional scholarship essay for the "{{.ScholarshipName}}".

My background details:
{{.UserDetails}}

The essay should be approximately 300 words, persuasive, and highlight impact.`))

	pitchTemplate = template.Must(template.New(OperationPitchAnalysis).Parse(
		`Evaluate the following startup pitch on a scale of 1-100 for investment readiness. Provide the score and a brief 1-sentence feedback.

PITCH:
{{.PitchText}}`))
)
