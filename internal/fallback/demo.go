package fallback

import "github.com/bridgepath-ai/gateway/internal/domain"

// ChatGreeting is the first message shown when a chat is opened. It is
// display-only and never part of a session's history.
const ChatGreeting = "Hi! I'm your Hackathon Mentor. Ask me about ideation, pitching, or finding a team!"

const chatReply = "⚠️ I'm having trouble connecting to the server. " +
	"Please check your API key in the .env file or try again later. (Demo Mode Active)"

const essay = `(Demo Mode - API Key Unavailable)

To the Scholarship Committee,

My journey in computer science began not in a classroom, but in my family's small farm, ` +
	`where I witnessed firsthand the struggles of unpredictable weather patterns. ` +
	`This drove me to develop 'AgriTech', a project leveraging drone imagery to predict crop health.

Receiving this scholarship would not only validate the sleepless nights spent coding ` +
	`but would provide the essential resources to scale my prototype into a solution ` +
	`that could help farmers worldwide. ` +
	`I am committed to using my technical skills to drive tangible social impact.`

var startupPlan = domain.StartupPlan{
	StartupName: "EcoLoop Solutions (Demo)",
	Tagline:     "Closing the loop on organic waste",
	ValueProposition: "We convert urban organic waste into high-grade bio-plastics using a " +
		"proprietary enzymatic process, reducing landfill usage by 40%.",
	TargetAudience: "Municipal waste management facilities and eco-conscious consumer packaging companies.",
	Roadmap: []domain.RoadmapPhase{
		{Phase: "Phase 1: Validation", Description: "Lab-scale proof of concept for enzyme efficiency."},
		{Phase: "Phase 2: MVP", Description: "Pilot facility processing 1 ton of waste per day."},
		{Phase: "Phase 3: Scale", Description: "Licensing technology to 5 major cities."},
	},
}

// StartupPlan returns a fresh copy of the demo startup plan.
func StartupPlan() domain.StartupPlan {
	return startupPlan.Clone()
}

// Essay returns the demo scholarship essay.
func Essay() string {
	return essay
}

// Readiness returns the demo pitch readiness assessment.
func Readiness() domain.ReadinessAssessment {
	return domain.ReadinessAssessment{
		Score:    78,
		Feedback: "Strong technical foundation, but the go-to-market strategy needs more defined customer acquisition costs. (Demo Analysis)",
	}
}

// ChatReply is the text displayed in place of a mentor reply when a chat
// message fails. It is never recorded as a model turn.
func ChatReply() string {
	return chatReply
}
