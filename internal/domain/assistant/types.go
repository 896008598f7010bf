package assistant

// Intent classifies a user message.
type Intent string

// Supported intents, matched in this order after the greeting.
const (
	IntentGreeting   Intent = "greeting"
	IntentEmpty      Intent = "empty"
	IntentDemand     Intent = "demand"
	IntentCareerRisk Intent = "career_risk"
	IntentAutomation Intent = "automation"
	IntentSkills     Intent = "skills"
	IntentSalary     Intent = "salary"
	IntentHelp       Intent = "help"
	IntentFallback   Intent = "fallback"
)

// Request is one chat turn. History holds the earlier messages of the
// conversation; an empty history means this is the first message.
type Request struct {
	Message string   `json:"message"`
	History []string `json:"history"`
}

// Response is the assistant reply.
type Response struct {
	Reply  string `json:"reply"`
	Intent Intent `json:"intent"`
}

// Config tunes the assistant.
type Config struct {
	BaselineSalary   float64
	VolatilityWindow int
}
