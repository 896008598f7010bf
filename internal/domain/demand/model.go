package demand

// Level is the categorical demand estimate for a role profile.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Career risk categories shared by the scoring engine and the risk analyzers.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// JobQuery is the normalized job profile a prediction is computed from.
type JobQuery struct {
	JobTitle        string   `json:"jobTitle"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experienceLevel"`
	Industry        string   `json:"industry"`
	RequiredSkills  []string `json:"requiredSkills"`
}

// Result is the outcome of scoring a JobQuery.
type Result struct {
	Demand        Level     `json:"demand"`
	Confidence    float64   `json:"confidence"`
	CareerRisk    string    `json:"careerRisk"`
	AIProbability float64   `json:"aiProbability"`
	Breakdown     Breakdown `json:"breakdown"`
}

// Breakdown exposes the intermediate values behind a Result.
type Breakdown struct {
	BaseScore       int `json:"baseScore"`
	ExperienceBonus int `json:"experienceBonus"`
	SkillBonus      int `json:"skillBonus"`
	SkillCount      int `json:"skillCount"`
	DemandScore     int `json:"demandScore"`
	BaseAIExposure  int `json:"baseAiExposure"`
}
