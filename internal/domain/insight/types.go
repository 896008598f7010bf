package insight

import (
	"time"

	"github.com/yanqian/career-radar/internal/domain/careerrisk"
	"github.com/yanqian/career-radar/internal/domain/decision"
	"github.com/yanqian/career-radar/internal/domain/demand"
	"github.com/yanqian/career-radar/internal/domain/jobshock"
	"github.com/yanqian/career-radar/internal/domain/skillroi"
	"github.com/yanqian/career-radar/internal/domain/volatility"
)

// PredictRequest carries the raw prediction form.
type PredictRequest struct {
	JobTitle        string `json:"jobTitle"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	Industry        string `json:"industry"`
	RequiredSkills  string `json:"requiredSkills"`
}

// Snapshot is the latest prediction of a user. Input is kept as entered.
type Snapshot struct {
	UserID          int64           `json:"userId"`
	Input           PredictRequest  `json:"input"`
	Query           demand.JobQuery `json:"query"`
	Result          demand.Result   `json:"result"`
	CareerDecision  string          `json:"careerDecision"`
	DemandTrend     []int           `json:"demandTrend"`
	VolatilityTrend []int           `json:"volatilityTrend"`
	PredictedAt     time.Time       `json:"predictedAt"`
}

// PredictionResponse is returned by Predict.
type PredictionResponse struct {
	demand.Result
	HistoryID      int64     `json:"historyId"`
	CareerDecision string    `json:"careerDecision"`
	DemandTrend    []int     `json:"demandTrend"`
	PredictedAt    time.Time `json:"predictedAt"`
}

// OverallRisk is a labelled overall job risk score.
type OverallRisk struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// AnalyticsView composes every analyzer over the current snapshot.
type AnalyticsView struct {
	Snapshot        Snapshot               `json:"snapshot"`
	Volatility      volatility.Result      `json:"volatility"`
	CareerRisk      careerrisk.RiskProfile `json:"careerRisk"`
	Shock           jobshock.Result        `json:"shock"`
	AutomationShock float64                `json:"automationShock"`
	OverallRisk     OverallRisk            `json:"overallRisk"`
	AIProbability   float64                `json:"aiProbability"`
}

// CareerRiskRequest drives the standalone career risk view.
type CareerRiskRequest struct {
	Demand          string  `json:"demand"`
	VolatilityIndex float64 `json:"volatilityIndex"`
	Role            string  `json:"role"`
}

// OverallRiskRequest drives the overall job risk view.
type OverallRiskRequest struct {
	Volatility  float64 `json:"volatility"`
	TrendScore  float64 `json:"trendScore"`
	ShockImpact float64 `json:"shockImpact"`
}

// SkillROIRequest drives the skill ROI view.
type SkillROIRequest struct {
	Skill          string  `json:"skill"`
	CurrentSalary  float64 `json:"currentSalary"`
	FutureSalary   float64 `json:"futureSalary"`
	LearningMonths float64 `json:"learningMonths"`
	CurrentRisk    float64 `json:"currentRisk"`
	FutureRisk     float64 `json:"futureRisk"`
}

// SkillROIResponse adds the normalised safety score.
type SkillROIResponse struct {
	skillroi.Result
	SkillSafety float64 `json:"skillSafety"`
}

// ShockRequest drives the shock simulation view.
type ShockRequest struct {
	Role       string  `json:"role"`
	BaseDemand float64 `json:"baseDemand"`
	BaseSalary float64 `json:"baseSalary"`
	BaseRisk   float64 `json:"baseRisk"`
}

// ShockResponse adds the extracted automation shock.
type ShockResponse struct {
	Scenarios       jobshock.Result `json:"scenarios"`
	AutomationShock float64         `json:"automationShock"`
}

// DecisionRequest compares two roles.
type DecisionRequest struct {
	CurrentRole string               `json:"currentRole"`
	TargetRole  string               `json:"targetRole"`
	Current     decision.RoleMetrics `json:"current"`
	Target      decision.RoleMetrics `json:"target"`
}

// ArchiveResult describes an uploaded history export.
type ArchiveResult struct {
	Object  StoredObject `json:"object"`
	Records int          `json:"records"`
}
