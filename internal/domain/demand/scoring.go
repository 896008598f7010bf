// Package demand implements the rule based demand scoring engine.
package demand

import (
	"sort"
	"strings"

	"github.com/yanqian/career-radar/pkg/util"
)

const (
	defaultBaseDemand = 55
	defaultAIExposure = 55

	highThreshold   = 75
	mediumThreshold = 50

	minConfidence = 40
	maxConfidence = 85

	minAIExposure = 10
	maxAIExposure = 90
)

var roleBaseDemand = map[string]int{
	"data analyst":      60,
	"software engineer": 65,
	"data engineer":     70,
	"ai engineer":       75,
}

var roleAIExposure = map[string]int{
	"data analyst":      65,
	"software engineer": 45,
	"data engineer":     40,
	"ai engineer":       30,
}

// PredictJobDemand scores raw form values. It never fails: unknown roles use
// the default base score and an empty skill list counts as zero skills.
func PredictJobDemand(jobTitle, location, experienceLevel, industry, requiredSkills string) Result {
	return Predict(ParseQuery(jobTitle, location, experienceLevel, industry, requiredSkills))
}

// Predict scores an already parsed query.
func Predict(q JobQuery) Result {
	role := strings.ToLower(strings.TrimSpace(q.JobTitle))
	skillCount := len(q.RequiredSkills)

	base := BaseDemand(role)
	expBonus := ExperienceBonus(q.ExperienceLevel)
	skBonus := SkillBonus(skillCount)
	score := util.ClampInt(base+expBonus+skBonus, 0, 100)

	level := LevelFor(score)
	baseAI := BaseAIExposure(role)

	return Result{
		Demand:        level,
		Confidence:    util.Round(util.Clamp(float64(score), minConfidence, maxConfidence), 2),
		CareerRisk:    CareerRiskFor(level),
		AIProbability: float64(aiExposure(baseAI, skillCount)),
		Breakdown: Breakdown{
			BaseScore:       base,
			ExperienceBonus: expBonus,
			SkillBonus:      skBonus,
			SkillCount:      skillCount,
			DemandScore:     score,
			BaseAIExposure:  baseAI,
		},
	}
}

// BaseDemand returns the table score for a lower-cased role.
func BaseDemand(role string) int {
	if v, ok := roleBaseDemand[role]; ok {
		return v
	}
	return defaultBaseDemand
}

// BaseAIExposure returns the table automation exposure for a lower-cased role.
func BaseAIExposure(role string) int {
	if v, ok := roleAIExposure[role]; ok {
		return v
	}
	return defaultAIExposure
}

// ExperienceBonus matches the experience phrase case-insensitively against
// the three recognised literals. Anything else, e.g. "3 years", scores 0.
func ExperienceBonus(experience string) int {
	switch strings.ToLower(experience) {
	case "fresher":
		return -10
	case "2-5 years":
		return 5
	case "5+ years":
		return 10
	default:
		return 0
	}
}

// SkillBonus rewards longer skill lists.
func SkillBonus(skillCount int) int {
	switch {
	case skillCount >= 5:
		return 15
	case skillCount >= 3:
		return 5
	default:
		return -10
	}
}

// LevelFor maps a demand score to its label.
func LevelFor(score int) Level {
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// CareerRiskFor is the inverse of demand.
func CareerRiskFor(level Level) string {
	switch level {
	case LevelHigh:
		return RiskLow
	case LevelMedium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func aiExposure(base, skillCount int) int {
	v := base
	switch {
	case skillCount <= 2:
		v += 10
	case skillCount >= 5:
		v -= 5
	}
	return util.ClampInt(v, minAIExposure, maxAIExposure)
}

// KnownRoles lists the roles with table entries in alphabetical order.
func KnownRoles() []string {
	roles := make([]string, 0, len(roleBaseDemand))
	for role := range roleBaseDemand {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
