// Package assistant answers career questions from the caller's latest
// prediction by running the analyzers over it.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yanqian/career-radar/internal/domain/careerrisk"
	"github.com/yanqian/career-radar/internal/domain/demand"
	"github.com/yanqian/career-radar/internal/domain/insight"
	"github.com/yanqian/career-radar/internal/domain/jobshock"
	"github.com/yanqian/career-radar/internal/domain/volatility"
	apperrors "github.com/yanqian/career-radar/pkg/errors"
)

// Service exposes the rule based career assistant.
type Service interface {
	Reply(ctx context.Context, userID int64, req Request) (Response, error)
}

// InsightReader is the part of the insight service the assistant reads.
type InsightReader interface {
	Latest(ctx context.Context, userID int64) (insight.Snapshot, error)
	Volatility(ctx context.Context, limit int) (volatility.Result, error)
}

type service struct {
	cfg      Config
	insights InsightReader
	logger   *slog.Logger
}

// NewService wires the assistant on top of the insight service.
func NewService(cfg Config, insights InsightReader, logger *slog.Logger) Service {
	if cfg.BaselineSalary <= 0 {
		cfg.BaselineSalary = 800000
	}
	if cfg.VolatilityWindow <= 0 {
		cfg.VolatilityWindow = 20
	}
	return &service{cfg: cfg, insights: insights, logger: logger.With("component", "assistant.service")}
}

const (
	greetingReply = "Hi! I'm your career assistant. I read your latest prediction and can explain " +
		"your job demand, career risk, AI automation exposure and which skills to add. " +
		"Ask me anything about your career."
	emptyReply   = "Please ask something about careers, skills, or job trends."
	noPrediction = "You haven't generated a job prediction yet. Run a prediction first."
	salaryReply  = "Average salaries (India):\n" +
		"- Software Engineer: 6-12 LPA\n" +
		"- Data Scientist: 8-18 LPA\n" +
		"- Data Analyst: 5-10 LPA\n" +
		"Actual salary depends on skills and experience."
	helpReply = "I can analyze your job demand, your career risk, the impact of AI on your role " +
		"and a skill roadmap. Ask anything career related."
	fallbackReply = "I didn't fully understand that. Try asking:\n" +
		"- What is my job demand?\n" +
		"- What is my career risk?\n" +
		"- Is my job safe from AI?\n" +
		"- What skills should I learn?"
)

var recommendedSkills = []string{"Python and SQL", "Data analysis or ML", "Cloud (AWS or Azure)", "Problem solving"}

func (s *service) Reply(ctx context.Context, userID int64, req Request) (Response, error) {
	intent := Classify(req.Message, req.History)

	var (
		reply string
		err   error
	)
	switch intent {
	case IntentEmpty:
		reply = emptyReply
	case IntentGreeting:
		reply = greetingReply
	case IntentDemand:
		reply, err = s.withSnapshot(ctx, userID, demandReply)
	case IntentCareerRisk:
		reply, err = s.withSnapshot(ctx, userID, s.careerRiskReply(ctx))
	case IntentAutomation:
		reply, err = s.withSnapshot(ctx, userID, s.automationReply(ctx))
	case IntentSkills:
		reply, err = s.skillsReply(ctx, userID)
	case IntentSalary:
		reply = salaryReply
	case IntentHelp:
		reply = helpReply
	default:
		reply = fallbackReply
	}
	if err != nil {
		return Response{}, err
	}

	s.logger.Debug("assistant reply", "userId", userID, "intent", intent)
	return Response{Reply: reply, Intent: intent}, nil
}

type snapshotReply func(insight.Snapshot) (string, error)

// withSnapshot renders a reply that needs the latest prediction, falling
// back to a hint when the user has none.
func (s *service) withSnapshot(ctx context.Context, userID int64, render snapshotReply) (string, error) {
	snapshot, err := s.insights.Latest(ctx, userID)
	if apperrors.IsCode(err, "prediction_required") {
		return noPrediction, nil
	}
	if err != nil {
		return "", err
	}
	return render(snapshot)
}

func demandReply(snap insight.Snapshot) (string, error) {
	b := snap.Result.Breakdown
	return fmt.Sprintf(
		"Your job demand: %s (confidence %.0f).\n"+
			"Base score %d, experience %+d, skills %+d (%d listed), total %d.\n"+
			"Keep upgrading skills to maintain demand.",
		snap.Result.Demand, snap.Result.Confidence,
		b.BaseScore, b.ExperienceBonus, b.SkillBonus, b.SkillCount, b.DemandScore,
	), nil
}

func (s *service) careerRiskReply(ctx context.Context) snapshotReply {
	return func(snap insight.Snapshot) (string, error) {
		vol, err := s.insights.Volatility(ctx, s.cfg.VolatilityWindow)
		if err != nil {
			return "", err
		}
		profile := careerrisk.CalculateCareerRisk(string(snap.Result.Demand), vol.VolatilityIndex, snap.Input.JobTitle)
		return fmt.Sprintf(
			"Your career risk: %s (score %.1f).\n"+
				"Demand risk %.0f, volatility risk %.1f, skill risk %.0f.\n"+
				"Upskilling can reduce long-term risk.",
			profile.RiskCategory, profile.RiskScore,
			profile.Breakdown.DemandRisk, profile.Breakdown.VolatilityRisk, profile.Breakdown.SkillRisk,
		), nil
	}
}

func (s *service) automationReply(ctx context.Context) snapshotReply {
	return func(snap insight.Snapshot) (string, error) {
		vol, err := s.insights.Volatility(ctx, s.cfg.VolatilityWindow)
		if err != nil {
			return "", err
		}
		role := snap.Input.JobTitle
		profile := careerrisk.CalculateCareerRisk(string(snap.Result.Demand), vol.VolatilityIndex, role)
		shock, err := jobshock.SimulateJobShock(role, snap.Result.Confidence, s.cfg.BaselineSalary, profile.RiskScore)
		if err != nil {
			return "", err
		}
		ai := shock[jobshock.AIAutomation]
		return fmt.Sprintf(
			"AI takeover risk: %.0f%%.\n"+
				"Under an automation shock demand changes by %.1f%% and your resilience score is %.0f.\n"+
				"Creative, analytical and leadership skills protect a career.",
			snap.Result.AIProbability, ai.DemandChangePercent, ai.ResilienceScore,
		), nil
	}
}

func (s *service) skillsReply(ctx context.Context, userID int64) (string, error) {
	var b strings.Builder
	b.WriteString("Recommended skills (India-focused):\n")
	for _, skill := range recommendedSkills {
		b.WriteString("- " + skill + "\n")
	}

	snapshot, err := s.insights.Latest(ctx, userID)
	switch {
	case apperrors.IsCode(err, "prediction_required"):
	case err != nil:
		return "", err
	default:
		count := snapshot.Result.Breakdown.SkillCount
		if gain := demand.SkillBonus(5) - demand.SkillBonus(count); gain > 0 {
			fmt.Fprintf(&b, "You listed %d skills; reaching 5 would add %d points to your demand score.\n", count, gain)
		}
	}
	b.WriteString("Projects plus consistency drive growth.")
	return b.String(), nil
}
