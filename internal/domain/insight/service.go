// Package insight runs predictions, keeps the per-user snapshot and composes
// the analyzers into dashboard views.
package insight

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/career-radar/internal/domain/careerrisk"
	"github.com/yanqian/career-radar/internal/domain/decision"
	"github.com/yanqian/career-radar/internal/domain/demand"
	"github.com/yanqian/career-radar/internal/domain/history"
	"github.com/yanqian/career-radar/internal/domain/jobshock"
	"github.com/yanqian/career-radar/internal/domain/skillroi"
	"github.com/yanqian/career-radar/internal/domain/volatility"
	apperrors "github.com/yanqian/career-radar/pkg/errors"
	"github.com/yanqian/career-radar/pkg/util"
)

// Service exposes prediction and analytics capabilities.
type Service interface {
	Predict(ctx context.Context, userID int64, req PredictRequest) (PredictionResponse, error)
	Latest(ctx context.Context, userID int64) (Snapshot, error)
	Reset(ctx context.Context, userID int64) error
	History(ctx context.Context, limit int) ([]history.Record, error)
	HistorySummary(ctx context.Context) (history.Summary, error)
	Archive(ctx context.Context) (ArchiveResult, error)
	Analytics(ctx context.Context, userID int64) (AnalyticsView, error)
	Volatility(ctx context.Context, limit int) (volatility.Result, error)
	CareerRisk(ctx context.Context, req CareerRiskRequest) (careerrisk.RiskProfile, error)
	OverallRisk(ctx context.Context, req OverallRiskRequest) (OverallRisk, error)
	SkillROI(ctx context.Context, req SkillROIRequest) (SkillROIResponse, error)
	Shock(ctx context.Context, req ShockRequest) (ShockResponse, error)
	Decide(ctx context.Context, req DecisionRequest) (decision.Verdict, error)
}

type service struct {
	cfg       Config
	repo      history.Repository
	snapshots SnapshotStore
	archive   Archive
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the insight domain. archive may be nil, in which case
// Archive reports archive_disabled.
func NewService(cfg Config, repo history.Repository, snapshots SnapshotStore, archive Archive, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg.withDefaults(),
		repo:      repo,
		snapshots: snapshots,
		archive:   archive,
		logger:    logger.With("component", "insight.service"),
		now:       util.NowUTC,
	}
}

var volatilityTrend = []int{22, 30, 26, 34, 28, 38}

func decisionHint(level demand.Level) (string, []int) {
	switch level {
	case demand.LevelHigh:
		return "Good time to switch", []int{55, 60, 65, 70, 75}
	case demand.LevelMedium:
		return "Switch with preparation", []int{42, 45, 47, 50, 52}
	default:
		return "Not recommended currently", []int{35, 32, 30, 28, 26}
	}
}

func (s *service) Predict(ctx context.Context, userID int64, req PredictRequest) (PredictionResponse, error) {
	query := demand.ParseQuery(req.JobTitle, req.Location, req.ExperienceLevel, req.Industry, req.RequiredSkills)
	result := demand.Predict(query)
	hint, trend := decisionHint(result.Demand)

	record, err := s.repo.Save(ctx, history.Record{
		JobTitle:        query.JobTitle,
		Location:        query.Location,
		ExperienceLevel: query.ExperienceLevel,
		Industry:        query.Industry,
		SkillCount:      len(query.RequiredSkills),
		Demand:          string(result.Demand),
		Confidence:      result.Confidence,
	})
	if err != nil {
		return PredictionResponse{}, apperrors.Wrap("history_error", "failed to save prediction", err)
	}

	snapshot := Snapshot{
		UserID:          userID,
		Input:           req,
		Query:           query,
		Result:          result,
		CareerDecision:  hint,
		DemandTrend:     trend,
		VolatilityTrend: append([]int(nil), volatilityTrend...),
		PredictedAt:     s.now(),
	}
	if err := s.snapshots.Save(ctx, snapshot, s.cfg.SnapshotTTL); err != nil {
		return PredictionResponse{}, apperrors.Wrap("snapshot_error", "failed to store prediction snapshot", err)
	}

	s.logger.Info("prediction stored",
		"userId", userID,
		"historyId", record.ID,
		"role", query.JobTitle,
		"demand", result.Demand,
		"score", result.Breakdown.DemandScore,
	)

	return PredictionResponse{
		Result:         result,
		HistoryID:      record.ID,
		CareerDecision: hint,
		DemandTrend:    trend,
		PredictedAt:    snapshot.PredictedAt,
	}, nil
}

func (s *service) Latest(ctx context.Context, userID int64) (Snapshot, error) {
	snapshot, ok, err := s.snapshots.Get(ctx, userID)
	if err != nil {
		return Snapshot{}, apperrors.Wrap("snapshot_error", "failed to load prediction snapshot", err)
	}
	if !ok {
		return Snapshot{}, apperrors.Wrap("prediction_required", "run a prediction first", nil)
	}
	return snapshot, nil
}

func (s *service) Reset(ctx context.Context, userID int64) error {
	if err := s.snapshots.Delete(ctx, userID); err != nil {
		return apperrors.Wrap("snapshot_error", "failed to clear prediction snapshot", err)
	}
	return nil
}

func (s *service) History(ctx context.Context, limit int) ([]history.Record, error) {
	records, err := s.repo.Recent(ctx, s.clampLimit(limit, s.cfg.HistoryLimit))
	if err != nil {
		return nil, apperrors.Wrap("history_error", "failed to load history", err)
	}
	return records, nil
}

func (s *service) HistorySummary(ctx context.Context) (history.Summary, error) {
	summary, err := s.repo.Summary(ctx, s.cfg.HistoryLimit)
	if err != nil {
		return history.Summary{}, apperrors.Wrap("history_error", "failed to summarize history", err)
	}
	return summary, nil
}

func (s *service) Archive(ctx context.Context) (ArchiveResult, error) {
	if s.archive == nil {
		return ArchiveResult{}, apperrors.Wrap("archive_disabled", "history archive is not configured", nil)
	}
	records, err := s.repo.Recent(ctx, s.cfg.ArchiveLimit)
	if err != nil {
		return ArchiveResult{}, apperrors.Wrap("history_error", "failed to load history", err)
	}
	payload, err := EncodeCSV(records)
	if err != nil {
		return ArchiveResult{}, apperrors.Wrap("archive_error", "failed to encode history", err)
	}
	key := fmt.Sprintf("history/%s-%s.csv", s.now().Format("20060102T150405Z"), uuid.NewString())
	obj, err := s.archive.Put(ctx, key, payload, "text/csv")
	if err != nil {
		return ArchiveResult{}, apperrors.Wrap("archive_error", "failed to upload history", err)
	}
	s.logger.Info("history archived", "key", obj.Key, "records", len(records))
	return ArchiveResult{Object: obj, Records: len(records)}, nil
}

func (s *service) Analytics(ctx context.Context, userID int64) (AnalyticsView, error) {
	snapshot, err := s.Latest(ctx, userID)
	if err != nil {
		return AnalyticsView{}, err
	}
	vol, err := s.Volatility(ctx, s.cfg.VolatilityWindow)
	if err != nil {
		return AnalyticsView{}, err
	}

	role := snapshot.Input.JobTitle
	risk := careerrisk.CalculateCareerRisk(string(snapshot.Result.Demand), vol.VolatilityIndex, role)
	shock, err := jobshock.SimulateJobShock(role, snapshot.Result.Confidence, s.cfg.BaselineSalary, risk.RiskScore)
	if err != nil {
		return AnalyticsView{}, err
	}
	automation := jobshock.ExtractAutomationShock(shock)
	overall := careerrisk.CalculateOverallJobRisk(math.Min(vol.VolatilityIndex, 1), snapshot.Result.Confidence/100, automation)

	return AnalyticsView{
		Snapshot:        snapshot,
		Volatility:      vol,
		CareerRisk:      risk,
		Shock:           shock,
		AutomationShock: automation,
		OverallRisk:     OverallRisk{Score: overall, Label: careerrisk.RiskLabel(overall)},
		AIProbability:   snapshot.Result.AIProbability,
	}, nil
}

func (s *service) Volatility(ctx context.Context, limit int) (volatility.Result, error) {
	labels, err := s.repo.DemandLabels(ctx, s.clampLimit(limit, s.cfg.VolatilityWindow))
	if err != nil {
		return volatility.Result{}, apperrors.Wrap("history_error", "failed to load demand labels", err)
	}
	return volatility.CalculateJobVolatility(labels), nil
}

func (s *service) CareerRisk(_ context.Context, req CareerRiskRequest) (careerrisk.RiskProfile, error) {
	if req.VolatilityIndex < 0 {
		return careerrisk.RiskProfile{}, apperrors.Wrap("invalid_input", "volatilityIndex must not be negative", nil)
	}
	return careerrisk.CalculateCareerRisk(req.Demand, req.VolatilityIndex, req.Role), nil
}

func (s *service) OverallRisk(_ context.Context, req OverallRiskRequest) (OverallRisk, error) {
	inputs := []struct {
		name  string
		value float64
	}{
		{"volatility", req.Volatility},
		{"trendScore", req.TrendScore},
		{"shockImpact", req.ShockImpact},
	}
	for _, in := range inputs {
		if in.value < 0 || in.value > 1 {
			return OverallRisk{}, apperrors.Wrap("invalid_input", in.name+" must be within [0, 1]", nil)
		}
	}
	score := careerrisk.CalculateOverallJobRisk(req.Volatility, req.TrendScore, req.ShockImpact)
	return OverallRisk{Score: score, Label: careerrisk.RiskLabel(score)}, nil
}

func (s *service) SkillROI(_ context.Context, req SkillROIRequest) (SkillROIResponse, error) {
	if req.LearningMonths < 0 {
		return SkillROIResponse{}, apperrors.Wrap("invalid_input", "learningMonths must not be negative", nil)
	}
	res, err := skillroi.CalculateSkillROI(req.Skill, req.CurrentSalary, req.FutureSalary, req.LearningMonths, req.CurrentRisk, req.FutureRisk)
	if err != nil {
		return SkillROIResponse{}, err
	}
	return SkillROIResponse{Result: res, SkillSafety: skillroi.NormalizedSkillSafety(res.ROIScore)}, nil
}

func (s *service) Shock(_ context.Context, req ShockRequest) (ShockResponse, error) {
	res, err := jobshock.SimulateJobShock(req.Role, req.BaseDemand, req.BaseSalary, req.BaseRisk)
	if err != nil {
		return ShockResponse{}, err
	}
	return ShockResponse{Scenarios: res, AutomationShock: jobshock.ExtractAutomationShock(res)}, nil
}

func (s *service) Decide(_ context.Context, req DecisionRequest) (decision.Verdict, error) {
	if req.Current.SkillMatch < 0 || req.Target.SkillMatch < 0 {
		return decision.Verdict{}, apperrors.Wrap("invalid_input", "skillMatch must not be negative", nil)
	}
	return decision.CareerDecision(req.CurrentRole, req.TargetRole, req.Current, req.Target), nil
}

func (s *service) clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > s.cfg.MaxHistoryLimit {
		return s.cfg.MaxHistoryLimit
	}
	return limit
}

var csvHeader = []string{"id", "job_title", "location", "experience_level", "industry", "skill_count", "demand", "confidence", "created_at"}

// EncodeCSV renders history records in the prediction table's column order.
func EncodeCSV(records []history.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.JobTitle,
			r.Location,
			r.ExperienceLevel,
			r.Industry,
			strconv.Itoa(r.SkillCount),
			r.Demand,
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
