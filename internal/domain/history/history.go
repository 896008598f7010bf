// Package history defines the persisted prediction log.
package history

import (
	"context"
	"time"
)

// Record is one stored prediction.
type Record struct {
	ID              int64     `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	Location        string    `json:"location"`
	ExperienceLevel string    `json:"experienceLevel"`
	Industry        string    `json:"industry"`
	SkillCount      int       `json:"skillCount"`
	Demand          string    `json:"demand"`
	Confidence      float64   `json:"confidence"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Summary aggregates the whole log.
type Summary struct {
	Total        int            `json:"total"`
	Distribution map[string]int `json:"distribution"`
	Recent       []Record       `json:"recent"`
}

// Repository abstracts prediction persistence. Save assigns ID and CreatedAt.
// Recent and DemandLabels order newest first by ID.
type Repository interface {
	Save(ctx context.Context, record Record) (Record, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
	Summary(ctx context.Context, recentLimit int) (Summary, error)
	DemandLabels(ctx context.Context, limit int) ([]string, error)
}

// NewDistribution returns a distribution map with every demand label present.
func NewDistribution() map[string]int {
	return map[string]int{"High": 0, "Medium": 0, "Low": 0}
}
