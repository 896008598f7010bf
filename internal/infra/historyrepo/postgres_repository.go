package historyrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/career-radar/internal/domain/history"
)

// PostgresRepository stores predictions in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the predictions table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id BIGSERIAL PRIMARY KEY,
			jobtitle TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			skill_count INTEGER NOT NULL DEFAULT 0,
			demand TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *PostgresRepository) Save(ctx context.Context, record history.Record) (history.Record, error) {
	var created time.Time
	err := r.pool.QueryRow(ctx, `
		INSERT INTO predictions (jobtitle, location, experience_level, industry, skill_count, demand, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, record.JobTitle, record.Location, record.ExperienceLevel, record.Industry,
		record.SkillCount, record.Demand, record.Confidence).Scan(&record.ID, &created)
	if err != nil {
		return history.Record{}, err
	}
	record.CreatedAt = created.UTC()
	return record, nil
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, jobtitle, location, experience_level, industry, skill_count, demand, confidence, created_at
		FROM predictions
		ORDER BY id DESC
		LIMIT $1
	`, pgLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]history.Record, 0)
	for rows.Next() {
		var rec history.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.JobTitle, &rec.Location, &rec.ExperienceLevel, &rec.Industry,
			&rec.SkillCount, &rec.Demand, &rec.Confidence, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Summary(ctx context.Context, recentLimit int) (history.Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT demand, COUNT(*) FROM predictions GROUP BY demand`)
	if err != nil {
		return history.Summary{}, err
	}
	dist, total, err := countByDemand(rows)
	if err != nil {
		return history.Summary{}, err
	}
	recent, err := r.Recent(ctx, recentLimit)
	if err != nil {
		return history.Summary{}, err
	}
	return history.Summary{Total: total, Distribution: dist, Recent: recent}, nil
}

func (r *PostgresRepository) DemandLabels(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT demand FROM predictions ORDER BY id DESC LIMIT $1`, pgLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// pgLimit maps a non-positive limit to NULL, which Postgres treats as no limit.
func pgLimit(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}

var _ history.Repository = (*PostgresRepository)(nil)
