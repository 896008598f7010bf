package historyrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yanqian/career-radar/internal/domain/history"
	"github.com/yanqian/career-radar/internal/infra/sqlitedb"
	"github.com/yanqian/career-radar/pkg/util"
)

// SQLiteRepository stores predictions in the predictions table of a local
// SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an open database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureSchema creates the predictions table when missing.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			jobtitle TEXT,
			location TEXT,
			experience_level TEXT,
			industry TEXT,
			skill_count INTEGER,
			demand TEXT,
			confidence REAL,
			created_at TEXT
		)
	`)
	return err
}

func (r *SQLiteRepository) Save(ctx context.Context, record history.Record) (history.Record, error) {
	record.CreatedAt = util.NowUTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions
			(jobtitle, location, experience_level, industry, skill_count, demand, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.JobTitle, record.Location, record.ExperienceLevel, record.Industry,
		record.SkillCount, record.Demand, record.Confidence, sqlitedb.FormatTime(record.CreatedAt))
	if err != nil {
		return history.Record{}, fmt.Errorf("insert prediction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return history.Record{}, err
	}
	record.ID = id
	return record, nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, jobtitle, location, experience_level, industry, skill_count, demand, confidence, created_at
		FROM predictions
		ORDER BY id DESC
		LIMIT ?
	`, sqliteLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]history.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanRecord tolerates the nullable columns of databases written by older
// tools, which insert NULLs and datetime('now') timestamps.
func scanRecord(rows *sql.Rows) (history.Record, error) {
	var (
		rec                                 history.Record
		title, location, exp, industry, lbl sql.NullString
		created                             sql.NullString
		skills                              sql.NullInt64
		confidence                          sql.NullFloat64
	)
	if err := rows.Scan(&rec.ID, &title, &location, &exp, &industry,
		&skills, &lbl, &confidence, &created); err != nil {
		return history.Record{}, err
	}
	createdAt, err := sqlitedb.ParseTime(created.String)
	if err != nil {
		return history.Record{}, err
	}
	rec.JobTitle = title.String
	rec.Location = location.String
	rec.ExperienceLevel = exp.String
	rec.Industry = industry.String
	rec.SkillCount = int(skills.Int64)
	rec.Demand = lbl.String
	rec.Confidence = confidence.Float64
	rec.CreatedAt = createdAt
	return rec, nil
}

func (r *SQLiteRepository) Summary(ctx context.Context, recentLimit int) (history.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT COALESCE(demand, ''), COUNT(*) FROM predictions GROUP BY demand`)
	if err != nil {
		return history.Summary{}, err
	}
	dist, total, err := countByDemand(sqlRows{rows})
	if err != nil {
		return history.Summary{}, err
	}
	recent, err := r.Recent(ctx, recentLimit)
	if err != nil {
		return history.Summary{}, err
	}
	return history.Summary{Total: total, Distribution: dist, Recent: recent}, nil
}

func (r *SQLiteRepository) DemandLabels(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT demand FROM predictions WHERE demand IS NOT NULL ORDER BY id DESC LIMIT ?`, sqliteLimit(limit))
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

// sqliteLimit maps a non-positive limit to SQLite's "no limit".
func sqliteLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

type countRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// sqlRows adapts *sql.Rows to the pgx style Close.
type sqlRows struct{ *sql.Rows }

func (r sqlRows) Close() { _ = r.Rows.Close() }

func countByDemand(rows countRows) (map[string]int, int, error) {
	defer rows.Close()
	dist := history.NewDistribution()
	total := 0
	for rows.Next() {
		var (
			label string
			count int
		)
		if err := rows.Scan(&label, &count); err != nil {
			return nil, 0, err
		}
		total += count
		if label == "" {
			continue
		}
		dist[label] += count
	}
	return dist, total, rows.Err()
}

var _ history.Repository = (*SQLiteRepository)(nil)
