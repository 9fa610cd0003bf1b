package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wonny/marketbrief/pkg/database"
	"github.com/wonny/marketbrief/pkg/logger"
)

// Report kinds persisted by the repository.
const (
	KindSector = "sector"
	KindMarket = "market"
	KindNews   = "news"
)

// ErrNotFound is returned when no report of the requested kind exists.
var ErrNotFound = errors.New("report not found")

// Run is one persisted report generation run.
type Run struct {
	ID        int64           `json:"id"`
	Kind      string          `json:"kind"`
	Analysis  string          `json:"analysis"`
	HTML      string          `json:"html"`
	Summaries json.RawMessage `json:"summaries"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repository persists report runs in PostgreSQL.
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a report repository.
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Migrate creates the report_runs table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS report_runs (
			id         BIGSERIAL PRIMARY KEY,
			kind       TEXT NOT NULL,
			analysis   TEXT NOT NULL,
			html       TEXT NOT NULL,
			summaries  JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_report_runs_kind_created
			ON report_runs (kind, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("migrate report_runs: %w", err)
	}
	return nil
}

// Save stores a report run and returns its ID.
func (r *Repository) Save(ctx context.Context, run *Run) (int64, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO report_runs (kind, analysis, html, summaries)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, run.Kind, run.Analysis, run.HTML, run.Summaries).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save report run: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"id":   id,
		"kind": run.Kind,
	}).Info("Report run saved")

	return id, nil
}

// Latest returns the most recent report run of the given kind.
func (r *Repository) Latest(ctx context.Context, kind string) (*Run, error) {
	run := &Run{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, kind, analysis, html, summaries, created_at
		FROM report_runs
		WHERE kind = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, kind).Scan(&run.ID, &run.Kind, &run.Analysis, &run.HTML, &run.Summaries, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("kind %s: %w", kind, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load latest report run: %w", err)
	}

	return run, nil
}

// Prune deletes report runs older than the retention window.
func (r *Repository) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		DELETE FROM report_runs WHERE created_at < $1
	`, time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("prune report runs: %w", err)
	}
	return tag.RowsAffected(), nil
}
