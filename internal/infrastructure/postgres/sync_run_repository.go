package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

var _ repository.SyncRunRepository = (*SyncRunRepo)(nil)

const syncRunColumns = `id, status, fetched, created, updated, failed, errors, started_at, finished_at`

// SyncRunRepo persists Artacom sync executions.
type SyncRunRepo struct {
	q Querier
}

// NewSyncRunRepository builds the sync run persistence adapter.
func NewSyncRunRepository(q Querier) *SyncRunRepo {
	return &SyncRunRepo{q: q}
}

// Create inserts a run in its initial RUNNING state.
func (r *SyncRunRepo) Create(run *entity.SyncRun) error {
	query := `
		INSERT INTO sync_runs (id, status, fetched, created, updated, failed, errors, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.Status, run.Fetched, run.Created, run.Updated, run.Failed,
		run.Errors, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sync run: %w", err)
	}
	return nil
}

// Update writes the final counters and status of a run.
func (r *SyncRunRepo) Update(run *entity.SyncRun) error {
	query := `
		UPDATE sync_runs
		SET status = $2, fetched = $3, created = $4, updated = $5, failed = $6, errors = $7, finished_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.Status, run.Fetched, run.Created, run.Updated, run.Failed,
		run.Errors, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("update sync run: %w", err)
	}
	return nil
}

// GetLatest returns the most recently started run, or nil if none exist.
func (r *SyncRunRepo) GetLatest() (*entity.SyncRun, error) {
	query := `SELECT ` + syncRunColumns + ` FROM sync_runs ORDER BY started_at DESC LIMIT 1`
	run, err := scanSyncRun(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest sync run: %w", err)
	}
	return run, nil
}

// List returns runs, newest first.
func (r *SyncRunRepo) List(limit, offset int) ([]*entity.SyncRun, error) {
	query := `SELECT ` + syncRunColumns + ` FROM sync_runs ORDER BY started_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	defer rows.Close()
	var list []*entity.SyncRun
	for rows.Next() {
		run, err := scanSyncRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

func scanSyncRun(row pgx.Row) (*entity.SyncRun, error) {
	var run entity.SyncRun
	err := row.Scan(
		&run.ID, &run.Status, &run.Fetched, &run.Created, &run.Updated,
		&run.Failed, &run.Errors, &run.StartedAt, &run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
