package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintgene/allocation-ledger/models"
)

// SweepRepository stores sweeps supplied by the sweep source
type SweepRepository interface {
	GetByID(ctx context.Context, id string) (*models.Sweep, error)
	Upsert(ctx context.Context, sweep *models.Sweep) error
	ListUnallocatedConfirmed(ctx context.Context, since time.Time, limit int) ([]models.Sweep, error)
}

// sweepRepository implements SweepRepository interface
type sweepRepository struct {
	db *sql.DB
}

// NewSweepRepository creates a new sweep repository
func NewSweepRepository(db *sql.DB) SweepRepository {
	return &sweepRepository{db: db}
}

const sweepColumns = `id, usd_value, chain, status, tx_hash, created_at, confirmed_at`

// GetByID retrieves a sweep by ID
func (r *sweepRepository) GetByID(ctx context.Context, id string) (*models.Sweep, error) {
	query := `SELECT ` + sweepColumns + ` FROM sweeps WHERE id = ?`

	sweep, err := scanSweep(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sweep with ID %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sweep: %w", err)
	}
	return sweep, nil
}

// Upsert inserts a sweep or updates it while it has no allocations. Once a
// sweep is allocated its value can no longer change. confirmed_at is stamped
// the first time the sweep arrives confirmed and cleared if it leaves that
// status.
func (r *sweepRepository) Upsert(ctx context.Context, sweep *models.Sweep) error {
	now := timeNow()
	if sweep.CreatedAt.IsZero() {
		sweep.CreatedAt = now
	}

	var confirmedAt sql.NullString
	if sweep.IsConfirmed() {
		confirmedAt = sql.NullString{String: models.FormatTimestamp(now), Valid: true}
	}

	query := `
		INSERT INTO sweeps (id, usd_value, chain, status, tx_hash, created_at, updated_at, confirmed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			usd_value = excluded.usd_value,
			chain = excluded.chain,
			status = excluded.status,
			tx_hash = excluded.tx_hash,
			updated_at = excluded.updated_at,
			confirmed_at = CASE
				WHEN excluded.status = 'confirmed' THEN COALESCE(sweeps.confirmed_at, excluded.confirmed_at)
				ELSE NULL
			END
		WHERE NOT EXISTS (SELECT 1 FROM allocations a WHERE a.sweep_id = excluded.id)
	`

	result, err := r.db.ExecContext(ctx, query,
		sweep.ID,
		sweep.USDValue.String(),
		sweep.Chain,
		string(sweep.Status),
		sweep.TxHash,
		models.FormatTimestamp(sweep.CreatedAt),
		models.FormatTimestamp(now),
		confirmedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sweep: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("sweep %s cannot change: %w", sweep.ID, models.ErrAlreadyAllocated)
	}

	return nil
}

// ListUnallocatedConfirmed returns sweeps confirmed at or after since that
// have no allocations, in confirmation order. A sweep created long before it
// was confirmed is still listed.
func (r *sweepRepository) ListUnallocatedConfirmed(ctx context.Context, since time.Time, limit int) ([]models.Sweep, error) {
	query := `
		SELECT ` + sweepColumns + `
		FROM sweeps s
		WHERE s.status = 'confirmed'
		  AND s.confirmed_at >= ?
		  AND NOT EXISTS (SELECT 1 FROM allocations a WHERE a.sweep_id = s.id)
		ORDER BY s.confirmed_at ASC, s.id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, models.FormatTimestamp(since), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unallocated sweeps: %w", err)
	}
	defer rows.Close()

	var sweeps []models.Sweep
	for rows.Next() {
		sweep, err := scanSweep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sweep: %w", err)
		}
		sweeps = append(sweeps, *sweep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sweeps: %w", err)
	}

	return sweeps, nil
}

func scanSweep(row scanner) (*models.Sweep, error) {
	var sweep models.Sweep
	var value, status, createdAt string
	var confirmedAt sql.NullString

	if err := row.Scan(&sweep.ID, &value, &sweep.Chain, &status, &sweep.TxHash, &createdAt, &confirmedAt); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid stored usd_value %q: %w", value, err)
	}
	sweep.USDValue = amount
	sweep.Status = models.SweepStatus(status)

	if sweep.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("invalid stored created_at %q: %w", createdAt, err)
	}
	if confirmedAt.Valid {
		t, err := models.ParseTimestamp(confirmedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid stored confirmed_at %q: %w", confirmedAt.String, err)
		}
		sweep.ConfirmedAt = &t
	}
	return &sweep, nil
}
