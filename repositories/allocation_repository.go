package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/database"
	"github.com/mintgene/allocation-ledger/models"
)

// AllocationRepository interface defines allocation database operations
type AllocationRepository interface {
	CreateSet(ctx context.Context, allocations []models.Allocation) ([]models.Allocation, error)
	GetByID(ctx context.Context, id int64) (*models.Allocation, error)
	GetBySweep(ctx context.Context, sweepID string) ([]models.Allocation, error)
	List(ctx context.Context, filter models.AllocationFilter) ([]models.Allocation, error)
	Claim(ctx context.Context, id int64, at, staleBefore time.Time) error
	ReleaseClaim(ctx context.Context, id int64) error
	MarkExecuted(ctx context.Context, id int64, executionRef string, executedAt time.Time) error
}

// allocationRepository implements AllocationRepository interface
type allocationRepository struct {
	db *sql.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *sql.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

const allocationColumns = `id, sweep_id, category, percentage, amount, strategy, chain,
	executed, execution_ref, executed_at, config_digest, created_at`

// CreateSet inserts a sweep's allocations in one transaction. Either every row
// is written or none is. A second set for the same sweep fails with
// models.ErrAlreadyAllocated.
func (r *allocationRepository) CreateSet(ctx context.Context, allocations []models.Allocation) ([]models.Allocation, error) {
	if len(allocations) == 0 {
		return nil, fmt.Errorf("empty allocation set")
	}

	created := make([]models.Allocation, len(allocations))
	copy(created, allocations)
	now := timeNow()

	query := `
		INSERT INTO allocations (sweep_id, category, percentage, amount, strategy, chain, executed, config_digest, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
	`

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare allocation insert: %w", err)
		}
		defer stmt.Close()

		for i := range created {
			a := &created[i]
			a.CreatedAt = now
			a.Executed = false

			result, err := stmt.ExecContext(ctx,
				a.SweepID,
				string(a.Category),
				a.Percentage,
				a.Amount.StringFixed(2),
				a.Strategy,
				a.Chain,
				a.ConfigDigest,
				models.FormatTimestamp(now),
			)
			if err != nil {
				if database.IsUniqueViolation(err) {
					return fmt.Errorf("sweep %s: %w", a.SweepID, models.ErrAlreadyAllocated)
				}
				return fmt.Errorf("failed to insert %s allocation: %w", a.Category, err)
			}

			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get inserted ID: %w", err)
			}
			a.ID = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID retrieves an allocation by ID
func (r *allocationRepository) GetByID(ctx context.Context, id int64) (*models.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE id = ?`

	allocation, err := scanAllocation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("allocation with ID %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return allocation, nil
}

// GetBySweep retrieves the allocations of one sweep in category order
func (r *allocationRepository) GetBySweep(ctx context.Context, sweepID string) ([]models.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE sweep_id = ? ORDER BY id ASC`
	return r.query(ctx, query, sweepID)
}

// List retrieves allocations matching the filter, newest first
func (r *allocationRepository) List(ctx context.Context, filter models.AllocationFilter) ([]models.Allocation, error) {
	var where []string
	var args []any

	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Executed != nil {
		where = append(where, "executed = ?")
		args = append(args, *filter.Executed)
	}
	if filter.Chain != "" {
		where = append(where, "chain = ?")
		args = append(args, filter.Chain)
	}
	if !filter.Since.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, models.FormatTimestamp(filter.Since))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultAllocationLimit
	}

	query := `SELECT ` + allocationColumns + ` FROM allocations`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	return r.query(ctx, query, args...)
}

// Claim marks an unexecuted allocation as being executed by the caller. A
// claim older than staleBefore is treated as abandoned and can be taken over.
// Concurrent callers race on one conditional UPDATE, so at most one wins.
func (r *allocationRepository) Claim(ctx context.Context, id int64, at, staleBefore time.Time) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE allocations
			SET claimed_at = ?
			WHERE id = ? AND executed = 0 AND (claimed_at IS NULL OR claimed_at < ?)
		`, models.FormatTimestamp(at), id, models.FormatTimestamp(staleBefore))
		if err != nil {
			return fmt.Errorf("failed to claim allocation: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 1 {
			return nil
		}

		var executed bool
		err = tx.QueryRowContext(ctx, `SELECT executed FROM allocations WHERE id = ?`, id).Scan(&executed)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("allocation with ID %d: %w", id, models.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check allocation: %w", err)
		}
		if executed {
			return fmt.Errorf("allocation with ID %d: %w", id, models.ErrAlreadyExecuted)
		}
		return fmt.Errorf("allocation with ID %d: %w", id, models.ErrExecutionInFlight)
	})
}

// ReleaseClaim drops the claim on an allocation that was not executed.
func (r *allocationRepository) ReleaseClaim(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE allocations SET claimed_at = NULL WHERE id = ? AND executed = 0`, id)
	if err != nil {
		return fmt.Errorf("failed to release allocation claim: %w", err)
	}
	return nil
}

// MarkExecuted records the execution reference. Only an unexecuted allocation
// can be marked; the guard and the write are a single statement.
func (r *allocationRepository) MarkExecuted(ctx context.Context, id int64, executionRef string, executedAt time.Time) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE allocations
			SET executed = 1, execution_ref = ?, executed_at = ?
			WHERE id = ? AND executed = 0
		`, executionRef, models.FormatTimestamp(executedAt), id)
		if err != nil {
			return fmt.Errorf("failed to mark allocation executed: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 1 {
			return nil
		}

		var executed bool
		err = tx.QueryRowContext(ctx, `SELECT executed FROM allocations WHERE id = ?`, id).Scan(&executed)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("allocation with ID %d: %w", id, models.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check allocation: %w", err)
		}
		return fmt.Errorf("allocation with ID %d: %w", id, models.ErrAlreadyExecuted)
	})
}

func (r *allocationRepository) query(ctx context.Context, query string, args ...any) ([]models.Allocation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}
	defer rows.Close()

	allocations := []models.Allocation{}
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		allocations = append(allocations, *allocation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allocations: %w", err)
	}

	return allocations, nil
}

func scanAllocation(row scanner) (*models.Allocation, error) {
	var a models.Allocation
	var category, amount, createdAt string
	var executionRef, executedAt sql.NullString

	err := row.Scan(
		&a.ID,
		&a.SweepID,
		&category,
		&a.Percentage,
		&amount,
		&a.Strategy,
		&a.Chain,
		&a.Executed,
		&executionRef,
		&executedAt,
		&a.ConfigDigest,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	a.Category = allocconfig.Category(category)
	if a.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	if a.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("invalid stored created_at %q: %w", createdAt, err)
	}

	// Handle nullable fields
	if executionRef.Valid {
		a.ExecutionRef = executionRef.String
	}
	if executedAt.Valid {
		t, err := models.ParseTimestamp(executedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid stored executed_at %q: %w", executedAt.String, err)
		}
		a.ExecutedAt = &t
	}

	return &a, nil
}
