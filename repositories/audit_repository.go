package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mintgene/allocation-ledger/database"
	"github.com/mintgene/allocation-ledger/digest"
	"github.com/mintgene/allocation-ledger/models"
)

// AuditRepository handles audit ledger persistence
type AuditRepository interface {
	Append(ctx context.Context, entry *models.AuditEntry, seal func(*models.AuditEntry) error) error
	GetByID(ctx context.Context, id int64) (*models.AuditEntry, error)
	ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]models.AuditEntry, error)
	ListAfter(ctx context.Context, afterID int64, limit int) ([]models.AuditEntry, error)
	MarkVerified(ctx context.Context, id int64, verifiedAt time.Time) error
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

const auditColumns = `id, operation, entity_type, entity_id, payload, user_id,
	data_digest, config_digest, prev_digest, created_at, verified_at`

// Append links the entry to the current ledger head, lets seal compute its
// digest and inserts it. Reading the head and inserting happen in one
// transaction so concurrent appends cannot fork the chain.
func (r *sqliteAuditRepository) Append(ctx context.Context, entry *models.AuditEntry, seal func(*models.AuditEntry) error) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var head string
		err := tx.QueryRowContext(ctx, `SELECT data_digest FROM audit_log ORDER BY id DESC LIMIT 1`).Scan(&head)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			head = digest.Genesis
		case err != nil:
			return fmt.Errorf("failed to read ledger head: %w", err)
		}

		entry.PrevDigest = head
		if err := seal(entry); err != nil {
			return fmt.Errorf("failed to seal audit entry: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO audit_log (operation, entity_type, entity_id, payload, user_id, data_digest, config_digest, prev_digest, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			entry.Operation,
			entry.EntityType,
			entry.EntityID,
			string(entry.Payload),
			entry.UserID,
			entry.DataDigest,
			entry.ConfigDigest,
			entry.PrevDigest,
			models.FormatTimestamp(entry.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert audit entry: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted ID: %w", err)
		}
		entry.ID = id
		return nil
	})
}

// GetByID retrieves an audit entry by ID
func (r *sqliteAuditRepository) GetByID(ctx context.Context, id int64) (*models.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log WHERE id = ?`

	entry, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("audit entry with ID %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entry: %w", err)
	}
	return entry, nil
}

// ListByEntity returns the entries for one entity, newest first
func (r *sqliteAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]models.AuditEntry, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_log
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return r.query(ctx, query, entityType, entityID, limit)
}

// ListAfter returns up to limit entries with an ID greater than afterID, in
// ledger order
func (r *sqliteAuditRepository) ListAfter(ctx context.Context, afterID int64, limit int) ([]models.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log WHERE id > ? ORDER BY id ASC LIMIT ?`
	return r.query(ctx, query, afterID, limit)
}

// MarkVerified stamps the last successful verification time
func (r *sqliteAuditRepository) MarkVerified(ctx context.Context, id int64, verifiedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE audit_log SET verified_at = ? WHERE id = ?`,
		models.FormatTimestamp(verifiedAt), id)
	if err != nil {
		return fmt.Errorf("failed to mark audit entry verified: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("audit entry with ID %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *sqliteAuditRepository) query(ctx context.Context, query string, args ...any) ([]models.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

func scanAuditEntry(row scanner) (*models.AuditEntry, error) {
	var e models.AuditEntry
	var payload, createdAt string
	var verifiedAt sql.NullString

	err := row.Scan(
		&e.ID,
		&e.Operation,
		&e.EntityType,
		&e.EntityID,
		&payload,
		&e.UserID,
		&e.DataDigest,
		&e.ConfigDigest,
		&e.PrevDigest,
		&createdAt,
		&verifiedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Payload = []byte(payload)
	if e.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("invalid stored created_at %q: %w", createdAt, err)
	}
	if verifiedAt.Valid {
		t, err := models.ParseTimestamp(verifiedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid stored verified_at %q: %w", verifiedAt.String, err)
		}
		e.VerifiedAt = &t
	}

	return &e, nil
}
