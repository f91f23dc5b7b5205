package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/digest"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/repositories"
	"github.com/mintgene/allocation-ledger/userctx"
)

// Trail and chain paging limits
const (
	DefaultTrailLimit = 50
	MaxTrailLimit     = 1000
	chainPageSize     = 500
)

// AuditService interface defines the audit ledger business logic
type AuditService interface {
	CreateEntry(ctx context.Context, operation, entityType, entityID string, payload any, userID string) (*models.AuditEntry, error)
	VerifyEntry(ctx context.Context, id int64) (*models.VerificationResult, error)
	GetAuditTrail(ctx context.Context, entityType, entityID string, limit int) ([]models.AuditTrailItem, error)
	AuditEarningsOperation(ctx context.Context, operation, sweepID string, details any, userID string) (*models.AuditEntry, error)
	VerifyChain(ctx context.Context) (*models.ChainVerification, error)
}

// auditService implements AuditService interface
type auditService struct {
	repo   repositories.AuditRepository
	config *allocconfig.Config
	logger *zap.Logger
	now    func() time.Time

	// mu serializes appends from this process
	mu sync.Mutex

	headMu sync.Mutex
	head   chainHead
}

// chainHead is the newest entry this process has appended or verified. The
// ledger must always reach it with the same digest.
type chainHead struct {
	id     int64
	digest string
}

func (s *auditService) anchor() chainHead {
	s.headMu.Lock()
	defer s.headMu.Unlock()
	return s.head
}

func (s *auditService) advanceHead(id int64, digest string) {
	s.headMu.Lock()
	defer s.headMu.Unlock()
	if id > s.head.id {
		s.head = chainHead{id: id, digest: digest}
	}
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository, config *allocconfig.Config, logger *zap.Logger) AuditService {
	return &auditService{
		repo:   repo,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// CreateEntry appends a sealed entry to the ledger. An empty userID falls back
// to the caller recorded in ctx.
func (s *auditService) CreateEntry(ctx context.Context, operation, entityType, entityID string, payload any, userID string) (*models.AuditEntry, error) {
	canonical, err := digest.Canonical(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize audit payload: %w", err)
	}
	if userID == "" {
		userID = userctx.GetUserID(ctx)
	}

	entry := &models.AuditEntry{
		Operation:    operation,
		EntityType:   entityType,
		EntityID:     entityID,
		Payload:      canonical,
		UserID:       userID,
		ConfigDigest: s.config.Digest(),
		CreatedAt:    s.now().UTC(),
	}

	s.mu.Lock()
	err = s.repo.Append(ctx, entry, seal)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrAuditWriteFailed, err)
	}
	s.advanceHead(entry.ID, entry.DataDigest)

	s.logger.Debug("audit entry created",
		zap.Int64("id", entry.ID),
		zap.String("operation", operation),
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
	)
	return entry, nil
}

// seal computes the entry's data digest once its chain link is known
func seal(entry *models.AuditEntry) error {
	d, err := digest.Of(entry.DigestInput())
	if err != nil {
		return err
	}
	entry.DataDigest = d
	return nil
}

// VerifyEntry recomputes an entry's digest and compares its config digest to
// the running configuration. A passing entry gets its verified_at stamped.
func (s *auditService) VerifyEntry(ctx context.Context, id int64) (*models.VerificationResult, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return &models.VerificationResult{EntryID: id, Reason: models.ReasonNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit entry: %w", err)
	}

	result := s.check(entry)
	if !result.Valid {
		s.logger.Error("audit entry failed verification",
			zap.Int64("id", id),
			zap.String("reason", string(result.Reason)),
			zap.String("detail", result.Detail),
		)
		return &result, nil
	}

	if err := s.repo.MarkVerified(ctx, id, s.now()); err != nil {
		s.logger.Warn("failed to stamp verified_at", zap.Int64("id", id), zap.Error(err))
	}
	return &result, nil
}

func (s *auditService) check(entry *models.AuditEntry) models.VerificationResult {
	result := models.VerificationResult{EntryID: entry.ID}

	recomputed, err := digest.Of(entry.DigestInput())
	if err != nil {
		result.Reason = models.ReasonDataTampered
		result.Detail = fmt.Sprintf("stored payload cannot be canonicalized: %v", err)
		return result
	}
	if recomputed != entry.DataDigest {
		result.Reason = models.ReasonDataTampered
		result.Detail = fmt.Sprintf("data digest %s does not match recomputed %s", entry.DataDigest, recomputed)
		return result
	}
	if current := s.config.Digest(); entry.ConfigDigest != current {
		result.Reason = models.ReasonConfigMismatch
		result.Detail = fmt.Sprintf("entry config digest %s differs from running %s", entry.ConfigDigest, current)
		return result
	}

	result.Valid = true
	return result
}

// GetAuditTrail returns an entity's entries, newest first, each with its
// verification result
func (s *auditService) GetAuditTrail(ctx context.Context, entityType, entityID string, limit int) ([]models.AuditTrailItem, error) {
	if limit <= 0 {
		limit = DefaultTrailLimit
	}
	if limit > MaxTrailLimit {
		limit = MaxTrailLimit
	}

	entries, err := s.repo.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}

	trail := make([]models.AuditTrailItem, 0, len(entries))
	for i := range entries {
		verification := s.check(&entries[i])
		if !verification.Valid {
			s.logger.Error("audit trail entry failed verification",
				zap.Int64("id", entries[i].ID),
				zap.String("reason", string(verification.Reason)),
			)
		}
		trail = append(trail, models.AuditTrailItem{AuditEntry: entries[i], Verification: verification})
	}
	return trail, nil
}

// earningsPayload is the self-contained record written for earnings operations
type earningsPayload struct {
	SweepID      string                       `json:"sweep_id"`
	Percentages  map[allocconfig.Category]int `json:"percentages"`
	ConfigDigest string                       `json:"config_digest"`
	Details      any                          `json:"details"`
}

// AuditEarningsOperation records an operation against a sweep's earnings. The
// payload embeds the percentage table so the entry can be replayed on its own.
func (s *auditService) AuditEarningsOperation(ctx context.Context, operation, sweepID string, details any, userID string) (*models.AuditEntry, error) {
	payload := earningsPayload{
		SweepID:      sweepID,
		Percentages:  s.config.Percentages(),
		ConfigDigest: s.config.Digest(),
		Details:      details,
	}
	return s.CreateEntry(ctx, operation, models.EntityEarningsAllocation, sweepID, payload, userID)
}

// VerifyChain walks the whole ledger in order and checks every digest and
// every link to the previous entry. It stops at the first broken entry. The
// walk must also reach the last head this process appended or verified, with
// the same digest; otherwise the tail was cut off and the result is truncated.
func (s *auditService) VerifyChain(ctx context.Context) (*models.ChainVerification, error) {
	result := &models.ChainVerification{Valid: true}
	prev := digest.Genesis
	var afterID int64
	head := s.anchor()

	for {
		page, err := s.repo.ListAfter(ctx, afterID, chainPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read audit ledger: %w", err)
		}

		for i := range page {
			entry := &page[i]
			if entry.PrevDigest != prev {
				return s.broken(result, entry.ID, models.ReasonBrokenLink,
					fmt.Sprintf("prev digest %s does not match preceding entry %s", entry.PrevDigest, prev)), nil
			}
			recomputed, err := digest.Of(entry.DigestInput())
			if err != nil || recomputed != entry.DataDigest {
				return s.broken(result, entry.ID, models.ReasonDataTampered,
					fmt.Sprintf("data digest %s does not match recomputed %s", entry.DataDigest, recomputed)), nil
			}
			if head.id > afterID && head.id < entry.ID {
				return s.broken(result, head.id, models.ReasonTruncated,
					fmt.Sprintf("anchored head %d is missing", head.id)), nil
			}
			if entry.ID == head.id && entry.DataDigest != head.digest {
				return s.broken(result, entry.ID, models.ReasonTruncated,
					fmt.Sprintf("anchored head digest %s replaced by %s", head.digest, entry.DataDigest)), nil
			}
			prev = entry.DataDigest
			afterID = entry.ID
			result.Entries++
		}

		if len(page) < chainPageSize {
			break
		}
	}

	if afterID < head.id {
		return s.broken(result, head.id, models.ReasonTruncated,
			fmt.Sprintf("ledger ends at entry %d before anchored head %d", afterID, head.id)), nil
	}

	result.HeadID = afterID
	if afterID > 0 {
		result.HeadDigest = prev
		s.advanceHead(afterID, prev)
	}
	return result, nil
}

func (s *auditService) broken(result *models.ChainVerification, id int64, reason models.VerificationReason, detail string) *models.ChainVerification {
	result.Valid = false
	result.BrokenAt = id
	result.Reason = reason
	result.Detail = detail
	s.logger.Error("audit chain broken",
		zap.Int64("id", id),
		zap.String("reason", string(reason)),
		zap.String("detail", detail),
	)
	return result
}
