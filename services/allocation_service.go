package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/executor"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/repositories"
)

// AllocationService interface defines the allocation engine business logic
type AllocationService interface {
	IngestSweep(ctx context.Context, form models.SweepForm) (*models.Sweep, error)
	GetSweep(ctx context.Context, id string) (*models.Sweep, error)
	AllocateProfits(ctx context.Context, sweepID string) (*models.AllocationResult, error)
	GetTargetStrategy(category allocconfig.Category, chain string) (string, error)
	ExecuteAllocation(ctx context.Context, allocationID int64) (*models.ExecutionResult, error)
	ProcessUnallocatedSweeps(ctx context.Context) (*models.BatchResult, error)
	GetAllocations(ctx context.Context, filter models.AllocationFilter) ([]models.Allocation, error)
	GetAllocationsForSweep(ctx context.Context, sweepID string) ([]models.Allocation, error)
}

// AllocationOptions tunes the batch scan and executor calls
type AllocationOptions struct {
	ScanWindow      time.Duration
	ScanBatchLimit  int
	ExecutorTimeout time.Duration
}

// DefaultAllocationOptions returns the options used when none are configured
func DefaultAllocationOptions() AllocationOptions {
	return AllocationOptions{
		ScanWindow:      24 * time.Hour,
		ScanBatchLimit:  100,
		ExecutorTimeout: 30 * time.Second,
	}
}

// legacyStrategies is the degraded-mode table used only when the
// configuration fails its integrity check
var legacyStrategies = map[allocconfig.Category]string{
	allocconfig.Vault:       "cold_storage",
	allocconfig.Growth:      "lending",
	allocconfig.Speculative: "liquidity_provision",
	allocconfig.Treasury:    "treasury_hold",
}

// allocationService implements AllocationService interface
type allocationService struct {
	sweeps      repositories.SweepRepository
	allocations repositories.AllocationRepository
	audit       AuditService
	config      *allocconfig.Config
	executor    executor.Executor
	opts        AllocationOptions
	logger      *zap.Logger
	now         func() time.Time
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	sweeps repositories.SweepRepository,
	allocations repositories.AllocationRepository,
	audit AuditService,
	config *allocconfig.Config,
	exec executor.Executor,
	opts AllocationOptions,
	logger *zap.Logger,
) AllocationService {
	defaults := DefaultAllocationOptions()
	if opts.ScanWindow <= 0 {
		opts.ScanWindow = defaults.ScanWindow
	}
	if opts.ScanBatchLimit <= 0 {
		opts.ScanBatchLimit = defaults.ScanBatchLimit
	}
	if opts.ExecutorTimeout <= 0 {
		opts.ExecutorTimeout = defaults.ExecutorTimeout
	}

	return &allocationService{
		sweeps:      sweeps,
		allocations: allocations,
		audit:       audit,
		config:      config,
		executor:    exec,
		opts:        opts,
		logger:      logger,
		now:         time.Now,
	}
}

// IngestSweep validates and stores a sweep reported by the sweep source
func (s *allocationService) IngestSweep(ctx context.Context, form models.SweepForm) (*models.Sweep, error) {
	// Validate form
	if errors := form.Validate(); len(errors) > 0 {
		return nil, &models.ValidationError{Messages: errors}
	}

	sweep, err := form.ToSweep()
	if err != nil {
		return nil, err
	}

	if err := s.sweeps.Upsert(ctx, sweep); err != nil {
		return nil, err
	}

	s.logger.Info("sweep ingested",
		zap.String("sweep_id", sweep.ID),
		zap.String("status", string(sweep.Status)),
		zap.String("usd_value", sweep.USDValue.String()),
	)
	return sweep, nil
}

// GetSweep retrieves a sweep by ID
func (s *allocationService) GetSweep(ctx context.Context, id string) (*models.Sweep, error) {
	return s.sweeps.GetByID(ctx, id)
}

// AllocateProfits splits a confirmed sweep into its four category allocations.
// The allocations commit in one transaction. The audit entry is written after
// the commit; if that write fails the result is flagged as degraded instead of
// failing the call.
func (s *allocationService) AllocateProfits(ctx context.Context, sweepID string) (*models.AllocationResult, error) {
	sweep, err := s.sweeps.GetByID(ctx, sweepID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("sweep %s: %w", sweepID, models.ErrSweepNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sweep: %w", err)
	}
	if !sweep.IsConfirmed() {
		return nil, fmt.Errorf("sweep %s is %s: %w", sweepID, sweep.Status, models.ErrSweepNotFound)
	}

	if err := s.config.CheckIntegrity(); err != nil {
		s.logger.Error("refusing allocation, configuration integrity check failed",
			zap.String("sweep_id", sweepID), zap.Error(err))
		return nil, err
	}

	split, err := s.config.CalculateSplit(sweep.USDValue)
	if err != nil {
		return nil, fmt.Errorf("sweep %s: %w", sweepID, err)
	}

	percentages := s.config.Percentages()
	configDigest := s.config.Digest()
	rows := make([]models.Allocation, 0, len(split))
	for _, category := range allocconfig.Categories() {
		strategy, err := s.GetTargetStrategy(category, sweep.Chain)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.Allocation{
			SweepID:      sweep.ID,
			Category:     category,
			Percentage:   percentages[category],
			Amount:       split[category],
			Strategy:     strategy,
			Chain:        sweep.Chain,
			ConfigDigest: configDigest,
		})
	}

	created, err := s.allocations.CreateSet(ctx, rows)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyAllocated) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist allocations: %w", err)
	}

	result := &models.AllocationResult{
		SweepID:     sweep.ID,
		Total:       sweep.USDValue,
		Allocations: created,
	}

	entry, err := s.audit.AuditEarningsOperation(ctx, models.OperationAllocateProfits, sweep.ID, allocationDetails(sweep, created), "")
	if err != nil {
		s.logger.Warn("allocations committed but audit write failed",
			zap.String("sweep_id", sweep.ID), zap.Error(err))
		result.AuditDegraded = true
		result.AuditError = err.Error()
	} else {
		result.AuditEntryID = entry.ID
	}

	s.logger.Info("sweep allocated",
		zap.String("sweep_id", sweep.ID),
		zap.String("total", sweep.USDValue.String()),
		zap.Bool("audit_degraded", result.AuditDegraded),
	)
	return result, nil
}

type allocationLine struct {
	ID         int64  `json:"id"`
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Amount     string `json:"amount"`
	Strategy   string `json:"strategy"`
}

func allocationDetails(sweep *models.Sweep, allocations []models.Allocation) map[string]any {
	lines := make([]allocationLine, 0, len(allocations))
	for _, a := range allocations {
		lines = append(lines, allocationLine{
			ID:         a.ID,
			Category:   string(a.Category),
			Percentage: a.Percentage,
			Amount:     a.Amount.StringFixed(2),
			Strategy:   a.Strategy,
		})
	}
	return map[string]any{
		"total":       sweep.USDValue.String(),
		"chain":       sweep.Chain,
		"tx_hash":     sweep.TxHash,
		"allocations": lines,
	}
}

// GetTargetStrategy resolves the strategy for a category on a chain. If the
// configuration fails its integrity check the legacy table is used and a
// warning is logged; this path never runs on a healthy process.
func (s *allocationService) GetTargetStrategy(category allocconfig.Category, chain string) (string, error) {
	if err := s.config.CheckIntegrity(); err != nil {
		fallback, ok := legacyStrategies[category]
		if !ok {
			return "", fmt.Errorf("%w: %q", models.ErrUnknownCategory, category)
		}
		s.logger.Warn("strategy lookup degraded, using legacy table",
			zap.String("category", string(category)),
			zap.String("chain", chain),
			zap.String("strategy", fallback),
			zap.Error(err),
		)
		return fallback, nil
	}
	return s.config.Strategy(category, chain)
}

// ExecuteAllocation hands an unexecuted allocation to the executor and records
// the returned reference. The allocation is claimed first, so a concurrent
// call fails with models.ErrExecutionInFlight instead of reaching the
// executor. Executor errors release the claim and are returned as they are;
// the allocation stays unexecuted.
func (s *allocationService) ExecuteAllocation(ctx context.Context, allocationID int64) (*models.ExecutionResult, error) {
	allocation, err := s.allocations.GetByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	if allocation.Executed {
		return nil, fmt.Errorf("allocation with ID %d: %w", allocationID, models.ErrAlreadyExecuted)
	}

	claimedAt := s.now().UTC()
	if err := s.allocations.Claim(ctx, allocationID, claimedAt, claimedAt.Add(-s.claimLease())); err != nil {
		return nil, err
	}

	execCtx, cancel := context.WithTimeout(ctx, s.opts.ExecutorTimeout)
	defer cancel()

	ref, err := s.executor.Execute(execCtx, executor.Request{
		AllocationID: allocation.ID,
		Category:     allocation.Category,
		Chain:        allocation.Chain,
		Strategy:     allocation.Strategy,
		Amount:       allocation.Amount,
	})
	if err != nil {
		s.releaseClaim(ctx, allocationID)
		if executor.IsTimeout(err) {
			return nil, fmt.Errorf("allocation %d after %s: %w: %w", allocationID, s.opts.ExecutorTimeout, models.ErrCollaboratorTimeout, err)
		}
		return nil, fmt.Errorf("allocation %d: %w", allocationID, err)
	}

	executedAt := s.now().UTC()
	if err := s.allocations.MarkExecuted(ctx, allocationID, ref, executedAt); err != nil {
		s.logger.Error("strategy executed but allocation could not be marked",
			zap.Int64("allocation_id", allocationID),
			zap.String("execution_ref", ref),
			zap.Error(err),
		)
		return nil, err
	}
	allocation.Executed = true
	allocation.ExecutionRef = ref
	allocation.ExecutedAt = &executedAt

	result := &models.ExecutionResult{Allocation: *allocation, ExecutionRef: ref}

	entry, err := s.audit.CreateEntry(ctx, models.OperationExecuteAllocation, models.EntityAllocation,
		fmt.Sprintf("%d", allocationID), map[string]any{
			"sweep_id":      allocation.SweepID,
			"category":      string(allocation.Category),
			"amount":        allocation.Amount.StringFixed(2),
			"strategy":      allocation.Strategy,
			"chain":         allocation.Chain,
			"execution_ref": ref,
		}, "")
	if err != nil {
		s.logger.Warn("allocation executed but audit write failed",
			zap.Int64("allocation_id", allocationID), zap.Error(err))
		result.AuditDegraded = true
		result.AuditError = err.Error()
	} else {
		result.AuditEntryID = entry.ID
	}

	s.logger.Info("allocation executed",
		zap.Int64("allocation_id", allocationID),
		zap.String("execution_ref", ref),
	)
	return result, nil
}

// ProcessUnallocatedSweeps allocates every confirmed, unallocated sweep within
// the scan window. A failing sweep is recorded and the batch continues; only a
// failure to list candidates is returned as an error.
func (s *allocationService) ProcessUnallocatedSweeps(ctx context.Context) (*models.BatchResult, error) {
	since := s.now().Add(-s.opts.ScanWindow)
	candidates, err := s.sweeps.ListUnallocatedConfirmed(ctx, since, s.opts.ScanBatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unallocated sweeps: %w", err)
	}

	result := &models.BatchResult{
		Allocated: []string{},
		Failures:  []models.BatchFailure{},
	}
	for _, sweep := range candidates {
		// Items not started before cancellation are picked up by the next pass
		if ctx.Err() != nil {
			break
		}
		result.Processed++

		allocated, err := s.AllocateProfits(ctx, sweep.ID)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, models.BatchFailure{SweepID: sweep.ID, Reason: err.Error()})
			s.logger.Warn("sweep allocation failed", zap.String("sweep_id", sweep.ID), zap.Error(err))
			continue
		}
		result.Succeeded++
		result.Allocated = append(result.Allocated, sweep.ID)
		if allocated.AuditDegraded {
			result.Degraded = append(result.Degraded, sweep.ID)
		}
	}

	if result.Processed > 0 {
		s.logger.Info("batch allocation finished",
			zap.Int("processed", result.Processed),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed),
		)
	}
	return result, nil
}

// GetAllocations lists allocations matching the filter
func (s *allocationService) GetAllocations(ctx context.Context, filter models.AllocationFilter) ([]models.Allocation, error) {
	if filter.Category != "" {
		if _, err := allocconfig.ParseCategory(string(filter.Category)); err != nil {
			return nil, err
		}
	}
	if filter.Limit < 0 {
		return nil, &models.ValidationError{Messages: []string{"limit must not be negative"}}
	}
	return s.allocations.List(ctx, filter)
}

// GetAllocationsForSweep lists the allocations of one sweep
func (s *allocationService) GetAllocationsForSweep(ctx context.Context, sweepID string) ([]models.Allocation, error) {
	if _, err := s.sweeps.GetByID(ctx, sweepID); err != nil {
		return nil, err
	}
	return s.allocations.GetBySweep(ctx, sweepID)
}

// claimLease is how long a claim blocks other callers. A claim left behind by
// a crashed process expires after it.
func (s *allocationService) claimLease() time.Duration {
	return 2 * s.opts.ExecutorTimeout
}

func (s *allocationService) releaseClaim(ctx context.Context, allocationID int64) {
	if err := s.allocations.ReleaseClaim(context.WithoutCancel(ctx), allocationID); err != nil {
		s.logger.Warn("failed to release allocation claim",
			zap.Int64("allocation_id", allocationID),
			zap.Error(err),
		)
	}
}
