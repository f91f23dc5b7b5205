package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/database"
	"github.com/mintgene/allocation-ledger/executor"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/repositories"
)

type ledgerHarness struct {
	db       *sql.DB
	repos    *repositories.Repositories
	services *Services
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	t.Helper()
	db, err := database.Open(database.DriverMattn, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, zap.NewNop()))

	repos := repositories.NewRepositories(db)
	svcs := NewServices(repos, allocconfig.Default(), executor.NewSimulated(zap.NewNop()), DefaultAllocationOptions(), zap.NewNop())
	return &ledgerHarness{db: db, repos: repos, services: svcs}
}

func (h *ledgerHarness) ingest(t *testing.T, id, value, status string) {
	t.Helper()
	_, err := h.services.Allocation.IngestSweep(context.Background(), models.SweepForm{
		ID: id, USDValue: value, Chain: "solana", Status: status,
	})
	require.NoError(t, err)
}

func TestAllocateProfitsIsIdempotent(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "sweep-1", "1000", "confirmed")

	first, err := h.services.Allocation.AllocateProfits(ctx, "sweep-1")
	require.NoError(t, err)
	assert.False(t, first.AuditDegraded)
	assert.NotZero(t, first.AuditEntryID)

	_, err = h.services.Allocation.AllocateProfits(ctx, "sweep-1")
	assert.ErrorIs(t, err, models.ErrAlreadyAllocated)

	rows, err := h.services.Allocation.GetAllocationsForSweep(ctx, "sweep-1")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	trail, err := h.services.Audit.GetAuditTrail(ctx, models.EntityEarningsAllocation, "sweep-1", 10)
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.True(t, trail[0].Verification.Valid)
}

func TestConcurrentAllocationHasOneWinner(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "contended", "250.55", "confirmed")

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.services.Allocation.AllocateProfits(ctx, "contended")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, models.ErrAlreadyAllocated):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)

	rows, err := h.repos.Allocations.GetBySweep(ctx, "contended")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("250.55")), "sum %s", total)
}

func TestAllocateMissingSweep(t *testing.T) {
	h := newLedgerHarness(t)

	_, err := h.services.Allocation.AllocateProfits(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrSweepNotFound)
}

func TestBatchWithOneBadSweep(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "good-1", "100", "confirmed")
	h.ingest(t, "bad", "100", "confirmed")
	h.ingest(t, "good-2", "300.03", "confirmed")

	// Another writer allocates "bad" between the scan and the batch item
	svc := h.services.Allocation.(*allocationService)
	realAllocations := svc.allocations
	svc.allocations = &racingAllocations{AllocationRepository: realAllocations, sweepID: "bad"}

	result, err := h.services.Allocation.ProcessUnallocatedSweeps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.ElementsMatch(t, []string{"good-1", "good-2"}, result.Allocated)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "bad", result.Failures[0].SweepID)
	assert.Contains(t, result.Failures[0].Reason, models.ErrAlreadyAllocated.Error())

	// A second pass finds nothing left to do
	svc.allocations = realAllocations
	again, err := h.services.Allocation.ProcessUnallocatedSweeps(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Processed)
}

// racingAllocations fails CreateSet for one sweep as if another process won the race
type racingAllocations struct {
	repositories.AllocationRepository
	sweepID string
}

func (r *racingAllocations) CreateSet(ctx context.Context, rows []models.Allocation) ([]models.Allocation, error) {
	if len(rows) > 0 && rows[0].SweepID == r.sweepID {
		if _, err := r.AllocationRepository.CreateSet(ctx, rows); err != nil {
			return nil, err
		}
	}
	return r.AllocationRepository.CreateSet(ctx, rows)
}

func TestExecuteAllocationRoundTrip(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "exec", "80", "confirmed")

	allocated, err := h.services.Allocation.AllocateProfits(ctx, "exec")
	require.NoError(t, err)
	id := allocated.Allocations[0].ID

	result, err := h.services.Allocation.ExecuteAllocation(ctx, id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ExecutionRef, "mock-"))
	assert.False(t, result.AuditDegraded)

	_, err = h.services.Allocation.ExecuteAllocation(ctx, id)
	assert.ErrorIs(t, err, models.ErrAlreadyExecuted)

	executed := true
	done, err := h.services.Allocation.GetAllocations(ctx, models.AllocationFilter{Executed: &executed})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, result.ExecutionRef, done[0].ExecutionRef)

	chain, err := h.services.Audit.VerifyChain(ctx)
	require.NoError(t, err)
	assert.True(t, chain.Valid)
	assert.Equal(t, 2, chain.Entries)
}

// countingExecutor holds every call long enough for callers to overlap
type countingExecutor struct {
	calls atomic.Int32
	delay time.Duration
	fail  atomic.Bool
}

func (e *countingExecutor) Execute(ctx context.Context, req executor.Request) (string, error) {
	e.calls.Add(1)
	select {
	case <-time.After(e.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if e.fail.Load() {
		return "", errors.New("strategy rejected")
	}
	return "tx-" + req.Strategy, nil
}

func TestConcurrentExecuteCallsExecutorOnce(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "exec-race", "500", "confirmed")

	allocated, err := h.services.Allocation.AllocateProfits(ctx, "exec-race")
	require.NoError(t, err)
	id := allocated.Allocations[0].ID

	exec := &countingExecutor{delay: 100 * time.Millisecond}
	h.services.Allocation.(*allocationService).executor = exec

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.services.Allocation.ExecuteAllocation(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, models.ErrExecutionInFlight), errors.Is(err, models.ErrAlreadyExecuted):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), exec.calls.Load())
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)

	stored, err := h.repos.Allocations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.Executed)
}

func TestExecutorFailureReleasesClaim(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()
	h.ingest(t, "exec-retry", "500", "confirmed")

	allocated, err := h.services.Allocation.AllocateProfits(ctx, "exec-retry")
	require.NoError(t, err)
	id := allocated.Allocations[0].ID

	exec := &countingExecutor{}
	exec.fail.Store(true)
	h.services.Allocation.(*allocationService).executor = exec

	_, err = h.services.Allocation.ExecuteAllocation(ctx, id)
	require.Error(t, err)

	stored, err := h.repos.Allocations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, stored.Executed)

	// The failed attempt must not block a retry
	exec.fail.Store(false)
	result, err := h.services.Allocation.ExecuteAllocation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tx-"+stored.Strategy, result.ExecutionRef)
	assert.Equal(t, int32(2), exec.calls.Load())
}

func TestSubCentSweepIsRejected(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	_, err := h.services.Allocation.IngestSweep(ctx, models.SweepForm{
		ID: "fractional", USDValue: "100.005", Chain: "solana", Status: "confirmed",
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// A row written around ingest validation is still refused by the split
	require.NoError(t, h.repos.Sweeps.Upsert(ctx, &models.Sweep{
		ID: "fractional", USDValue: decimal.RequireFromString("100.005"), Chain: "solana", Status: models.SweepConfirmed,
	}))
	_, err = h.services.Allocation.AllocateProfits(ctx, "fractional")
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	rows, err := h.repos.Allocations.GetBySweep(ctx, "fractional")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Whole-cent values always sum back to the sweep exactly
	h.ingest(t, "cents", "100.01", "confirmed")
	allocated, err := h.services.Allocation.AllocateProfits(ctx, "cents")
	require.NoError(t, err)
	stored, err := h.repos.Allocations.GetBySweep(ctx, "cents")
	require.NoError(t, err)
	total := decimal.Zero
	for _, r := range stored {
		total = total.Add(r.Amount)
	}
	assert.True(t, total.Equal(allocated.Total), "sum %s", total)
}

func TestAuditRoundTripAndTampering(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	entry, err := h.services.Audit.CreateEntry(ctx, "manual_adjustment", "sweep", "s-1",
		map[string]any{"amount": "12.34", "note": "reconciled"}, "auditor")
	require.NoError(t, err)

	result, err := h.services.Audit.VerifyEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	stored, err := h.repos.Audit.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.VerifiedAt)

	// Simulate an attacker with direct database access
	_, err = h.db.Exec(`DROP TRIGGER audit_log_no_update`)
	require.NoError(t, err)
	_, err = h.db.Exec(`UPDATE audit_log SET payload = '{"amount":"99.99","note":"reconciled"}' WHERE id = ?`, entry.ID)
	require.NoError(t, err)

	result, err = h.services.Audit.VerifyEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, models.ReasonDataTampered, result.Reason)

	missing, err := h.services.Audit.VerifyEntry(ctx, entry.ID+100)
	require.NoError(t, err)
	assert.Equal(t, models.ReasonNotFound, missing.Reason)
}

func TestVerifyChainDetectsDeletedEntry(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		entry, err := h.services.Audit.CreateEntry(ctx, "op", "thing", "x", map[string]any{"i": i}, "")
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	chain, err := h.services.Audit.VerifyChain(ctx)
	require.NoError(t, err)
	assert.True(t, chain.Valid)
	assert.Equal(t, 3, chain.Entries)

	_, err = h.db.Exec(`DROP TRIGGER audit_log_no_delete`)
	require.NoError(t, err)
	_, err = h.db.Exec(`DELETE FROM audit_log WHERE id = ?`, ids[1])
	require.NoError(t, err)

	chain, err = h.services.Audit.VerifyChain(ctx)
	require.NoError(t, err)
	assert.False(t, chain.Valid)
	assert.Equal(t, ids[2], chain.BrokenAt)
	assert.Equal(t, models.ReasonBrokenLink, chain.Reason)
}

func TestVerifyChainDetectsTruncatedTail(t *testing.T) {
	h := newLedgerHarness(t)
	ctx := context.Background()

	var last *models.AuditEntry
	for i := 0; i < 3; i++ {
		entry, err := h.services.Audit.CreateEntry(ctx, "op", "thing", "x", map[string]any{"i": i}, "")
		require.NoError(t, err)
		last = entry
	}

	chain, err := h.services.Audit.VerifyChain(ctx)
	require.NoError(t, err)
	require.True(t, chain.Valid)
	assert.Equal(t, last.ID, chain.HeadID)
	assert.Equal(t, last.DataDigest, chain.HeadDigest)

	_, err = h.db.Exec(`DROP TRIGGER audit_log_no_delete`)
	require.NoError(t, err)
	_, err = h.db.Exec(`DELETE FROM audit_log WHERE id = ?`, last.ID)
	require.NoError(t, err)

	chain, err = h.services.Audit.VerifyChain(ctx)
	require.NoError(t, err)
	assert.False(t, chain.Valid)
	assert.Equal(t, models.ReasonTruncated, chain.Reason)
	assert.Equal(t, last.ID, chain.BrokenAt)
	assert.Equal(t, 2, chain.Entries)
}

func TestDigestSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restart.db")
	ctx := context.Background()

	db, err := database.Open(database.DriverMattn, path)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, zap.NewNop()))
	svcs := NewServices(repositories.NewRepositories(db), allocconfig.Default(),
		executor.NewSimulated(zap.NewNop()), DefaultAllocationOptions(), zap.NewNop())

	entry, err := svcs.Audit.CreateEntry(ctx, "op", "thing", "x",
		map[string]any{"z": 1, "a": map[string]any{"y": 2.50, "b": "c"}, "m": []int{3, 1}}, "")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening with the pure-Go driver must not change any digest
	db2, err := database.Open(database.DriverModernc, path)
	require.NoError(t, err)
	defer db2.Close()
	svcs2 := NewServices(repositories.NewRepositories(db2), allocconfig.Default(),
		executor.NewSimulated(zap.NewNop()), DefaultAllocationOptions(), zap.NewNop())

	result, err := svcs2.Audit.VerifyEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Detail)
}
