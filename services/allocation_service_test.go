package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
	"unsafe"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/executor"
	execmocks "github.com/mintgene/allocation-ledger/executor/mocks"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/repositories/mocks"
	svcmocks "github.com/mintgene/allocation-ledger/services/mocks"
)

// tamperPercentages rewrites the frozen percentage table in place, the way a
// stray pointer write would
func tamperPercentages(t *testing.T, cfg *allocconfig.Config, category allocconfig.Category, pct int) {
	t.Helper()
	field := reflect.ValueOf(cfg).Elem().FieldByName("percentages")
	require.True(t, field.IsValid())
	live := reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	live.SetMapIndex(reflect.ValueOf(category), reflect.ValueOf(pct))
}

// AllocationServiceTestSuite tests the allocation engine against mocked collaborators
type AllocationServiceTestSuite struct {
	suite.Suite
	service         AllocationService
	config          *allocconfig.Config
	mockSweeps      *mocks.MockSweepRepository
	mockAllocations *mocks.MockAllocationRepository
	mockAudit       *svcmocks.MockAuditService
	mockExecutor    *execmocks.MockExecutor
	now             time.Time
}

// SetupTest sets up the test suite before each test
func (suite *AllocationServiceTestSuite) SetupTest() {
	suite.mockSweeps = mocks.NewMockSweepRepository(suite.T())
	suite.mockAllocations = mocks.NewMockAllocationRepository(suite.T())
	suite.mockAudit = svcmocks.NewMockAuditService(suite.T())
	suite.mockExecutor = execmocks.NewMockExecutor(suite.T())
	suite.config = allocconfig.Default()
	suite.now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	svc := NewAllocationService(
		suite.mockSweeps,
		suite.mockAllocations,
		suite.mockAudit,
		suite.config,
		suite.mockExecutor,
		AllocationOptions{ScanWindow: 24 * time.Hour, ScanBatchLimit: 10, ExecutorTimeout: time.Second},
		zap.NewNop(),
	)
	svc.(*allocationService).now = func() time.Time { return suite.now }
	suite.service = svc
}

func (suite *AllocationServiceTestSuite) sweep(id, value, chain string) *models.Sweep {
	return &models.Sweep{
		ID:       id,
		USDValue: decimal.RequireFromString(value),
		Chain:    chain,
		Status:   models.SweepConfirmed,
	}
}

// echoCreateSet assigns IDs the way the repository would
func echoCreateSet(_ context.Context, rows []models.Allocation) ([]models.Allocation, error) {
	out := make([]models.Allocation, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].ID = int64(i + 1)
	}
	return out, nil
}

// TestAllocateProfits_SolanaThousand tests the $1000 Solana scenario end to end
func (suite *AllocationServiceTestSuite) TestAllocateProfits_SolanaThousand() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "sweep-1000").Return(suite.sweep("sweep-1000", "1000", "solana"), nil)
	suite.mockAllocations.EXPECT().CreateSet(mock.Anything, mock.AnythingOfType("[]models.Allocation")).RunAndReturn(echoCreateSet)
	suite.mockAudit.EXPECT().
		AuditEarningsOperation(mock.Anything, models.OperationAllocateProfits, "sweep-1000", mock.Anything, "").
		Return(&models.AuditEntry{ID: 42}, nil)

	// Act
	result, err := suite.service.AllocateProfits(context.Background(), "sweep-1000")

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sweep-1000", result.SweepID)
	assert.Equal(suite.T(), int64(42), result.AuditEntryID)
	assert.False(suite.T(), result.AuditDegraded)
	require.Len(suite.T(), result.Allocations, 4)

	want := map[allocconfig.Category]struct {
		amount   string
		strategy string
	}{
		allocconfig.Vault:       {"400.00", "solana_validator_staking"},
		allocconfig.Growth:      {"300.00", "marinade_liquid_staking"},
		allocconfig.Speculative: {"200.00", "raydium_liquidity"},
		allocconfig.Treasury:    {"100.00", "treasury_multisig"},
	}
	for _, a := range result.Allocations {
		expected := want[a.Category]
		assert.Equal(suite.T(), expected.amount, a.Amount.StringFixed(2), a.Category)
		assert.Equal(suite.T(), expected.strategy, a.Strategy, a.Category)
		assert.Equal(suite.T(), suite.config.Digest(), a.ConfigDigest)
		assert.Equal(suite.T(), "solana", a.Chain)
	}
}

// TestAllocateProfits_RoundingRemainderToTreasury tests the 100.01 rounding case
func (suite *AllocationServiceTestSuite) TestAllocateProfits_RoundingRemainderToTreasury() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "odd").Return(suite.sweep("odd", "100.01", "ethereum"), nil)
	suite.mockAllocations.EXPECT().CreateSet(mock.Anything, mock.MatchedBy(func(rows []models.Allocation) bool {
		total := decimal.Zero
		for _, r := range rows {
			total = total.Add(r.Amount)
		}
		return len(rows) == 4 && total.Equal(decimal.RequireFromString("100.01"))
	})).RunAndReturn(echoCreateSet)
	suite.mockAudit.EXPECT().AuditEarningsOperation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.AuditEntry{ID: 1}, nil)

	result, err := suite.service.AllocateProfits(context.Background(), "odd")

	require.NoError(suite.T(), err)
	treasury := result.Allocations[3]
	assert.Equal(suite.T(), allocconfig.Treasury, treasury.Category)
	assert.Equal(suite.T(), "10.01", treasury.Amount.StringFixed(2))
}

// TestAllocateProfits_MissingSweep tests that an unknown sweep is rejected
func (suite *AllocationServiceTestSuite) TestAllocateProfits_MissingSweep() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "missing").Return(nil, models.ErrNotFound)

	result, err := suite.service.AllocateProfits(context.Background(), "missing")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, models.ErrSweepNotFound)
}

// TestAllocateProfits_UnconfirmedSweep tests that only confirmed sweeps are allocated
func (suite *AllocationServiceTestSuite) TestAllocateProfits_UnconfirmedSweep() {
	pending := suite.sweep("pending", "10", "solana")
	pending.Status = models.SweepPending
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "pending").Return(pending, nil)

	_, err := suite.service.AllocateProfits(context.Background(), "pending")

	assert.ErrorIs(suite.T(), err, models.ErrSweepNotFound)
}

// TestAllocateProfits_TamperedConfig tests that a tampered config aborts before anything is persisted
func (suite *AllocationServiceTestSuite) TestAllocateProfits_TamperedConfig() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "s").Return(suite.sweep("s", "1000", "solana"), nil)
	tamperPercentages(suite.T(), suite.config, allocconfig.Vault, 90)

	_, err := suite.service.AllocateProfits(context.Background(), "s")

	assert.ErrorIs(suite.T(), err, models.ErrConfigTampered)
	suite.mockAllocations.AssertNotCalled(suite.T(), "CreateSet", mock.Anything, mock.Anything)
}

// TestAllocateProfits_AlreadyAllocated tests that a duplicate allocation is surfaced unchanged
func (suite *AllocationServiceTestSuite) TestAllocateProfits_AlreadyAllocated() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "dup").Return(suite.sweep("dup", "10", "solana"), nil)
	suite.mockAllocations.EXPECT().CreateSet(mock.Anything, mock.Anything).
		Return(nil, models.ErrAlreadyAllocated)

	_, err := suite.service.AllocateProfits(context.Background(), "dup")

	assert.ErrorIs(suite.T(), err, models.ErrAlreadyAllocated)
}

// TestAllocateProfits_AuditFailureIsDegradedSuccess tests that audit failures do not fail the allocation
func (suite *AllocationServiceTestSuite) TestAllocateProfits_AuditFailureIsDegradedSuccess() {
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "s").Return(suite.sweep("s", "50", "skale"), nil)
	suite.mockAllocations.EXPECT().CreateSet(mock.Anything, mock.Anything).RunAndReturn(echoCreateSet)
	suite.mockAudit.EXPECT().AuditEarningsOperation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, models.ErrAuditWriteFailed)

	result, err := suite.service.AllocateProfits(context.Background(), "s")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.AuditDegraded)
	assert.Contains(suite.T(), result.AuditError, "audit write failed")
	assert.Len(suite.T(), result.Allocations, 4)
}

// TestGetTargetStrategy tests the chain lookup and default fallback
func (suite *AllocationServiceTestSuite) TestGetTargetStrategy() {
	tests := []struct {
		category allocconfig.Category
		chain    string
		want     string
	}{
		{allocconfig.Vault, "solana", "solana_validator_staking"},
		{allocconfig.Vault, "ethereum", "lido_staking"},
		{allocconfig.Vault, "polygon", "stablecoin_vault"},
		{allocconfig.Speculative, "skale", "ruby_exchange_liquidity"},
		{allocconfig.Treasury, "solana", "treasury_multisig"},
	}
	for _, tt := range tests {
		got, err := suite.service.GetTargetStrategy(tt.category, tt.chain)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), tt.want, got, "%s/%s", tt.category, tt.chain)
	}

	_, err := suite.service.GetTargetStrategy("moonshot", "solana")
	assert.ErrorIs(suite.T(), err, models.ErrUnknownCategory)
}

// TestGetTargetStrategy_DegradedFallback tests the legacy table after tampering
func (suite *AllocationServiceTestSuite) TestGetTargetStrategy_DegradedFallback() {
	tamperPercentages(suite.T(), suite.config, allocconfig.Growth, 1)

	got, err := suite.service.GetTargetStrategy(allocconfig.Vault, "solana")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "cold_storage", got)

	_, err = suite.service.GetTargetStrategy("moonshot", "solana")
	assert.ErrorIs(suite.T(), err, models.ErrUnknownCategory)
}

func (suite *AllocationServiceTestSuite) unexecuted(id int64) *models.Allocation {
	return &models.Allocation{
		ID:       id,
		SweepID:  "s",
		Category: allocconfig.Vault,
		Amount:   decimal.RequireFromString("400.00"),
		Strategy: "solana_validator_staking",
		Chain:    "solana",
	}
}

// TestExecuteAllocation_Success tests a successful execution
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_Success() {
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.unexecuted(7), nil)
	suite.mockAllocations.EXPECT().Claim(mock.Anything, int64(7), suite.now, suite.now.Add(-2*time.Second)).Return(nil)
	suite.mockExecutor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(req executor.Request) bool {
		return req.AllocationID == 7 && req.Strategy == "solana_validator_staking" && req.Amount.Equal(decimal.NewFromInt(400))
	})).Return("tx-7", nil)
	suite.mockAllocations.EXPECT().MarkExecuted(mock.Anything, int64(7), "tx-7", suite.now).Return(nil)
	suite.mockAudit.EXPECT().
		CreateEntry(mock.Anything, models.OperationExecuteAllocation, models.EntityAllocation, "7", mock.Anything, "").
		Return(&models.AuditEntry{ID: 3}, nil)

	result, err := suite.service.ExecuteAllocation(context.Background(), 7)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "tx-7", result.ExecutionRef)
	assert.True(suite.T(), result.Allocation.Executed)
	assert.Equal(suite.T(), int64(3), result.AuditEntryID)
}

// TestExecuteAllocation_AlreadyExecuted tests that an executed allocation is not re-run
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_AlreadyExecuted() {
	done := suite.unexecuted(8)
	done.Executed = true
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(8)).Return(done, nil)

	_, err := suite.service.ExecuteAllocation(context.Background(), 8)

	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExecuted)
}

// TestExecuteAllocation_NotFound tests a missing allocation
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_NotFound() {
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, models.ErrNotFound)

	_, err := suite.service.ExecuteAllocation(context.Background(), 9)

	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

// TestExecuteAllocation_ExecutorFailurePropagates tests that executor errors leave the allocation untouched
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_ExecutorFailurePropagates() {
	boom := errors.New("strategy rejected")
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.unexecuted(7), nil)
	suite.mockAllocations.EXPECT().Claim(mock.Anything, int64(7), suite.now, suite.now.Add(-2*time.Second)).Return(nil)
	suite.mockExecutor.EXPECT().Execute(mock.Anything, mock.Anything).Return("", boom)
	suite.mockAllocations.EXPECT().ReleaseClaim(mock.Anything, int64(7)).Return(nil)

	_, err := suite.service.ExecuteAllocation(context.Background(), 7)

	assert.ErrorIs(suite.T(), err, boom)
	assert.NotErrorIs(suite.T(), err, models.ErrCollaboratorTimeout)
	suite.mockAllocations.AssertNotCalled(suite.T(), "MarkExecuted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestExecuteAllocation_Timeout tests that a hanging executor fails with a typed timeout
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_Timeout() {
	svc := suite.service.(*allocationService)
	svc.opts.ExecutorTimeout = 20 * time.Millisecond

	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.unexecuted(7), nil)
	suite.mockAllocations.EXPECT().Claim(mock.Anything, int64(7), suite.now, suite.now.Add(-40*time.Millisecond)).Return(nil)
	suite.mockAllocations.EXPECT().ReleaseClaim(mock.Anything, int64(7)).Return(nil)
	suite.mockExecutor.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ executor.Request) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := suite.service.ExecuteAllocation(context.Background(), 7)

	assert.ErrorIs(suite.T(), err, models.ErrCollaboratorTimeout)
	suite.mockAllocations.AssertNotCalled(suite.T(), "MarkExecuted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestExecuteAllocation_InFlight tests that a claimed allocation never reaches the executor
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_InFlight() {
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.unexecuted(7), nil)
	suite.mockAllocations.EXPECT().Claim(mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(models.ErrExecutionInFlight)

	_, err := suite.service.ExecuteAllocation(context.Background(), 7)

	assert.ErrorIs(suite.T(), err, models.ErrExecutionInFlight)
	suite.mockExecutor.AssertNotCalled(suite.T(), "Execute", mock.Anything, mock.Anything)
	suite.mockAllocations.AssertNotCalled(suite.T(), "ReleaseClaim", mock.Anything, mock.Anything)
}

// TestExecuteAllocation_ReleaseFailureKeepsExecutorError tests that a failed release is only logged
func (suite *AllocationServiceTestSuite) TestExecuteAllocation_ReleaseFailureKeepsExecutorError() {
	boom := errors.New("strategy rejected")
	suite.mockAllocations.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.unexecuted(7), nil)
	suite.mockAllocations.EXPECT().Claim(mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil)
	suite.mockExecutor.EXPECT().Execute(mock.Anything, mock.Anything).Return("", boom)
	suite.mockAllocations.EXPECT().ReleaseClaim(mock.Anything, int64(7)).Return(errors.New("database is locked"))

	_, err := suite.service.ExecuteAllocation(context.Background(), 7)

	assert.ErrorIs(suite.T(), err, boom)
}

// TestProcessUnallocatedSweeps_OneBadSweep tests that one failing sweep does not block the batch
func (suite *AllocationServiceTestSuite) TestProcessUnallocatedSweeps_OneBadSweep() {
	candidates := []models.Sweep{
		*suite.sweep("good-1", "100", "solana"),
		*suite.sweep("bad", "100", "solana"),
		*suite.sweep("good-2", "100", "ethereum"),
	}
	suite.mockSweeps.EXPECT().ListUnallocatedConfirmed(mock.Anything, suite.now.Add(-24*time.Hour), 10).Return(candidates, nil)
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "good-1").Return(&candidates[0], nil)
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "bad").Return(nil, errors.New("disk I/O error"))
	suite.mockSweeps.EXPECT().GetByID(mock.Anything, "good-2").Return(&candidates[2], nil)
	suite.mockAllocations.EXPECT().CreateSet(mock.Anything, mock.Anything).RunAndReturn(echoCreateSet).Times(2)
	suite.mockAudit.EXPECT().AuditEarningsOperation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.AuditEntry{ID: 1}, nil).Times(2)

	result, err := suite.service.ProcessUnallocatedSweeps(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.Processed)
	assert.Equal(suite.T(), 2, result.Succeeded)
	assert.Equal(suite.T(), 1, result.Failed)
	assert.Equal(suite.T(), []string{"good-1", "good-2"}, result.Allocated)
	require.Len(suite.T(), result.Failures, 1)
	assert.Equal(suite.T(), "bad", result.Failures[0].SweepID)
	assert.Contains(suite.T(), result.Failures[0].Reason, "disk I/O error")
}

// TestProcessUnallocatedSweeps_ListFailure tests that only a listing failure fails the batch
func (suite *AllocationServiceTestSuite) TestProcessUnallocatedSweeps_ListFailure() {
	suite.mockSweeps.EXPECT().ListUnallocatedConfirmed(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database is locked"))

	_, err := suite.service.ProcessUnallocatedSweeps(context.Background())

	assert.ErrorContains(suite.T(), err, "database is locked")
}

// TestGetAllocations_RejectsUnknownCategory tests filter validation
func (suite *AllocationServiceTestSuite) TestGetAllocations_RejectsUnknownCategory() {
	_, err := suite.service.GetAllocations(context.Background(), models.AllocationFilter{Category: "moonshot"})
	assert.ErrorIs(suite.T(), err, models.ErrUnknownCategory)

	_, err = suite.service.GetAllocations(context.Background(), models.AllocationFilter{Limit: -1})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

// TestGetAllocations_PassesFilter tests that filters reach the repository unchanged
func (suite *AllocationServiceTestSuite) TestGetAllocations_PassesFilter() {
	executed := false
	filter := models.AllocationFilter{Category: allocconfig.Growth, Executed: &executed, Chain: "solana", Limit: 5}
	suite.mockAllocations.EXPECT().List(mock.Anything, filter).Return([]models.Allocation{{ID: 1}}, nil)

	got, err := suite.service.GetAllocations(context.Background(), filter)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
}

// TestIngestSweep_Validation tests that invalid sweeps never reach the repository
func (suite *AllocationServiceTestSuite) TestIngestSweep_Validation() {
	_, err := suite.service.IngestSweep(context.Background(), models.SweepForm{ID: "x", USDValue: "-1", Chain: "solana", Status: "confirmed"})

	var validationErr *models.ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

// TestIngestSweep_Stores tests that a valid sweep is normalized and stored
func (suite *AllocationServiceTestSuite) TestIngestSweep_Stores() {
	suite.mockSweeps.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(s *models.Sweep) bool {
		return s.ID == "s-1" && s.Chain == "solana" && s.USDValue.Equal(decimal.RequireFromString("12.5"))
	})).Return(nil)

	sweep, err := suite.service.IngestSweep(context.Background(), models.SweepForm{
		ID: "s-1", USDValue: "12.5", Chain: " Solana ", Status: "confirmed",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SweepConfirmed, sweep.Status)
}

// TestAllocationServiceTestSuite runs the allocation service test suite
func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}
