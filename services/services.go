package services

import (
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/executor"
	"github.com/mintgene/allocation-ledger/repositories"
)

//go:generate mockery --name=AllocationService --name=AuditService --with-expecter --output=mocks --outpkg=mocks

// Services holds all service instances
type Services struct {
	Allocation AllocationService
	Audit      AuditService
}

// NewServices creates and initializes all service instances. The audit ledger
// is built first because the allocation engine writes to it.
func NewServices(repos *repositories.Repositories, config *allocconfig.Config, exec executor.Executor, opts AllocationOptions, logger *zap.Logger) *Services {
	audit := NewAuditService(repos.Audit, config, logger.Named("audit"))
	return &Services{
		Audit:      audit,
		Allocation: NewAllocationService(repos.Sweeps, repos.Allocations, audit, config, exec, opts, logger.Named("allocation")),
	}
}
