package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

// Allocation is one category's share of a sweep
type Allocation struct {
	ID           int64                `json:"id" db:"id"`
	SweepID      string               `json:"sweep_id" db:"sweep_id"`
	Category     allocconfig.Category `json:"category" db:"category"`
	Percentage   int                  `json:"percentage" db:"percentage"`
	Amount       decimal.Decimal      `json:"amount" db:"amount"`
	Strategy     string               `json:"strategy" db:"strategy"`
	Chain        string               `json:"chain" db:"chain"`
	Executed     bool                 `json:"executed" db:"executed"`
	ExecutionRef string               `json:"execution_ref,omitempty" db:"execution_ref"`
	ExecutedAt   *time.Time           `json:"executed_at,omitempty" db:"executed_at"`
	ConfigDigest string               `json:"config_digest" db:"config_digest"`
	CreatedAt    time.Time            `json:"created_at" db:"created_at"`
}

// AllocationFilter narrows allocation listings. Zero values mean "any".
type AllocationFilter struct {
	Category allocconfig.Category
	Executed *bool
	Chain    string
	Since    time.Time
	Limit    int
}

// DefaultAllocationLimit caps listings that do not set a limit
const DefaultAllocationLimit = 100

// AllocationResult is returned by a successful allocation
type AllocationResult struct {
	SweepID      string          `json:"sweep_id"`
	Total        decimal.Decimal `json:"total"`
	Allocations  []Allocation    `json:"allocations"`
	AuditEntryID int64           `json:"audit_entry_id,omitempty"`
	// AuditDegraded is set when the allocations committed but the audit entry could not be written.
	AuditDegraded bool   `json:"audit_degraded"`
	AuditError    string `json:"audit_error,omitempty"`
}

// ExecutionResult is returned by a successful execution
type ExecutionResult struct {
	Allocation    Allocation `json:"allocation"`
	ExecutionRef  string     `json:"execution_ref"`
	AuditEntryID  int64      `json:"audit_entry_id,omitempty"`
	AuditDegraded bool       `json:"audit_degraded"`
	AuditError    string     `json:"audit_error,omitempty"`
}

// BatchFailure records why one sweep in a batch was not allocated
type BatchFailure struct {
	SweepID string `json:"sweep_id"`
	Reason  string `json:"reason"`
}

// BatchResult summarizes a batch allocation pass
type BatchResult struct {
	Processed int            `json:"processed"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Allocated []string       `json:"allocated"`
	Failures  []BatchFailure `json:"failures"`
	Degraded  []string       `json:"audit_degraded,omitempty"`
}
