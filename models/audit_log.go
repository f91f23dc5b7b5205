package models

import (
	"encoding/json"
	"time"
)

// Audited operations and entity types
const (
	OperationAllocateProfits   = "allocate_profits"
	OperationExecuteAllocation = "execute_allocation"

	EntityEarningsAllocation = "earnings_allocation"
	EntityAllocation         = "allocation"
)

// AuditEntry is one append-only row of the audit ledger
type AuditEntry struct {
	ID           int64           `json:"id"`
	Operation    string          `json:"operation"`
	EntityType   string          `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	Payload      json.RawMessage `json:"payload"`
	UserID       string          `json:"user_id"`
	DataDigest   string          `json:"data_digest"`
	ConfigDigest string          `json:"config_digest"`
	PrevDigest   string          `json:"prev_digest"`
	CreatedAt    time.Time       `json:"created_at"`
	VerifiedAt   *time.Time      `json:"verified_at,omitempty"`
}

// DigestInput is the exact record hashed into DataDigest. Field names are part
// of the ledger format and must not change.
type DigestInput struct {
	Operation    string          `json:"operation"`
	EntityType   string          `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	Payload      json.RawMessage `json:"payload"`
	UserID       string          `json:"user_id"`
	Timestamp    string          `json:"timestamp"`
	ConfigDigest string          `json:"config_digest"`
	PrevDigest   string          `json:"prev_digest"`
}

// DigestInput returns the hashed view of the entry
func (e *AuditEntry) DigestInput() DigestInput {
	return DigestInput{
		Operation:    e.Operation,
		EntityType:   e.EntityType,
		EntityID:     e.EntityID,
		Payload:      e.Payload,
		UserID:       e.UserID,
		Timestamp:    FormatTimestamp(e.CreatedAt),
		ConfigDigest: e.ConfigDigest,
		PrevDigest:   e.PrevDigest,
	}
}

// VerificationReason explains a failed verification
type VerificationReason string

const (
	ReasonNotFound       VerificationReason = "not_found"
	ReasonDataTampered   VerificationReason = "data_tampered"
	ReasonConfigMismatch VerificationReason = "config_mismatch"
)

// VerificationResult is the outcome of verifying one audit entry
type VerificationResult struct {
	EntryID int64              `json:"entry_id"`
	Valid   bool               `json:"valid"`
	Reason  VerificationReason `json:"reason,omitempty"`
	Detail  string             `json:"detail,omitempty"`
}

// AuditTrailItem is an audit entry annotated with its verification
type AuditTrailItem struct {
	AuditEntry
	Verification VerificationResult `json:"verification"`
}

// ChainVerification is the outcome of walking the whole ledger
type ChainVerification struct {
	Valid    bool               `json:"valid"`
	Entries  int                `json:"entries"`
	BrokenAt int64              `json:"broken_at,omitempty"`
	Reason   VerificationReason `json:"reason,omitempty"`
	Detail   string             `json:"detail,omitempty"`
	// HeadID and HeadDigest identify the last entry the walk accepted
	HeadID     int64  `json:"head_id,omitempty"`
	HeadDigest string `json:"head_digest,omitempty"`
}

// ReasonBrokenLink marks an entry whose prev_digest does not match its predecessor
const ReasonBrokenLink VerificationReason = "broken_link"

// ReasonTruncated marks a ledger that no longer reaches a head this process
// has already appended or verified
const ReasonTruncated VerificationReason = "truncated"
