package models

import (
	"errors"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

// Rejected operations
var (
	ErrNotFound          = errors.New("not found")
	ErrSweepNotFound     = errors.New("sweep not found or not confirmed")
	ErrAlreadyAllocated  = errors.New("sweep already allocated")
	ErrAlreadyExecuted   = errors.New("allocation already executed")
	ErrExecutionInFlight = errors.New("allocation execution in progress")
	ErrUnknownCategory   = allocconfig.ErrUnknownCategory
	ErrInvalidAmount     = allocconfig.ErrInvalidAmount
	ErrValidation        = errors.New("validation failed")
)

// Integrity violations
var (
	ErrConfigTampered = allocconfig.ErrConfigTampered
	ErrDataTampered   = errors.New("audit data tampered")
	ErrConfigMismatch = errors.New("audit config digest mismatch")
)

// Collaborator and storage failures
var (
	ErrAuditWriteFailed    = errors.New("audit write failed")
	ErrCollaboratorTimeout = errors.New("collaborator timed out")
)
