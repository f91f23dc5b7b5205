package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

// SweepStatus is the confirmation state reported by the sweep source
type SweepStatus string

const (
	SweepPending   SweepStatus = "pending"
	SweepConfirmed SweepStatus = "confirmed"
	SweepFailed    SweepStatus = "failed"
)

// Valid reports whether s is a known status
func (s SweepStatus) Valid() bool {
	switch s {
	case SweepPending, SweepConfirmed, SweepFailed:
		return true
	}
	return false
}

// Sweep is a transfer event whose value gets allocated
type Sweep struct {
	ID        string          `json:"id" db:"id"`
	USDValue  decimal.Decimal `json:"usd_value" db:"usd_value"`
	Chain     string          `json:"chain" db:"chain"`
	Status    SweepStatus     `json:"status" db:"status"`
	TxHash    string          `json:"tx_hash,omitempty" db:"tx_hash"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	// ConfirmedAt is when the sweep was first seen confirmed
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" db:"confirmed_at"`
}

// IsConfirmed reports whether the sweep may be allocated
func (s *Sweep) IsConfirmed() bool {
	return s.Status == SweepConfirmed
}

// SweepForm is the ingestion payload supplied by the sweep source
type SweepForm struct {
	ID       string `json:"id"`
	USDValue string `json:"usd_value"`
	Chain    string `json:"chain"`
	Status   string `json:"status"`
	TxHash   string `json:"tx_hash,omitempty"`
}

// Validate validates the sweep form data
func (f *SweepForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.ID) == "" {
		errors = append(errors, "ID is required")
	}
	if len(f.ID) > 128 {
		errors = append(errors, "ID must be less than 128 characters")
	}
	if _, err := allocconfig.ParseAmount(f.USDValue); err != nil {
		errors = append(errors, "USD value must be a non-negative decimal")
	}
	if strings.TrimSpace(f.Chain) == "" {
		errors = append(errors, "Chain is required")
	}
	if !SweepStatus(f.Status).Valid() {
		errors = append(errors, "Status must be one of pending, confirmed, failed")
	}

	return errors
}

// ToSweep converts a validated form into a Sweep
func (f *SweepForm) ToSweep() (*Sweep, error) {
	value, err := allocconfig.ParseAmount(f.USDValue)
	if err != nil {
		return nil, err
	}
	return &Sweep{
		ID:       strings.TrimSpace(f.ID),
		USDValue: value,
		Chain:    strings.ToLower(strings.TrimSpace(f.Chain)),
		Status:   SweepStatus(f.Status),
		TxHash:   strings.TrimSpace(f.TxHash),
	}, nil
}
