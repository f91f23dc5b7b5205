// Package executor contains the strategy execution collaborators. An executor
// takes one allocation's category, chain and amount and returns an opaque
// execution reference, typically a transaction identifier.
package executor

import (
	"context"
	"errors"
	"net"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

//go:generate mockery --name=Executor --with-expecter --output=mocks --outpkg=mocks

// Request describes the allocation to execute
type Request struct {
	AllocationID int64                `json:"allocation_id"`
	Category     allocconfig.Category `json:"category"`
	Chain        string               `json:"chain"`
	Strategy     string               `json:"strategy"`
	Amount       decimal.Decimal      `json:"amount"`
}

// Executor runs an allocation's strategy
type Executor interface {
	Execute(ctx context.Context, req Request) (string, error)
}

// IsTimeout reports whether err is a deadline or network timeout
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Simulated is an in-process executor that performs no external call and
// returns "mock-<uuid>" references
type Simulated struct {
	logger *zap.Logger
}

// NewSimulated creates a simulated executor
func NewSimulated(logger *zap.Logger) *Simulated {
	return &Simulated{logger: logger}
}

// Execute returns a fresh mock reference
func (s *Simulated) Execute(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref := "mock-" + uuid.NewString()
	s.logger.Debug("simulated strategy execution",
		zap.Int64("allocation_id", req.AllocationID),
		zap.String("strategy", req.Strategy),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("execution_ref", ref),
	)
	return ref, nil
}
