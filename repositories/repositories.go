package repositories

import (
	"database/sql"
	"time"
)

//go:generate mockery --name=SweepRepository --name=AllocationRepository --name=AuditRepository --with-expecter --output=mocks --outpkg=mocks

// Repositories struct holds all repository interfaces
type Repositories struct {
	Sweeps      SweepRepository
	Allocations AllocationRepository
	Audit       AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Sweeps:      NewSweepRepository(db),
		Allocations: NewAllocationRepository(db),
		Audit:       NewAuditRepository(db),
	}
}

// scanner is implemented by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

var timeNow = func() time.Time {
	return time.Now()
}
