package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/scheduler"
	"github.com/mintgene/allocation-ledger/services"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// TaskRunner runs a named task under its exclusivity guard.
// *scheduler.Scheduler implements it.
type TaskRunner interface {
	RunExclusive(ctx context.Context, name string, fn func(context.Context) error) error
}

// Controllers holds all controller instances
type Controllers struct {
	Sweeps      *SweepController
	Allocations *AllocationController
	Audit       *AuditController
	Config      *ConfigController
}

// NewControllers creates and initializes all controller instances. A nil
// runner makes batch runs unguarded, which is only suitable for tests.
func NewControllers(services *services.Services, config *allocconfig.Config, runner TaskRunner, logger *zap.Logger) *Controllers {
	return &Controllers{
		Sweeps:      NewSweepController(services, logger),
		Allocations: NewAllocationController(services, runner, logger),
		Audit:       NewAuditController(services, logger),
		Config:      NewConfigController(config),
	}
}

// Register mounts the API routes on r
func (c *Controllers) Register(r chi.Router) {
	r.Route("/sweeps", func(r chi.Router) {
		r.Post("/", c.Sweeps.Create)
		r.Get("/{id}", c.Sweeps.Show)
		r.Post("/{id}/allocate", c.Sweeps.Allocate)
		r.Get("/{id}/allocations", c.Sweeps.Allocations)
	})

	r.Route("/allocations", func(r chi.Router) {
		r.Get("/", c.Allocations.Index)
		r.Post("/process", c.Allocations.Process)
		r.Post("/{id}/execute", c.Allocations.Execute)
	})

	r.Get("/strategies/{category}/{chain}", c.Allocations.Strategy)
	r.Get("/config", c.Config.Show)

	r.Route("/audit", func(r chi.Router) {
		r.Get("/chain", c.Audit.Chain)
		r.Get("/trail/{entityType}/{entityId}", c.Audit.Trail)
		r.Get("/{id}/verify", c.Audit.Verify)
	})
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto an HTTP status and error body
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, code := statusFor(err)
	body := models.ErrorResponse{Error: err.Error(), Code: code}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Messages
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, body)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrSweepNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrAlreadyAllocated), errors.Is(err, models.ErrAlreadyExecuted),
		errors.Is(err, models.ErrExecutionInFlight):
		return http.StatusConflict, "conflict"
	case errors.Is(err, scheduler.ErrBusy):
		return http.StatusConflict, "busy"
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrUnknownCategory):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, models.ErrConfigTampered),
		errors.Is(err, models.ErrDataTampered),
		errors.Is(err, models.ErrConfigMismatch):
		return http.StatusInternalServerError, "integrity_violation"
	case errors.Is(err, models.ErrCollaboratorTimeout):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, models.ErrAuditWriteFailed):
		return http.StatusInternalServerError, "audit_write_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// decodeJSON reads a single JSON object from the request body
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &models.ValidationError{Messages: []string{fmt.Sprintf("invalid JSON body: %v", err)}}
	}
	return nil
}

// int64Param parses a numeric URL parameter
func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Messages: []string{"invalid " + name}}
	}
	return id, nil
}

// intQuery parses an optional integer query parameter
func intQuery(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &models.ValidationError{Messages: []string{"invalid " + name}}
	}
	return n, nil
}
