package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/scheduler"
	"github.com/mintgene/allocation-ledger/services"
)

// AllocationController handles allocation listing, batch and execution requests
type AllocationController struct {
	services *services.Services
	runner   TaskRunner
	logger   *zap.Logger
	now      func() time.Time
}

// NewAllocationController creates a new allocation controller
func NewAllocationController(services *services.Services, runner TaskRunner, logger *zap.Logger) *AllocationController {
	return &AllocationController{
		services: services,
		runner:   runner,
		logger:   logger,
		now:      time.Now,
	}
}

// Index handles GET /api/allocations?category=&executed=&chain=&since=&limit=
func (c *AllocationController) Index(w http.ResponseWriter, r *http.Request) {
	filter, err := c.parseFilter(r)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	rows, err := c.services.Allocation.GetAllocations(r.Context(), filter)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AllocationController) parseFilter(r *http.Request) (models.AllocationFilter, error) {
	q := r.URL.Query()
	var filter models.AllocationFilter
	var messages []string

	if v := q.Get("category"); v != "" {
		category, err := allocconfig.ParseCategory(v)
		if err != nil {
			return filter, err
		}
		filter.Category = category
	}

	if v := q.Get("executed"); v != "" {
		executed, err := strconv.ParseBool(v)
		if err != nil {
			messages = append(messages, "executed must be true or false")
		} else {
			filter.Executed = &executed
		}
	}

	filter.Chain = q.Get("chain")

	since, err := models.ParseSince(q.Get("since"), c.now())
	if err != nil {
		messages = append(messages, err.Error())
	}
	filter.Since = since

	limit, err := intQuery(r, "limit")
	if err != nil {
		messages = append(messages, "limit must be a number")
	}
	filter.Limit = limit

	if len(messages) > 0 {
		return filter, &models.ValidationError{Messages: messages}
	}
	return filter, nil
}

// Process handles POST /api/allocations/process. It shares the scheduler's
// guard, so it answers 409 while a scheduled scan is running.
func (c *AllocationController) Process(w http.ResponseWriter, r *http.Request) {
	var result *models.BatchResult
	run := func(ctx context.Context) error {
		var err error
		result, err = c.services.Allocation.ProcessUnallocatedSweeps(ctx)
		return err
	}

	var err error
	if c.runner != nil {
		err = c.runner.RunExclusive(r.Context(), scheduler.TaskAllocateSweeps, run)
	} else {
		err = run(r.Context())
	}
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Execute handles POST /api/allocations/{id}/execute
func (c *AllocationController) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	result, err := c.services.Allocation.ExecuteAllocation(r.Context(), id)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Strategy handles GET /api/strategies/{category}/{chain}
func (c *AllocationController) Strategy(w http.ResponseWriter, r *http.Request) {
	category, err := allocconfig.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}
	chain := chi.URLParam(r, "chain")

	strategy, err := c.services.Allocation.GetTargetStrategy(category, chain)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"category": string(category),
		"chain":    chain,
		"strategy": strategy,
	})
}
