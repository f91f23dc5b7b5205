package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/services"
)

// SweepController handles sweep ingestion and per-sweep allocation requests
type SweepController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewSweepController creates a new sweep controller
func NewSweepController(services *services.Services, logger *zap.Logger) *SweepController {
	return &SweepController{
		services: services,
		logger:   logger,
	}
}

// Create handles POST /api/sweeps
func (c *SweepController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.SweepForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, c.logger, err)
		return
	}

	sweep, err := c.services.Allocation.IngestSweep(r.Context(), form)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, sweep)
}

// Show handles GET /api/sweeps/{id}
func (c *SweepController) Show(w http.ResponseWriter, r *http.Request) {
	sweep, err := c.services.Allocation.GetSweep(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, sweep)
}

// Allocate handles POST /api/sweeps/{id}/allocate
func (c *SweepController) Allocate(w http.ResponseWriter, r *http.Request) {
	result, err := c.services.Allocation.AllocateProfits(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Allocations handles GET /api/sweeps/{id}/allocations
func (c *SweepController) Allocations(w http.ResponseWriter, r *http.Request) {
	rows, err := c.services.Allocation.GetAllocationsForSweep(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
