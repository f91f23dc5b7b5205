package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/services"
)

// AuditController exposes the audit ledger to forensic tooling. Verification
// outcomes are data, so a tampered entry still answers 200 with valid=false.
type AuditController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, logger *zap.Logger) *AuditController {
	return &AuditController{
		services: services,
		logger:   logger,
	}
}

// Verify handles GET /api/audit/{id}/verify
func (c *AuditController) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	result, err := c.services.Audit.VerifyEntry(r.Context(), id)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	if !result.Valid {
		c.logger.Warn("audit entry failed verification",
			zap.Int64("entry_id", id),
			zap.String("reason", string(result.Reason)),
		)
	}
	writeJSON(w, http.StatusOK, result)
}

// Trail handles GET /api/audit/trail/{entityType}/{entityId}?limit=
func (c *AuditController) Trail(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	trail, err := c.services.Audit.GetAuditTrail(r.Context(), chi.URLParam(r, "entityType"), chi.URLParam(r, "entityId"), limit)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, trail)
}

// Chain handles GET /api/audit/chain
func (c *AuditController) Chain(w http.ResponseWriter, r *http.Request) {
	result, err := c.services.Audit.VerifyChain(r.Context())
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
