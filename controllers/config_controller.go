package controllers

import (
	"net/http"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

// ConfigController reports the running allocation configuration
type ConfigController struct {
	config *allocconfig.Config
}

// NewConfigController creates a new config controller
func NewConfigController(config *allocconfig.Config) *ConfigController {
	return &ConfigController{config: config}
}

type configResponse struct {
	allocconfig.Snapshot
	Integrity allocconfig.IntegrityResult `json:"integrity"`
}

// Show handles GET /api/config
func (c *ConfigController) Show(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		Snapshot:  c.config.Snapshot(),
		Integrity: c.config.VerifyIntegrity(),
	})
}
