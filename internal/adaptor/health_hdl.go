package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"listacrosseu/pkg/utils"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(config *utils.Config) *HealthHandler {
	return &HealthHandler{version: config.App.Version}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
