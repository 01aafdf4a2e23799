package wire

import (
	"listacrosseu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler) {
	// GET /api/stats - directory-wide aggregates
	r.Get("/api/stats", statsHandler.GetStats)

	// GET /api/categories - distinct categories with counts
	r.Get("/api/categories", statsHandler.GetCategories)
}
