package wire

import (
	"listacrosseu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	// GET /api/search - ranked free-text search, capped at 50 results
	r.Get("/api/search", searchHandler.Search)
}
