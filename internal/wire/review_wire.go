package wire

import (
	"listacrosseu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/businesses/{id}/reviews - add a review to a listing
	r.Post("/api/businesses/{id}/reviews", reviewHandler.CreateReview)
}
