package wire

import (
	"listacrosseu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBusiness(r chi.Router, businessHandler *adaptor.BusinessHandler) {
	// GET /api/businesses - filtered, paginated listing
	r.Get("/api/businesses", businessHandler.GetBusinesses)

	// GET /api/businesses/{id} - detail with nested reviews
	r.Get("/api/businesses/{id}", businessHandler.GetBusinessByID)

	// GET /api/countries/{countryCode}/businesses - one country, paginated
	r.Get("/api/countries/{countryCode}/businesses", businessHandler.GetCountryBusinesses)
}
