package wire

import (
	"listacrosseu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler) {
	r.Route("/api/admin", func(r chi.Router) {
		// POST /api/admin/import-csv - bulk load listings (multipart upload)
		r.Post("/import-csv", adminHandler.ImportCSV)

		// POST /api/admin/businesses - create a single listing
		r.Post("/businesses", adminHandler.CreateBusiness)

		// POST /api/admin/users - register a business owner account
		r.Post("/users", adminHandler.RegisterUser)
	})
}
