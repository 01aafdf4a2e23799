// internal/wire/wire.go
package wire

import (
	"listacrosseu/internal/adaptor"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/middleware"
	"listacrosseu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes
	wireBusiness(r, handler.Business)
	wireReview(r, handler.Review)
	wireSearch(r, handler.Search)
	wireStats(r, handler.Stats)
	wireAdmin(r, handler.Admin)

	// Health check endpoint
	r.Get("/api/health", handler.Health.Health)

	return r
}
