package adaptor

import (
	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Business *BusinessHandler
	Review   *ReviewHandler
	Search   *SearchHandler
	Stats    *StatsHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Business: NewBusinessHandler(service.Business, log),
		Review:   NewReviewHandler(service.Review, log),
		Search:   NewSearchHandler(service.Search, log),
		Stats:    NewStatsHandler(service.Stats, log),
		Admin:    NewAdminHandler(service.Import, service.Business, service.User, config, log),
		Health:   NewHealthHandler(config),
	}
}
