package usecase

import (
	"listacrosseu/internal/data/repository"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Business BusinessService
	Review   ReviewService
	Search   SearchService
	Stats    StatsService
	Import   ImportService
	User     UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Business: NewBusinessService(repo, log),
		Review:   NewReviewService(repo, log),
		Search:   NewSearchService(repo, log),
		Stats:    NewStatsService(repo, log),
		Import:   NewImportService(repo, log),
		User:     NewUserService(repo, log),
	}
}
