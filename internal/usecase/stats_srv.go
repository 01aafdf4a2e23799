package usecase

import (
	"context"
	"fmt"

	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topCategoriesLimit = 10
	topCitiesLimit     = 20
)

type StatsService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	GetCategories(ctx context.Context) (*response.CategoriesResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(
	repo *repository.Repository,
	log *zap.Logger,
) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

// GetStats runs the four independent aggregates concurrently and merges the
// results once all complete.
func (s *statsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	var total int64
	var byCountry []repository.CountryCount
	var topCategories []repository.CategoryCount
	var topCities []repository.CityCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Stats.CountBusinesses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byCountry, err = s.repo.Stats.CountByCountry(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		topCategories, err = s.repo.Stats.TopCategories(gctx, topCategoriesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topCities, err = s.repo.Stats.TopCities(gctx, topCitiesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to gather stats", zap.Error(err))
		return nil, fmt.Errorf("gather stats: %w", err)
	}

	s.log.Info("Stats gathered",
		zap.Int64("total_businesses", total),
		zap.Int("countries", len(byCountry)),
	)

	return &response.StatsResponse{
		TotalBusinesses: total,
		ByCountry:       response.CountryStats(byCountry),
		TopCategories:   response.CategoryStats(topCategories),
		TopCities:       response.CityStats(topCities),
	}, nil
}

func (s *statsService) GetCategories(ctx context.Context) (*response.CategoriesResponse, error) {
	categories, err := s.repo.Stats.TopCategories(ctx, 0)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &response.CategoriesResponse{
		Categories: response.CategoryStats(categories),
	}, nil
}
