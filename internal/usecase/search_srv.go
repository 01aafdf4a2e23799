package usecase

import (
	"context"
	"fmt"
	"strings"

	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/response"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

// Search results are capped regardless of any requested page size.
const searchResultCap = 50

type SearchService interface {
	Search(ctx context.Context, query, country, category string) (*response.SearchResponse, error)
}

type searchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSearchService(
	repo *repository.Repository,
	log *zap.Logger,
) SearchService {
	return &searchService{
		repo: repo,
		log:  log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(ctx context.Context, query, country, category string) (*response.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("invalid search query: q is required")
	}

	businesses, err := s.repo.Business.Search(ctx, query,
		utils.NormalizeCountryCode(country), category, searchResultCap)
	if err != nil {
		s.log.Error("Failed to search businesses",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search businesses: %w", err)
	}

	results := make([]response.BusinessResponse, len(businesses))
	for i, business := range businesses {
		results[i] = response.BusinessToResponse(business)
	}

	s.log.Info("Search completed",
		zap.String("query", query),
		zap.Int("count", len(results)),
	)

	return &response.SearchResponse{
		Results: results,
		Count:   len(results),
	}, nil
}
