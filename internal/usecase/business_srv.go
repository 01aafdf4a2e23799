package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/request"
	"listacrosseu/internal/dto/response"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BusinessService interface {
	ListBusinesses(ctx context.Context, filter *request.BusinessFilterRequest) (*response.PaginatedResponse[response.BusinessResponse], error)
	GetBusinessByID(ctx context.Context, businessID string) (*response.BusinessDetailResponse, error)
	ListByCountry(ctx context.Context, countryCode string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BusinessResponse], error)
	CreateBusiness(ctx context.Context, req *request.CreateBusinessRequest) (*response.BusinessResponse, error)
}

type businessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusinessService(
	repo *repository.Repository,
	log *zap.Logger,
) BusinessService {
	return &businessService{
		repo: repo,
		log:  log.With(zap.String("service", "business")),
	}
}

// toRepositoryFilter maps the request filters onto the SQL filter, building
// the bounding box when both coordinates are present.
func toRepositoryFilter(filter *request.BusinessFilterRequest) repository.BusinessFilter {
	repoFilter := repository.BusinessFilter{
		Country:  utils.NormalizeCountryCode(filter.Country),
		City:     filter.City,
		Category: filter.Category,
		Search:   filter.Search,
		Limit:    filter.Limit(),
		Offset:   filter.Offset(),
	}

	if filter.HasGeoFilter() {
		box := utils.NewBoundingBox(*filter.Latitude, *filter.Longitude, filter.Radius())
		repoFilter.Box = &box
	}

	return repoFilter
}

func (s *businessService) ListBusinesses(ctx context.Context, filter *request.BusinessFilterRequest) (*response.PaginatedResponse[response.BusinessResponse], error) {
	repoFilter := toRepositoryFilter(filter)

	businesses, err := s.repo.Business.FindAll(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to list businesses",
			zap.Error(err),
			zap.Int("page", filter.Page),
			zap.Int("per_page", filter.PerPage),
		)
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	// Real COUNT(*) over the same filter for pagination metadata
	total, err := s.repo.Business.Count(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to count businesses", zap.Error(err))
		return nil, fmt.Errorf("count businesses: %w", err)
	}

	businessResponses := make([]response.BusinessResponse, len(businesses))
	for i, business := range businesses {
		businessResponses[i] = response.BusinessToResponse(business)
	}

	s.log.Info("Businesses listed",
		zap.Int("count", len(businesses)),
		zap.Int64("total", total),
		zap.Int("page", filter.Page),
		zap.Int("per_page", filter.PerPage),
	)

	return response.NewPaginatedResponse(businessResponses, filter.Page, filter.Limit(), total), nil
}

func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*response.BusinessDetailResponse, error) {
	id, err := strconv.ParseInt(businessID, 10, 64)
	if err != nil {
		s.log.Warn("Invalid business ID format",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid business id: %w", err)
	}

	// Business and its reviews are independent reads, fetch both and join
	var business *entity.Business
	var reviews []*entity.Review

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		business, err = s.repo.Business.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.repo.Review.FindByBusinessID(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to get business by ID",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get business by id: %w", err)
	}

	if business == nil {
		return nil, fmt.Errorf("business not found")
	}

	s.log.Info("Business retrieved",
		zap.Int64("business_id", id),
		zap.String("name", business.Name),
		zap.Int("review_count", len(reviews)),
	)

	detail := response.BusinessToDetailResponse(business, reviews)
	return &detail, nil
}

func (s *businessService) ListByCountry(ctx context.Context, countryCode string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BusinessResponse], error) {
	if countryCode == "" {
		return nil, fmt.Errorf("invalid country code")
	}

	filter := &request.BusinessFilterRequest{
		Country:          countryCode,
		PaginatedRequest: *page,
	}

	return s.ListBusinesses(ctx, filter)
}

func (s *businessService) CreateBusiness(ctx context.Context, req *request.CreateBusinessRequest) (*response.BusinessResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create business validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var openingHours *string
	if len(req.OpeningHours) > 0 {
		raw, err := json.Marshal(req.OpeningHours)
		if err != nil {
			return nil, fmt.Errorf("invalid opening hours: %w", err)
		}
		s := string(raw)
		openingHours = &s
	}

	planType := entity.PlanTypeFree
	if req.PlanType != "" {
		planType = entity.PlanType(req.PlanType)
	}

	now := time.Now()
	business := &entity.Business{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             req.Name,
		Category:         req.Category,
		Address:          req.Address,
		City:             req.City,
		Country:          req.Country,
		CountryCode:      utils.NormalizeCountryCode(req.CountryCode),
		Phone:            req.Phone,
		Website:          req.Website,
		Email:            req.Email,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Description:      req.Description,
		OpeningHours:     openingHours,
		Source:           "manual",
		PlanType:         planType,
		VisibilityRadius: req.VisibilityRadius,
	}

	if err := s.repo.Business.Create(ctx, business); err != nil {
		s.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create business: %w", err)
	}

	s.log.Info("Business created",
		zap.Int64("business_id", business.ID),
		zap.String("name", business.Name),
	)

	businessResp := response.BusinessToResponse(business)
	return &businessResp, nil
}
