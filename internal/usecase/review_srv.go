package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/request"
	"listacrosseu/internal/dto/response"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, businessID string, req *request.CreateReviewRequest) (*response.CreatedReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, businessID string, req *request.CreateReviewRequest) (*response.CreatedReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := strconv.ParseInt(businessID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid business id: %w", err)
	}

	// Reviews for unknown listings are rejected, no orphan rows
	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, fmt.Errorf("business not found")
	}

	reviewerName := req.ReviewerName
	if reviewerName == "" {
		reviewerName = entity.DefaultReviewerName
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		BusinessID:   id,
		ReviewerName: reviewerName,
		Rating:       *req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("business_id", id),
		zap.Int("rating", review.Rating),
	)

	return &response.CreatedReviewResponse{
		ID:      review.ID,
		Message: "Review added successfully",
	}, nil
}
