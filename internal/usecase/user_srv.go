package usecase

import (
	"context"
	"fmt"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/request"
	"listacrosseu/internal/dto/response"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	log *zap.Logger,
) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

// Register creates a business owner account. There is no login flow, the
// account only records ownership of a listing.
func (s *userService) Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists: %s", req.Email)
	}

	if req.BusinessID != nil {
		business, err := s.repo.Business.FindByID(ctx, *req.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("find business: %w", err)
		}
		if business == nil {
			return nil, fmt.Errorf("business not found")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	planType := entity.PlanTypeFree
	if req.PlanType != "" {
		planType = entity.PlanType(req.PlanType)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		Email:        req.Email,
		PasswordHash: string(hash),
		BusinessID:   req.BusinessID,
		PlanType:     planType,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	userResp := response.UserToResponse(user)
	return &userResp, nil
}
