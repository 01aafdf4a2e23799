package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listacrosseu/internal/data/entity"
	"listacrosseu/pkg/database"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewUserRepository(db database.SQLIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password_hash, business_id, plan_type, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if user.PlanType == "" {
		user.PlanType = entity.PlanTypeFree
	}

	var businessID any
	if user.BusinessID != nil {
		businessID = *user.BusinessID
	}

	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.PasswordHash,
		businessID,
		string(user.PlanType),
		formatTime(user.CreatedAt),
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, business_id, plan_type, created_at
		FROM users
		WHERE email = ?
	`

	var user entity.User
	var businessID sql.NullInt64
	var planType string
	var createdAt string

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &businessID, &planType, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if businessID.Valid {
		user.BusinessID = &businessID.Int64
	}
	user.PlanType = entity.PlanType(planType)
	user.CreatedAt = parseTime(createdAt)

	return &user, nil
}
