package repository

import (
	"context"
	"fmt"

	"listacrosseu/internal/data/entity"
	"listacrosseu/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByBusinessID(ctx context.Context, businessID int64) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewReviewRepository(db database.SQLIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (business_id, reviewer_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if review.ReviewerName == "" {
		review.ReviewerName = entity.DefaultReviewerName
	}

	result, err := r.db.ExecContext(ctx, query,
		review.BusinessID,
		review.ReviewerName,
		review.Rating,
		review.Comment,
		formatTime(review.CreatedAt),
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("business_id", review.BusinessID),
		)
		return fmt.Errorf("failed to create review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read review id: %w", err)
	}
	review.ID = id

	return nil
}

func (r *reviewRepository) FindByBusinessID(ctx context.Context, businessID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, business_id, reviewer_name, COALESCE(comment, ''), rating, created_at
		FROM reviews
		WHERE business_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.Int64("business_id", businessID),
		)
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		var createdAt string
		if err := rows.Scan(&review.ID, &review.BusinessID, &review.ReviewerName,
			&review.Comment, &review.Rating, &createdAt); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.CreatedAt = parseTime(createdAt)
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return reviews, nil
}
