package response

import (
	"time"

	"listacrosseu/internal/data/entity"
)

type ReviewResponse struct {
	ID           int64     `json:"id"`
	BusinessID   int64     `json:"business_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatedReviewResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		BusinessID:   review.BusinessID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
