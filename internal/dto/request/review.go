package request

// Rating is a pointer so a missing value fails the required check instead of
// defaulting to zero.
type CreateReviewRequest struct {
	ReviewerName string `json:"reviewer_name,omitempty" validate:"omitempty,max=100"`
	Rating       *int   `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
