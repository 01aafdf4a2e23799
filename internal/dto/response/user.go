package response

import (
	"time"

	"listacrosseu/internal/data/entity"
)

type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	BusinessID *int64    `json:"business_id,omitempty"`
	PlanType   string    `json:"plan_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converter, password hash never leaves the service
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		BusinessID: user.BusinessID,
		PlanType:   string(user.PlanType),
		CreatedAt:  user.CreatedAt,
	}
}
