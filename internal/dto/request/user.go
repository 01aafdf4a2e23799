package request

type RegisterUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	BusinessID *int64 `json:"business_id,omitempty"`
	PlanType   string `json:"plan_type,omitempty" validate:"omitempty,oneof=free premium"`
}
