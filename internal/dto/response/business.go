package response

import (
	"encoding/json"
	"time"

	"listacrosseu/internal/data/entity"
)

type BusinessResponse struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category,omitempty"`
	Address          string            `json:"address,omitempty"`
	City             string            `json:"city,omitempty"`
	Country          string            `json:"country,omitempty"`
	CountryCode      string            `json:"country_code,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	Website          string            `json:"website,omitempty"`
	Email            string            `json:"email,omitempty"`
	Latitude         *float64          `json:"latitude"`
	Longitude        *float64          `json:"longitude"`
	Description      string            `json:"description,omitempty"`
	OpeningHours     map[string]string `json:"opening_hours"`
	Source           string            `json:"source,omitempty"`
	PlanType         string            `json:"plan_type"`
	VisibilityRadius int               `json:"visibility_radius"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type BusinessDetailResponse struct {
	BusinessResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// ParseOpeningHours deserializes the stored JSON text, nil when absent or
// unparsable.
func ParseOpeningHours(raw *string) map[string]string {
	if raw == nil || *raw == "" {
		return nil
	}

	var hours map[string]string
	if err := json.Unmarshal([]byte(*raw), &hours); err != nil {
		return nil
	}

	return hours
}

// Helper converters
func BusinessToResponse(business *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:               business.ID,
		Name:             business.Name,
		Category:         business.Category,
		Address:          business.Address,
		City:             business.City,
		Country:          business.Country,
		CountryCode:      business.CountryCode,
		Phone:            business.Phone,
		Website:          business.Website,
		Email:            business.Email,
		Latitude:         business.Latitude,
		Longitude:        business.Longitude,
		Description:      business.Description,
		OpeningHours:     ParseOpeningHours(business.OpeningHours),
		Source:           business.Source,
		PlanType:         string(business.PlanType),
		VisibilityRadius: business.VisibilityRadius,
		CreatedAt:        business.CreatedAt,
		UpdatedAt:        business.UpdatedAt,
	}
}

func BusinessToDetailResponse(business *entity.Business, reviews []*entity.Review) BusinessDetailResponse {
	reviewResponses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = ReviewToResponse(review)
	}

	return BusinessDetailResponse{
		BusinessResponse: BusinessToResponse(business),
		Reviews:          reviewResponses,
	}
}
