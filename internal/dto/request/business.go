package request

// BusinessFilterRequest carries the optional listing filters parsed from the
// query string. Numeric parse failures upstream leave the field at its zero
// value (nil pointers), which disables that filter branch.
type BusinessFilterRequest struct {
	Country   string
	City      string
	Category  string
	Search    string
	Latitude  *float64
	Longitude *float64
	RadiusKM  float64
	PaginatedRequest
}

// DefaultRadiusKM applies when lat/lng are present but radius is not.
const DefaultRadiusKM = 50.0

func (f BusinessFilterRequest) Radius() float64 {
	if f.RadiusKM <= 0 {
		return DefaultRadiusKM
	}
	return f.RadiusKM
}

// HasGeoFilter reports whether both coordinates survived parsing.
func (f BusinessFilterRequest) HasGeoFilter() bool {
	return f.Latitude != nil && f.Longitude != nil
}

type CreateBusinessRequest struct {
	Name             string            `json:"name" validate:"required,min=1,max=200"`
	Category         string            `json:"category,omitempty" validate:"omitempty,max=100"`
	Address          string            `json:"address,omitempty"`
	City             string            `json:"city,omitempty" validate:"omitempty,max=100"`
	Country          string            `json:"country,omitempty" validate:"omitempty,max=100"`
	CountryCode      string            `json:"country_code,omitempty" validate:"omitempty,min=2,max=3"`
	Phone            string            `json:"phone,omitempty"`
	Website          string            `json:"website,omitempty" validate:"omitempty,url"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Latitude         *float64          `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude        *float64          `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description      string            `json:"description,omitempty"`
	OpeningHours     map[string]string `json:"opening_hours,omitempty"`
	PlanType         string            `json:"plan_type,omitempty" validate:"omitempty,oneof=free premium"`
	VisibilityRadius int               `json:"visibility_radius,omitempty" validate:"omitempty,min=0"`
}
