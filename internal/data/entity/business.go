package entity

type PlanType string

const (
	PlanTypeFree    PlanType = "free"
	PlanTypePremium PlanType = "premium"
)

// SourceCSVImport tags rows loaded through the bulk CSV path.
const SourceCSVImport = "csv-import"

type Business struct {
	Base
	Name        string   `db:"name"`
	Category    string   `db:"category"`
	Address     string   `db:"address"`
	City        string   `db:"city"`
	Country     string   `db:"country"`
	CountryCode string   `db:"country_code"` // always stored lower-case
	Phone       string   `db:"phone"`
	Website     string   `db:"website"`
	Email       string   `db:"email"`
	Latitude    *float64 `db:"latitude"`
	Longitude   *float64 `db:"longitude"`
	Description string   `db:"description"`
	// OpeningHours holds the serialized JSON text as stored. Deserialization
	// to a structured value happens at the response boundary.
	OpeningHours     *string  `db:"opening_hours"`
	Source           string   `db:"source"`
	PlanType         PlanType `db:"plan_type"`
	VisibilityRadius int      `db:"visibility_radius"`
}
