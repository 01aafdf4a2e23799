package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"listacrosseu/internal/data/entity"
	"listacrosseu/pkg/database"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

// BusinessFilter narrows a listing query. Zero values disable the branch.
type BusinessFilter struct {
	Country  string
	City     string
	Category string
	Search   string
	Box      *utils.BoundingBox
	Limit    int
	Offset   int
}

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id int64) (*entity.Business, error)
	FindAll(ctx context.Context, filter BusinessFilter) ([]*entity.Business, error)
	Count(ctx context.Context, filter BusinessFilter) (int64, error)
	Search(ctx context.Context, query, country, category string, limit int) ([]*entity.Business, error)
}

type businessRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewBusinessRepository(db database.SQLIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, name, COALESCE(category, ''), COALESCE(address, ''),
       COALESCE(city, ''), COALESCE(country, ''), COALESCE(country_code, ''),
       COALESCE(phone, ''), COALESCE(website, ''), COALESCE(email, ''),
       latitude, longitude, COALESCE(description, ''), opening_hours,
       COALESCE(source, ''), plan_type, visibility_radius, created_at, updated_at`

func scanBusiness(row rowScanner, extra ...any) (*entity.Business, error) {
	var b entity.Business
	var latitude, longitude sql.NullFloat64
	var openingHours sql.NullString
	var planType string
	var createdAt, updatedAt string

	dest := []any{
		&b.ID, &b.Name, &b.Category, &b.Address,
		&b.City, &b.Country, &b.CountryCode,
		&b.Phone, &b.Website, &b.Email,
		&latitude, &longitude, &b.Description, &openingHours,
		&b.Source, &planType, &b.VisibilityRadius, &createdAt, &updatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if latitude.Valid {
		b.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		b.Longitude = &longitude.Float64
	}
	if openingHours.Valid {
		b.OpeningHours = &openingHours.String
	}
	b.PlanType = entity.PlanType(planType)
	b.CreatedAt = parseTime(createdAt)
	b.UpdatedAt = parseTime(updatedAt)

	return &b, nil
}

// buildBusinessWhere translates the filter into SQL conditions shared by
// FindAll and Count. All text matching is case-insensitive by normalization,
// bounding box bounds are inclusive.
func buildBusinessWhere(filter BusinessFilter) (string, []any) {
	conditions := []string{"1=1"}
	args := []any{}

	if filter.Country != "" {
		conditions = append(conditions, "LOWER(country_code) = LOWER(?)")
		args = append(args, filter.Country)
	}

	if filter.City != "" {
		conditions = append(conditions, "LOWER(city) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.City)
	}

	if filter.Category != "" {
		conditions = append(conditions, "LOWER(category) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.Category)
	}

	if filter.Search != "" {
		conditions = append(conditions,
			"(LOWER(name) LIKE '%' || LOWER(?) || '%' OR LOWER(description) LIKE '%' || LOWER(?) || '%')")
		args = append(args, filter.Search, filter.Search)
	}

	if filter.Box != nil {
		conditions = append(conditions,
			"latitude IS NOT NULL AND longitude IS NOT NULL AND latitude BETWEEN ? AND ?")
		args = append(args, filter.Box.MinLat, filter.Box.MaxLat)

		if filter.Box.HasLng {
			conditions = append(conditions, "longitude BETWEEN ? AND ?")
			args = append(args, filter.Box.MinLng, filter.Box.MaxLng)
		}
	}

	return strings.Join(conditions, " AND "), args
}

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (name, category, address, city, country, country_code,
		                        phone, website, email, latitude, longitude, description,
		                        opening_hours, source, plan_type, visibility_radius,
		                        created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	// country_code is lower-cased on every write
	business.CountryCode = utils.NormalizeCountryCode(business.CountryCode)
	if business.PlanType == "" {
		business.PlanType = entity.PlanTypeFree
	}

	var latitude, longitude any
	if business.Latitude != nil {
		latitude = *business.Latitude
	}
	if business.Longitude != nil {
		longitude = *business.Longitude
	}

	var openingHours any
	if business.OpeningHours != nil {
		openingHours = *business.OpeningHours
	}

	result, err := r.db.ExecContext(ctx, query,
		business.Name,
		business.Category,
		business.Address,
		business.City,
		business.Country,
		business.CountryCode,
		business.Phone,
		business.Website,
		business.Email,
		latitude,
		longitude,
		business.Description,
		openingHours,
		business.Source,
		string(business.PlanType),
		business.VisibilityRadius,
		formatTime(business.CreatedAt),
		formatTime(business.UpdatedAt),
	)

	if err != nil {
		r.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("name", business.Name),
		)
		return fmt.Errorf("failed to create business: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read business id: %w", err)
	}
	business.ID = id

	return nil
}

func (r *businessRepository) FindByID(ctx context.Context, id int64) (*entity.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = ?`, businessColumns)

	business, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return nil, fmt.Errorf("failed to find business: %w", err)
	}

	return business, nil
}

func (r *businessRepository) FindAll(ctx context.Context, filter BusinessFilter) ([]*entity.Business, error) {
	where, args := buildBusinessWhere(filter)

	query := fmt.Sprintf(`
		SELECT %s FROM businesses
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, businessColumns, where)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find businesses",
			zap.Error(err),
			zap.Int("offset", filter.Offset),
			zap.Int("limit", filter.Limit),
		)
		return nil, fmt.Errorf("failed to find businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*entity.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			r.log.Error("Failed to scan business row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Businesses found",
		zap.Int("count", len(businesses)),
		zap.Int("offset", filter.Offset),
		zap.Int("limit", filter.Limit),
	)

	return businesses, nil
}

func (r *businessRepository) Count(ctx context.Context, filter BusinessFilter) (int64, error) {
	where, args := buildBusinessWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM businesses WHERE %s`, where)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count businesses", zap.Error(err))
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	return total, nil
}

// Search ranks matches by where the term hits: name 3, category 2,
// description 1. Ties break alphabetically on name.
func (r *businessRepository) Search(ctx context.Context, query, country, category string, limit int) ([]*entity.Business, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`
		SELECT %s,
		       CASE
		           WHEN LOWER(name) LIKE '%%' || LOWER(?) || '%%' THEN 3
		           WHEN LOWER(category) LIKE '%%' || LOWER(?) || '%%' THEN 2
		           WHEN LOWER(description) LIKE '%%' || LOWER(?) || '%%' THEN 1
		           ELSE 0
		       END AS score
		FROM businesses
		WHERE (LOWER(name) LIKE '%%' || LOWER(?) || '%%'
		    OR LOWER(category) LIKE '%%' || LOWER(?) || '%%'
		    OR LOWER(description) LIKE '%%' || LOWER(?) || '%%')
	`, businessColumns))

	args := []any{query, query, query, query, query, query}

	if country != "" {
		sb.WriteString(" AND LOWER(country_code) = LOWER(?)")
		args = append(args, country)
	}

	if category != "" {
		sb.WriteString(" AND LOWER(category) LIKE '%' || LOWER(?) || '%'")
		args = append(args, category)
	}

	sb.WriteString(" ORDER BY score DESC, name ASC LIMIT ?")
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		r.log.Error("Failed to search businesses",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*entity.Business
	for rows.Next() {
		var score int
		business, err := scanBusiness(rows, &score)
		if err != nil {
			r.log.Error("Failed to scan search row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return businesses, nil
}
