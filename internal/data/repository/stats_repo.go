package repository

import (
	"context"
	"fmt"

	"listacrosseu/pkg/database"

	"go.uber.org/zap"
)

type CountryCount struct {
	CountryCode string
	Count       int64
}

type CategoryCount struct {
	Category string
	Count    int64
}

type CityCount struct {
	City        string
	CountryCode string
	Count       int64
}

type StatsRepository interface {
	CountBusinesses(ctx context.Context) (int64, error)
	CountByCountry(ctx context.Context) ([]CountryCount, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
	TopCities(ctx context.Context, limit int) ([]CityCount, error)
}

type statsRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewStatsRepository(db database.SQLIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

func (r *statsRepository) CountBusinesses(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM businesses`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count businesses", zap.Error(err))
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return total, nil
}

func (r *statsRepository) CountByCountry(ctx context.Context) ([]CountryCount, error) {
	query := `
		SELECT country_code, COUNT(*)
		FROM businesses
		WHERE country_code IS NOT NULL AND country_code != ''
		GROUP BY country_code
		ORDER BY COUNT(*) DESC, country_code ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("Failed to count by country", zap.Error(err))
		return nil, fmt.Errorf("failed to count by country: %w", err)
	}
	defer rows.Close()

	var counts []CountryCount
	for rows.Next() {
		var c CountryCount
		if err := rows.Scan(&c.CountryCode, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan country count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return counts, nil
}

func (r *statsRepository) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM businesses
		WHERE category IS NOT NULL AND category != ''
		GROUP BY category
		ORDER BY COUNT(*) DESC, category ASC
	`
	args := []any{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to count top categories", zap.Error(err))
		return nil, fmt.Errorf("failed to count top categories: %w", err)
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return counts, nil
}

func (r *statsRepository) TopCities(ctx context.Context, limit int) ([]CityCount, error) {
	query := `
		SELECT city, COALESCE(country_code, ''), COUNT(*)
		FROM businesses
		WHERE city IS NOT NULL AND city != ''
		GROUP BY city, country_code
		ORDER BY COUNT(*) DESC, city ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to count top cities", zap.Error(err))
		return nil, fmt.Errorf("failed to count top cities: %w", err)
	}
	defer rows.Close()

	var counts []CityCount
	for rows.Next() {
		var c CityCount
		if err := rows.Scan(&c.City, &c.CountryCode, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan city count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return counts, nil
}
