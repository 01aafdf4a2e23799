package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/dto/response"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader) (*response.ImportSummary, error)
}

type importService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewImportService(
	repo *repository.Repository,
	log *zap.Logger,
) ImportService {
	return &importService{
		repo: repo,
		log:  log.With(zap.String("service", "import")),
	}
}

// ImportCSV bulk-loads business rows from an uploaded CSV stream. The first
// record is a header naming the columns. Row-level failures are counted and
// skipped, the batch never aborts on a row. No surrounding transaction, a
// crash mid-import leaves the rows inserted so far.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*response.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("invalid csv: missing name column")
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	summary := &response.ImportSummary{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed line, count it and keep going
			summary.Total++
			summary.Errors++
			continue
		}

		summary.Total++

		name := field(record, "name")
		if name == "" {
			summary.Errors++
			continue
		}

		source := field(record, "source")
		if source == "" {
			source = entity.SourceCSVImport
		}

		var openingHours *string
		if raw := field(record, "opening_hours"); raw != "" {
			openingHours = &raw
		}

		now := time.Now()
		business := &entity.Business{
			Base: entity.Base{
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:        name,
			Category:    field(record, "category"),
			Address:     field(record, "address"),
			City:        field(record, "city"),
			Country:     field(record, "country"),
			CountryCode: utils.NormalizeCountryCode(field(record, "country_code")),
			Phone:       field(record, "phone"),
			Website:     field(record, "website"),
			Email:       field(record, "email"),
			// Unparsable coordinates become null, never a row failure
			Latitude:     utils.ParseFloat(field(record, "latitude")),
			Longitude:    utils.ParseFloat(field(record, "longitude")),
			Description:  field(record, "description"),
			OpeningHours: openingHours,
			Source:       source,
			PlanType:     entity.PlanType(field(record, "plan_type")),
		}

		if err := s.repo.Business.Create(ctx, business); err != nil {
			summary.Errors++
			continue
		}

		summary.Inserted++
	}

	s.log.Info("CSV import finished",
		zap.Int("inserted", summary.Inserted),
		zap.Int("errors", summary.Errors),
		zap.Int("total", summary.Total),
	)

	return summary, nil
}
