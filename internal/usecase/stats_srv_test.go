package usecase_test

import (
	"context"
	"testing"

	"listacrosseu/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedBusiness(t, repo, &entity.Business{Name: "A", CountryCode: "de", Category: "Restaurant", City: "Berlin"})
	seedBusiness(t, repo, &entity.Business{Name: "B", CountryCode: "de", Category: "Restaurant", City: "Berlin"})
	seedBusiness(t, repo, &entity.Business{Name: "C", CountryCode: "fr", Category: "Retail", City: "Paris"})
	seedBusiness(t, repo, &entity.Business{Name: "D"})

	stats, err := service.Stats.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalBusinesses)

	require.Len(t, stats.ByCountry, 2)
	assert.Equal(t, "de", stats.ByCountry[0].CountryCode)
	assert.Equal(t, int64(2), stats.ByCountry[0].Count)
	assert.Equal(t, "fr", stats.ByCountry[1].CountryCode)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, "Restaurant", stats.TopCategories[0].Category)
	assert.Equal(t, int64(2), stats.TopCategories[0].Count)

	require.Len(t, stats.TopCities, 2)
	assert.Equal(t, "Berlin", stats.TopCities[0].City)
}

func TestStatsService_GetStats_EmptyDatabase(t *testing.T) {
	service, _ := newTestService(t)

	stats, err := service.Stats.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalBusinesses)
	assert.Empty(t, stats.ByCountry)
	assert.Empty(t, stats.TopCategories)
	assert.Empty(t, stats.TopCities)
}

func TestStatsService_GetCategories(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedBusiness(t, repo, &entity.Business{Name: "A", Category: "Restaurant"})
	seedBusiness(t, repo, &entity.Business{Name: "B", Category: "Restaurant"})
	seedBusiness(t, repo, &entity.Business{Name: "C", Category: "Bakery"})

	result, err := service.Stats.GetCategories(ctx)
	require.NoError(t, err)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Restaurant", result.Categories[0].Category)
	assert.Equal(t, int64(2), result.Categories[0].Count)
	assert.Equal(t, "Bakery", result.Categories[1].Category)
}
