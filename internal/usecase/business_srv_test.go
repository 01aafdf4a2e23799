package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessService_ListBusinesses_PaginationMetadata(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedBusiness(t, repo, &entity.Business{
			Name: fmt.Sprintf("Business %02d", i),
			Base: entity.Base{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
		})
	}

	page, err := service.Business.ListBusinesses(ctx, &request.BusinessFilterRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 20},
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 5)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 20, page.Pagination.PerPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestBusinessService_ListBusinesses_GeoFilter(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	near := 52.50
	nearLng := 13.40
	far := 60.0
	farLng := 25.0
	seedBusiness(t, repo, &entity.Business{Name: "Near", Latitude: &near, Longitude: &nearLng})
	seedBusiness(t, repo, &entity.Business{Name: "Far", Latitude: &far, Longitude: &farLng})

	lat := 52.52
	lng := 13.405
	page, err := service.Business.ListBusinesses(ctx, &request.BusinessFilterRequest{
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Near", page.Data[0].Name)
}

func TestBusinessService_GetBusinessByID(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	hours := `{"mon":"09:00-17:00"}`
	b := seedBusiness(t, repo, &entity.Business{Name: "Blue Cafe", OpeningHours: &hours})

	require.NoError(t, repo.Review.Create(ctx, &entity.Review{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		BusinessID: b.ID,
		Rating:     4,
	}))

	detail, err := service.Business.GetBusinessByID(ctx, fmt.Sprintf("%d", b.ID))
	require.NoError(t, err)

	assert.Equal(t, "Blue Cafe", detail.Name)
	assert.Equal(t, map[string]string{"mon": "09:00-17:00"}, detail.OpeningHours)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, 4, detail.Reviews[0].Rating)
}

func TestBusinessService_GetBusinessByID_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Business.GetBusinessByID(context.Background(), "9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBusinessService_GetBusinessByID_InvalidID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Business.GetBusinessByID(context.Background(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestBusinessService_ListByCountry(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedBusiness(t, repo, &entity.Business{Name: "Berlin Bakery", CountryCode: "de"})
	seedBusiness(t, repo, &entity.Business{Name: "Paris Bistro", CountryCode: "fr"})

	page, err := service.Business.ListByCountry(ctx, "DE", &request.PaginatedRequest{Page: 1, PerPage: 20})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Berlin Bakery", page.Data[0].Name)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	lat := 52.52
	lng := 13.405
	created, err := service.Business.CreateBusiness(ctx, &request.CreateBusinessRequest{
		Name:         "Blue Cafe",
		Category:     "Restaurant",
		City:         "Berlin",
		CountryCode:  "DE",
		Latitude:     &lat,
		Longitude:    &lng,
		OpeningHours: map[string]string{"mon": "09:00-17:00"},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "de", created.CountryCode)
	assert.Equal(t, "free", created.PlanType)
	assert.Equal(t, map[string]string{"mon": "09:00-17:00"}, created.OpeningHours)
}

func TestBusinessService_CreateBusiness_ValidationFailure(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Business.CreateBusiness(context.Background(), &request.CreateBusinessRequest{
		Name:  "",
		Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
