package repository_test

import (
	"context"
	"testing"
	"time"

	"listacrosseu/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_CreateAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := seedBusiness(t, repo, &entity.Business{Name: "Blue Cafe"})

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := &entity.Review{
		BaseSimple:   entity.BaseSimple{CreatedAt: base},
		BusinessID:   b.ID,
		ReviewerName: "Alice",
		Rating:       5,
		Comment:      "Great coffee",
	}
	second := &entity.Review{
		BaseSimple: entity.BaseSimple{CreatedAt: base.Add(time.Hour)},
		BusinessID: b.ID,
		Rating:     3,
	}

	require.NoError(t, repo.Review.Create(ctx, first))
	require.NoError(t, repo.Review.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)

	reviews, err := repo.Review.FindByBusinessID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	// newest first
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)

	// blank reviewer falls back to the default
	assert.Equal(t, entity.DefaultReviewerName, reviews[0].ReviewerName)
	assert.Equal(t, "Alice", reviews[1].ReviewerName)
}

func TestReviewRepository_ListEmptyForUnknownBusiness(t *testing.T) {
	repo := newTestRepo(t)

	reviews, err := repo.Review.FindByBusinessID(context.Background(), 4242)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewRepository_RatingConstraintEnforced(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := seedBusiness(t, repo, &entity.Business{Name: "Blue Cafe"})

	err := repo.Review.Create(ctx, &entity.Review{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		BusinessID: b.ID,
		Rating:     0,
	})
	assert.Error(t, err)
}
