package repository_test

import (
	"context"
	"testing"
	"time"

	"listacrosseu/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := seedBusiness(t, repo, &entity.Business{Name: "Blue Cafe"})

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: time.Now()},
		Email:        "owner@example.com",
		PasswordHash: "$2a$10$hash",
		BusinessID:   &b.ID,
	}
	require.NoError(t, repo.User.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.User.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.PlanTypeFree, found.PlanType)
	require.NotNil(t, found.BusinessID)
	assert.Equal(t, b.ID, *found.BusinessID)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	found, err := repo.User.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: time.Now()},
		Email:        "owner@example.com",
		PasswordHash: "h1",
	}
	require.NoError(t, repo.User.Create(ctx, first))

	dup := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: time.Now()},
		Email:        "owner@example.com",
		PasswordHash: "h2",
	}
	assert.Error(t, repo.User.Create(ctx, dup))
}
