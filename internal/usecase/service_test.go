package usecase_test

import (
	"context"
	"testing"
	"time"

	"listacrosseu/internal/data/entity"
	"listacrosseu/internal/data/repository"
	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/database"
	"listacrosseu/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*usecase.Service, *repository.Repository) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepository(db, zap.NewNop())
	service := usecase.NewService(repo, &utils.Config{}, zap.NewNop())
	return service, repo
}

func seedBusiness(t *testing.T, repo *repository.Repository, b *entity.Business) *entity.Business {
	t.Helper()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	require.NoError(t, repo.Business.Create(context.Background(), b))
	return b
}
