package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"satellite-analyzer/internal/domain/entity"
)

func TestMemoryReportRepository_SaveAndLast(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	first := &entity.AnalysisReport{ImageInfo: entity.ImageInfo{FilePath: "first.jpg"}}
	second := &entity.AnalysisReport{ImageInfo: entity.ImageInfo{FilePath: "second.jpg"}}

	require.NoError(t, repo.SaveLast(ctx, 1, first))
	require.NoError(t, repo.SaveLast(ctx, 1, second))

	last, err := repo.Last(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, second, last)
}

func TestMemoryReportRepository_LastWhenEmpty(t *testing.T) {
	repo := NewMemoryReportRepository()

	last, err := repo.Last(context.Background(), 99)
	require.NoError(t, err)
	require.Nil(t, last)
}

func TestMemoryUserRepository_GetCreatesUser(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	user.SetState(entity.StateAwaitingPhoto)
	require.NoError(t, repo.Save(ctx, user))

	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, again.State)
}
