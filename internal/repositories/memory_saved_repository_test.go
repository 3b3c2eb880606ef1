package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
)

func TestMemorySavedRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemorySavedRepository()
	ctx := context.Background()

	saved := &models.SavedProperty{
		ID:         "abc",
		PropertyID: 1,
		Notes:      "great porch",
		SavedDate:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, saved))

	got, err := repo.GetByPropertyID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "great porch", got.Notes)
}

func TestMemorySavedRepositoryDuplicateCreate(t *testing.T) {
	repo := NewMemorySavedRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.SavedProperty{ID: "a", PropertyID: 1}))
	err := repo.Create(ctx, &models.SavedProperty{ID: "b", PropertyID: 1})
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)
}

func TestMemorySavedRepositoryGetMissing(t *testing.T) {
	repo := NewMemorySavedRepository()

	_, err := repo.GetByPropertyID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}

func TestMemorySavedRepositoryDelete(t *testing.T) {
	repo := NewMemorySavedRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.SavedProperty{ID: "a", PropertyID: 1}))
	require.NoError(t, repo.DeleteByPropertyID(ctx, 1))

	_, err := repo.GetByPropertyID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}

func TestMemorySavedRepositoryDeleteMissing(t *testing.T) {
	repo := NewMemorySavedRepository()
	err := repo.DeleteByPropertyID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}

func TestMemorySavedRepositoryListNewestFirst(t *testing.T) {
	repo := NewMemorySavedRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.SavedProperty{ID: "a", PropertyID: 1, SavedDate: base}))
	require.NoError(t, repo.Create(ctx, &models.SavedProperty{ID: "b", PropertyID: 2, SavedDate: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.SavedProperty{ID: "c", PropertyID: 3, SavedDate: base.Add(-time.Hour)}))

	saved, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, 2, saved[0].PropertyID)
	assert.Equal(t, 1, saved[1].PropertyID)
	assert.Equal(t, 3, saved[2].PropertyID)
}
