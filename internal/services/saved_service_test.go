package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/internal/repositories"
)

func newTestSavedService() *SavedPropertyService {
	propertyRepo := repositories.NewMemoryPropertyRepositoryFromSlice(serviceFixtures())
	return NewSavedPropertyService(repositories.NewMemorySavedRepository(), propertyRepo, repositories.NewNoopCache())
}

func TestSaveAndList(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, &models.SaveRequest{PropertyID: 1, Notes: "nice yard"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 1, saved.PropertyID)
	assert.False(t, saved.SavedDate.IsZero())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nice yard", list[0].Notes)
}

func TestSaveUnknownProperty(t *testing.T) {
	svc := newTestSavedService()

	_, err := svc.Save(context.Background(), &models.SaveRequest{PropertyID: 999})
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
}

func TestSaveDuplicate(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	_, err := svc.Save(ctx, &models.SaveRequest{PropertyID: 1})
	require.NoError(t, err)

	_, err = svc.Save(ctx, &models.SaveRequest{PropertyID: 1})
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)
}

func TestUnsave(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	_, err := svc.Save(ctx, &models.SaveRequest{PropertyID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Unsave(ctx, 1))

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}

func TestUnsaveNeverSaved(t *testing.T) {
	svc := newTestSavedService()
	err := svc.Unsave(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}
