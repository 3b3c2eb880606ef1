package repositories

import (
	"context"
	"time"

	"homescout-listings/internal/models"
)

// noopCache satisfies ListingCache without Redis. Every read is a miss and
// every write succeeds silently; used in memory store mode and tests.
type noopCache struct{}

func NewNoopCache() ListingCache {
	return noopCache{}
}

func (noopCache) GetProperties(ctx context.Context, key string) ([]models.Property, error) {
	return nil, nil
}

func (noopCache) SetProperties(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error {
	return nil
}

func (noopCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	return nil, nil
}

func (noopCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	return nil
}

func (noopCache) GetSuggestions(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (noopCache) SetSuggestions(ctx context.Context, key string, suggestions []string, expiration time.Duration) error {
	return nil
}

func (noopCache) GetSavedList(ctx context.Context) ([]models.SavedProperty, error) {
	return nil, nil
}

func (noopCache) SetSavedList(ctx context.Context, saved []models.SavedProperty, expiration time.Duration) error {
	return nil
}

func (noopCache) InvalidateSavedList(ctx context.Context) error {
	return nil
}

func (noopCache) InvalidateQueries(ctx context.Context) error {
	return nil
}
