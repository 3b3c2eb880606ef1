package repositories

import (
	"context"
	"errors"
	"time"

	"homescout-listings/internal/models"
	"homescout-listings/pkg/cache"

	"github.com/go-redis/redis/v8"
)

type listingCache struct{}

// NewListingCache exposes the shared Redis client through typed cache-aside
// operations. Misses come back as (nil, nil).
func NewListingCache() ListingCache {
	return &listingCache{}
}

func getCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	err := cache.Get(ctx, key, dest)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *listingCache) GetProperties(ctx context.Context, key string) ([]models.Property, error) {
	var properties []models.Property
	ok, err := getCached(ctx, key, &properties)
	if err != nil || !ok {
		return nil, err
	}
	return properties, nil
}

func (c *listingCache) SetProperties(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error {
	return cache.Set(ctx, key, properties, expiration)
}

func (c *listingCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	var property models.Property
	ok, err := getCached(ctx, key, &property)
	if err != nil || !ok {
		return nil, err
	}
	return &property, nil
}

func (c *listingCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	return cache.Set(ctx, key, property, expiration)
}

func (c *listingCache) GetSuggestions(ctx context.Context, key string) ([]string, error) {
	var suggestions []string
	ok, err := getCached(ctx, key, &suggestions)
	if err != nil || !ok {
		return nil, err
	}
	return suggestions, nil
}

func (c *listingCache) SetSuggestions(ctx context.Context, key string, suggestions []string, expiration time.Duration) error {
	return cache.Set(ctx, key, suggestions, expiration)
}

func (c *listingCache) GetSavedList(ctx context.Context) ([]models.SavedProperty, error) {
	var saved []models.SavedProperty
	ok, err := getCached(ctx, cache.SavedListKey(), &saved)
	if err != nil || !ok {
		return nil, err
	}
	return saved, nil
}

func (c *listingCache) SetSavedList(ctx context.Context, saved []models.SavedProperty, expiration time.Duration) error {
	return cache.Set(ctx, cache.SavedListKey(), saved, expiration)
}

func (c *listingCache) InvalidateSavedList(ctx context.Context) error {
	return cache.Delete(ctx, cache.SavedListKey())
}

// InvalidateQueries drops every cached filter/sort result. Run at startup
// in mongo mode, where listings can change while the server is down.
func (c *listingCache) InvalidateQueries(ctx context.Context) error {
	return cache.DeleteByPrefix(ctx, "listings:query")
}
