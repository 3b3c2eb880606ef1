package repositories

import (
	"context"
	"time"

	"homescout-listings/internal/models"
)

// PropertyRepository is the Property Store boundary. GetAll may pre-filter
// with the hints as an optimization, but callers re-apply the query engine
// over the result, so implementations only ever narrow, never reorder the
// contract. GetByID returns errors.ErrPropertyNotFound when no record
// matches.
type PropertyRepository interface {
	GetAll(ctx context.Context, hints *models.FilterSpec) ([]models.Property, error)
	GetByID(ctx context.Context, id int) (*models.Property, error)
}

// SavedPropertyRepository is the Saved-Item Store boundary, keyed by
// property ID. Create fails with errors.ErrAlreadySaved on a duplicate;
// DeleteByPropertyID fails with errors.ErrNotSaved when nothing matches.
type SavedPropertyRepository interface {
	List(ctx context.Context) ([]models.SavedProperty, error)
	GetByPropertyID(ctx context.Context, propertyID int) (*models.SavedProperty, error)
	Create(ctx context.Context, saved *models.SavedProperty) error
	DeleteByPropertyID(ctx context.Context, propertyID int) error
}

// ListingCache fronts the stores with cache-aside reads. Misses are
// (nil, nil); cache failures degrade to misses at the service layer.
type ListingCache interface {
	GetProperties(ctx context.Context, key string) ([]models.Property, error)
	SetProperties(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error
	GetProperty(ctx context.Context, key string) (*models.Property, error)
	SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error
	GetSuggestions(ctx context.Context, key string) ([]string, error)
	SetSuggestions(ctx context.Context, key string, suggestions []string, expiration time.Duration) error
	GetSavedList(ctx context.Context) ([]models.SavedProperty, error)
	SetSavedList(ctx context.Context, saved []models.SavedProperty, expiration time.Duration) error
	InvalidateSavedList(ctx context.Context) error
	InvalidateQueries(ctx context.Context) error
}
