package services

import (
	"context"

	"homescout-listings/internal/models"
	"homescout-listings/internal/repositories"
	"homescout-listings/pkg/cache"
	"homescout-listings/pkg/logger"
)

// PropertyService resolves single listings by ID with a cache-aside read.
type PropertyService struct {
	repo  repositories.PropertyRepository
	cache repositories.ListingCache
}

func NewPropertyService(repo repositories.PropertyRepository, listingCache repositories.ListingCache) *PropertyService {
	return &PropertyService{
		repo:  repo,
		cache: listingCache,
	}
}

// GetByID returns a single listing, or errors.ErrPropertyNotFound passed
// through from the store so the handler can render a distinct not-found
// state.
func (s *PropertyService) GetByID(ctx context.Context, id int) (*models.Property, error) {
	propertyKey := cache.PropertyKey(id)

	if cached, err := s.cache.GetProperty(ctx, propertyKey); err == nil && cached != nil {
		setDataSource(ctx, "CACHE", true)
		return cached, nil
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProperty(ctx, propertyKey, property, propertyCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for %s: %v", propertyKey, err)
	}
	setDataSource(ctx, "STORE", false)
	return property, nil
}
