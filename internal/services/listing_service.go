package services

import (
	"context"
	"time"

	"homescout-listings/internal/listing"
	"homescout-listings/internal/models"
	"homescout-listings/internal/repositories"
	"homescout-listings/pkg/cache"
	"homescout-listings/pkg/logger"
	"homescout-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const queryCacheTTL = 15 * time.Minute
const propertyCacheTTL = time.Hour

// ListingService runs the browse pipeline: cache-aside on the filter/sort
// combination, a snapshot from the Property Store (which may pre-filter
// with the same hints), then the pure query engine over whatever came back
// so every store agrees on filter semantics.
type ListingService struct {
	repo  repositories.PropertyRepository
	cache repositories.ListingCache
}

func NewListingService(repo repositories.PropertyRepository, listingCache repositories.ListingCache) *ListingService {
	return &ListingService{
		repo:  repo,
		cache: listingCache,
	}
}

// Helper function to tag the data source in gin context for the metrics
// middleware.
func setDataSource(ctx context.Context, source string, cacheHit bool) {
	if ginCtx, ok := ctx.(*gin.Context); ok {
		ginCtx.Set("data_source", source)
		ginCtx.Set("cache_hit", cacheHit)
	}
}

// Browse returns the ordered subset of listings for a filter and sort key.
func (s *ListingService) Browse(ctx context.Context, filter *models.FilterSpec, sortKey models.SortKey) ([]models.Property, error) {
	queryKey := cache.ListingQueryKey(filter, sortKey)

	if cached, err := s.cache.GetProperties(ctx, queryKey); err == nil && cached != nil {
		setDataSource(ctx, "CACHE", true)
		return cached, nil
	} else if err != nil {
		logger.GlobalLogger.Errorf("Cache read failed for %s: %v", queryKey, err)
	}

	properties, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := listing.Query(properties, filter, sortKey)
	metrics.ListingQueryDuration.Observe(time.Since(start).Seconds())

	if err := s.cache.SetProperties(ctx, queryKey, result, queryCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for %s: %v", queryKey, err)
	}
	setDataSource(ctx, "STORE", false)
	return result, nil
}
