package services

import (
	"context"
	"time"

	"homescout-listings/internal/models"
	"homescout-listings/internal/repositories"
	"homescout-listings/pkg/logger"

	"github.com/google/uuid"
)

const savedListCacheTTL = 5 * time.Minute

// SavedPropertyService manages bookmarks. Saving verifies the property
// exists first, so a stale UI cannot bookmark a delisted record.
type SavedPropertyService struct {
	savedRepo    repositories.SavedPropertyRepository
	propertyRepo repositories.PropertyRepository
	cache        repositories.ListingCache
}

func NewSavedPropertyService(savedRepo repositories.SavedPropertyRepository, propertyRepo repositories.PropertyRepository, listingCache repositories.ListingCache) *SavedPropertyService {
	return &SavedPropertyService{
		savedRepo:    savedRepo,
		propertyRepo: propertyRepo,
		cache:        listingCache,
	}
}

// List returns all bookmarks, newest first.
func (s *SavedPropertyService) List(ctx context.Context) ([]models.SavedProperty, error) {
	if cached, err := s.cache.GetSavedList(ctx); err == nil && cached != nil {
		return cached, nil
	}

	saved, err := s.savedRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetSavedList(ctx, saved, savedListCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for saved list: %v", err)
	}
	return saved, nil
}

// Get looks up the bookmark for a property, or errors.ErrNotSaved.
func (s *SavedPropertyService) Get(ctx context.Context, propertyID int) (*models.SavedProperty, error) {
	return s.savedRepo.GetByPropertyID(ctx, propertyID)
}

// Save bookmarks a property. Fails with errors.ErrPropertyNotFound for an
// unknown property and errors.ErrAlreadySaved for a duplicate.
func (s *SavedPropertyService) Save(ctx context.Context, req *models.SaveRequest) (*models.SavedProperty, error) {
	if _, err := s.propertyRepo.GetByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	saved := &models.SavedProperty{
		ID:         uuid.New().String(),
		PropertyID: req.PropertyID,
		Notes:      req.Notes,
		SavedDate:  time.Now().UTC(),
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return saved, nil
}

// Unsave removes a bookmark, failing with errors.ErrNotSaved when the
// property was never bookmarked.
func (s *SavedPropertyService) Unsave(ctx context.Context, propertyID int) error {
	if err := s.savedRepo.DeleteByPropertyID(ctx, propertyID); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *SavedPropertyService) invalidateList(ctx context.Context) {
	if err := s.cache.InvalidateSavedList(ctx); err != nil {
		logger.GlobalLogger.Errorf("Cache invalidation failed for saved list: %v", err)
	}
}
