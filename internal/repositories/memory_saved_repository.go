package repositories

import (
	"context"
	"sort"
	"sync"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
)

// memorySavedRepository keeps bookmarks in memory, keyed by property ID.
// Used in memory store mode and by tests.
type memorySavedRepository struct {
	mu    sync.RWMutex
	saved map[int]models.SavedProperty
}

func NewMemorySavedRepository() SavedPropertyRepository {
	return &memorySavedRepository{
		saved: make(map[int]models.SavedProperty),
	}
}

func (r *memorySavedRepository) List(ctx context.Context) ([]models.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved := make([]models.SavedProperty, 0, len(r.saved))
	for _, s := range r.saved {
		saved = append(saved, s)
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].SavedDate.After(saved[j].SavedDate)
	})
	return saved, nil
}

func (r *memorySavedRepository) GetByPropertyID(ctx context.Context, propertyID int) (*models.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.saved[propertyID]
	if !ok {
		return nil, apperrors.ErrNotSaved
	}
	return &s, nil
}

func (r *memorySavedRepository) Create(ctx context.Context, saved *models.SavedProperty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.saved[saved.PropertyID]; ok {
		return apperrors.ErrAlreadySaved
	}
	r.saved[saved.PropertyID] = *saved
	return nil
}

func (r *memorySavedRepository) DeleteByPropertyID(ctx context.Context, propertyID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.saved[propertyID]; !ok {
		return apperrors.ErrNotSaved
	}
	delete(r.saved, propertyID)
	return nil
}
