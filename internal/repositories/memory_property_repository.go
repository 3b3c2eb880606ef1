package repositories

import (
	"context"
	"sort"
	"sync"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/listing"
	"homescout-listings/internal/models"
	"homescout-listings/internal/transformers"
	"homescout-listings/internal/utils"
)

// memoryPropertyRepository is the mock-dataset fallback store. It is an
// explicit object constructed once at startup and injected into consumers,
// not a module-level singleton, and it hands out defensive copies so no
// caller can mutate the snapshot another caller is reading.
type memoryPropertyRepository struct {
	mu         sync.RWMutex
	properties []models.Property
}

// NewMemoryPropertyRepository seeds the store from the bundled dataset.
func NewMemoryPropertyRepository(seedFile string) (PropertyRepository, error) {
	records, err := utils.ReadSeedRecords(seedFile)
	if err != nil {
		return nil, err
	}

	trans := transformers.NewRecordTransformer()
	properties := make([]models.Property, 0, len(records))
	for _, record := range records {
		property, err := trans.TransformRecord(record)
		if err != nil {
			continue
		}
		properties = append(properties, *property)
	}
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].ListingDate.After(properties[j].ListingDate)
	})

	return &memoryPropertyRepository{properties: properties}, nil
}

// NewMemoryPropertyRepositoryFromSlice builds a store over an existing
// collection, used by tests.
func NewMemoryPropertyRepositoryFromSlice(properties []models.Property) PropertyRepository {
	snapshot := make([]models.Property, len(properties))
	copy(snapshot, properties)
	return &memoryPropertyRepository{properties: snapshot}
}

// GetAll pre-filters with the engine's own matcher, so this store agrees
// with the server-backed ones by construction.
func (r *memoryPropertyRepository) GetAll(ctx context.Context, hints *models.FilterSpec) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if listing.Matches(&p, hints) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryPropertyRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.properties {
		if p.ID == id {
			property := p
			return &property, nil
		}
	}
	return nil, apperrors.ErrPropertyNotFound
}
