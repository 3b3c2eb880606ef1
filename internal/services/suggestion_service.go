package services

import (
	"context"
	"time"

	"homescout-listings/internal/listing"
	"homescout-listings/internal/models"
	"homescout-listings/internal/repositories"
	"homescout-listings/internal/transformers"
	"homescout-listings/pkg/cache"
	"homescout-listings/pkg/logger"
	"homescout-listings/pkg/metrics"
)

const suggestionCacheTTL = 5 * time.Minute

// SuggestionService resolves partial location queries to display strings.
// The HTTP layer is synchronous; SuggestAsync adds debouncing for
// interactive consumers that do not debounce keystrokes themselves.
type SuggestionService struct {
	repo      repositories.PropertyRepository
	cache     repositories.ListingCache
	addrTrans transformers.AddressTransformer
	debouncer *listing.Debouncer
}

func NewSuggestionService(repo repositories.PropertyRepository, listingCache repositories.ListingCache, debounce time.Duration) *SuggestionService {
	return &SuggestionService{
		repo:      repo,
		cache:     listingCache,
		addrTrans: transformers.NewAddressTransformer(),
		debouncer: listing.NewDebouncer(debounce),
	}
}

// Suggest returns up to five unique location strings for the query.
// Queries shorter than two characters return an empty list without ever
// touching the store.
func (s *SuggestionService) Suggest(ctx context.Context, query string) ([]string, error) {
	metrics.SuggestionRequestsTotal.Inc()

	normalized := s.addrTrans.NormalizeLocationQuery(query)
	if len([]rune(normalized)) < listing.MinSuggestionQueryLen {
		return []string{}, nil
	}

	suggestionKey := cache.SuggestionKey(normalized)
	if cached, err := s.cache.GetSuggestions(ctx, suggestionKey); err == nil && cached != nil {
		setDataSource(ctx, "CACHE", true)
		return cached, nil
	}

	properties, err := s.repo.GetAll(ctx, &models.FilterSpec{Location: normalized})
	if err != nil {
		return nil, err
	}

	suggestions := listing.Suggestions(properties, normalized)
	if err := s.cache.SetSuggestions(ctx, suggestionKey, suggestions, suggestionCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for %s: %v", suggestionKey, err)
	}
	setDataSource(ctx, "STORE", false)
	return suggestions, nil
}

// SuggestAsync debounces a burst of keystroke queries and delivers the
// suggestions for the latest one. Lookup failures deliver an empty list;
// superseded queries deliver nothing.
func (s *SuggestionService) SuggestAsync(ctx context.Context, query string, apply func([]string)) {
	s.debouncer.Do(func() []string {
		suggestions, err := s.Suggest(ctx, query)
		if err != nil {
			logger.GlobalLogger.Errorf("Suggestion lookup failed for %q: %v", query, err)
			return []string{}
		}
		return suggestions
	}, apply)
}
