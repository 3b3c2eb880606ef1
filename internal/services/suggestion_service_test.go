package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescout-listings/internal/repositories"
)

func newTestSuggestionService() *SuggestionService {
	repo := repositories.NewMemoryPropertyRepositoryFromSlice(serviceFixtures())
	return NewSuggestionService(repo, repositories.NewNoopCache(), 10*time.Millisecond)
}

func TestSuggestShortQueryReturnsEmpty(t *testing.T) {
	svc := newTestSuggestionService()

	for _, q := range []string{"", "a", " a "} {
		result, err := svc.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, result, "query %q", q)
	}
}

func TestSuggestReturnsCityStateAndZips(t *testing.T) {
	svc := newTestSuggestionService()

	result, err := svc.Suggest(context.Background(), "Austin")
	require.NoError(t, err)
	assert.Equal(t, []string{"Austin, TX", "78704", "78701"}, result)
}

func TestSuggestNormalizesCase(t *testing.T) {
	svc := newTestSuggestionService()

	upper, err := svc.Suggest(context.Background(), "  PORTLAND  ")
	require.NoError(t, err)
	lower, err := svc.Suggest(context.Background(), "portland")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSuggestNoMatches(t *testing.T) {
	svc := newTestSuggestionService()

	result, err := svc.Suggest(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSuggestAsyncLastQueryWins(t *testing.T) {
	svc := newTestSuggestionService()

	done := make(chan []string, 1)
	svc.SuggestAsync(context.Background(), "portland", func([]string) {
		t.Error("superseded query delivered a result")
	})
	svc.SuggestAsync(context.Background(), "austin", func(suggestions []string) {
		done <- suggestions
	})

	select {
	case suggestions := <-done:
		assert.Equal(t, []string{"Austin, TX", "78704", "78701"}, suggestions)
	case <-time.After(time.Second):
		t.Fatal("debounced suggestion lookup never delivered")
	}
}
