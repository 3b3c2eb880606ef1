package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"homescout-listings/internal/models"
)

func TestSuggestionsShortQueryReturnsEmpty(t *testing.T) {
	properties := testProperties()

	assert.Empty(t, Suggestions(properties, ""))
	assert.Empty(t, Suggestions(properties, "a"))
	assert.Empty(t, Suggestions(properties, "  a  "))
}

func TestSuggestionsTwoCharactersIsEnough(t *testing.T) {
	result := Suggestions(testProperties(), "tx")
	assert.Equal(t, []string{"Austin, TX", "78704", "78701"}, result)
}

func TestSuggestionsDeduplicatesCityState(t *testing.T) {
	result := Suggestions(testProperties(), "austin")
	assert.Equal(t, []string{"Austin, TX", "78704", "78701"}, result)
}

func TestSuggestionsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Suggestions(testProperties(), "PORTLAND"), Suggestions(testProperties(), "portland"))
}

func TestSuggestionsCapped(t *testing.T) {
	properties := make([]models.Property, 10)
	for i := range properties {
		properties[i] = models.Property{
			ID: i + 1,
			Address: models.Address{
				City:    fmt.Sprintf("Springfield %d", i),
				State:   "IL",
				ZipCode: fmt.Sprintf("600%02d", i),
			},
		}
	}

	result := Suggestions(properties, "springfield")
	assert.Len(t, result, MaxSuggestions)
}

func TestSuggestionsNoMatches(t *testing.T) {
	result := Suggestions(testProperties(), "zznowhere")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSuggestionsSkipsPartialAddresses(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Address: models.Address{City: "Boston", ZipCode: "02108"}},
	}

	// No state, so only the zip is offered.
	result := Suggestions(properties, "boston")
	assert.Equal(t, []string{"02108"}, result)
}
