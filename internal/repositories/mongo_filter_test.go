package repositories

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homescout-listings/internal/listing"
	"homescout-listings/internal/models"
)

func TestBuildMongoFilterEmpty(t *testing.T) {
	assert.Empty(t, buildMongoFilter(nil))
	assert.Empty(t, buildMongoFilter(&models.FilterSpec{}))
}

func TestBuildMongoFilterTypeClauseMatchesEngineCasing(t *testing.T) {
	spec := &models.FilterSpec{PropertyTypes: []string{"house"}}

	clause, ok := buildMongoFilter(spec)["propertyType"].(bson.M)
	require.True(t, ok)
	patterns, ok := clause["$in"].(bson.A)
	require.True(t, ok)
	require.Len(t, patterns, 1)
	re, ok := patterns[0].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^house$", re.Pattern)
	assert.Equal(t, "i", re.Options)

	stored := &models.Property{PropertyType: "House"}
	assert.True(t, listing.Matches(stored, spec))
	matched, err := regexp.MatchString("(?i)"+re.Pattern, stored.PropertyType)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestBuildMongoFilterTypeClauseQuotesMetaCharacters(t *testing.T) {
	spec := &models.FilterSpec{PropertyTypes: []string{"Co-op (Shared)"}}

	clause := buildMongoFilter(spec)["propertyType"].(bson.M)
	re := clause["$in"].(bson.A)[0].(primitive.Regex)
	assert.Equal(t, `^Co-op \(Shared\)$`, re.Pattern)

	matched, err := regexp.MatchString("(?i)"+re.Pattern, "co-op (shared)")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestBuildMongoFilterLocationRegexIsCaseInsensitive(t *testing.T) {
	filter := buildMongoFilter(&models.FilterSpec{Location: "austin"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.NotEmpty(t, or)
	city := or[0].(bson.M)["address.city"].(primitive.Regex)
	assert.Equal(t, "i", city.Options)
	assert.Equal(t, "austin", city.Pattern)
}
