package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescout-listings/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func testProperties() []models.Property {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.Property{
		{
			ID: 1, Title: "Austin House", Price: 485000,
			Bedrooms: 4, Bathrooms: 2.5, SquareFeet: 2450,
			PropertyType: "House", ListingDate: base.AddDate(0, 0, 17),
			Address: models.Address{Street: "1204 Bluebonnet Ln", City: "Austin", State: "TX", ZipCode: "78704"},
		},
		{
			ID: 2, Title: "Downtown Condo", Price: 329900,
			Bedrooms: 1, Bathrooms: 1, SquareFeet: 890,
			PropertyType: "Condo", ListingDate: base.AddDate(0, 0, 24),
			Address: models.Address{Street: "500 Congress Ave", City: "Austin", State: "TX", ZipCode: "78701"},
		},
		{
			ID: 3, Title: "Portland Bungalow", Price: 612000,
			Bedrooms: 3, Bathrooms: 2, SquareFeet: 1780,
			PropertyType: "House", ListingDate: base.AddDate(0, 0, -2),
			Address: models.Address{Street: "4312 SE Hawthorne Blvd", City: "Portland", State: "OR", ZipCode: "97215"},
		},
		{
			ID: 4, Title: "Lakefront Townhouse", Price: 739000,
			Bedrooms: 3, Bathrooms: 3.5, SquareFeet: 2100,
			PropertyType: "Townhouse", ListingDate: base.AddDate(0, 0, 9),
			Address: models.Address{Street: "88 Lakeshore Dr", City: "Chicago", State: "IL", ZipCode: "60611"},
		},
	}
}

func resultIDs(properties []models.Property) []int {
	ids := make([]int, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	return ids
}

func TestQueryNilFilterReturnsEverything(t *testing.T) {
	result := Query(testProperties(), nil, models.SortNewest)
	assert.Len(t, result, 4)
}

func TestQueryEmptyFilterReturnsEverything(t *testing.T) {
	result := Query(testProperties(), &models.FilterSpec{}, models.SortNewest)
	assert.Len(t, result, 4)
}

func TestQueryPriceBoundsAreInclusive(t *testing.T) {
	filter := &models.FilterSpec{
		PriceMin: floatPtr(329900),
		PriceMax: floatPtr(485000),
	}
	result := Query(testProperties(), filter, models.SortPriceLow)
	assert.Equal(t, []int{2, 1}, resultIDs(result))
}

func TestQueryBedroomsIsMinimum(t *testing.T) {
	filter := &models.FilterSpec{Bedrooms: intPtr(3)}
	result := Query(testProperties(), filter, models.SortPriceLow)
	assert.Equal(t, []int{1, 3, 4}, resultIDs(result))
}

func TestQueryBathroomsIsMinimum(t *testing.T) {
	filter := &models.FilterSpec{Bathrooms: floatPtr(2.5)}
	result := Query(testProperties(), filter, models.SortPriceLow)
	assert.Equal(t, []int{1, 4}, resultIDs(result))
}

func TestQueryPropertyTypesAreCaseInsensitive(t *testing.T) {
	filter := &models.FilterSpec{PropertyTypes: []string{"house", "CONDO"}}
	result := Query(testProperties(), filter, models.SortPriceLow)
	assert.Equal(t, []int{2, 1, 3}, resultIDs(result))
}

func TestQueryLocationMatchesAnyAddressField(t *testing.T) {
	cases := []struct {
		query string
		want  []int
	}{
		{"austin", []int{1, 2}},
		{"TX", []int{1, 2}},
		{"97215", []int{3}},
		{"lakeshore", []int{4}},
		{"  Portland  ", []int{3}},
	}
	for _, tc := range cases {
		filter := &models.FilterSpec{Location: tc.query}
		result := Query(testProperties(), filter, models.SortPriceLow)
		assert.Equal(t, tc.want, resultIDs(result), "query %q", tc.query)
	}
}

func TestQueryCombinesConstraintsWithAnd(t *testing.T) {
	filter := &models.FilterSpec{
		PriceMax:      floatPtr(700000),
		Bedrooms:      intPtr(3),
		PropertyTypes: []string{"House"},
		Location:      "austin",
	}
	result := Query(testProperties(), filter, models.SortNewest)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestQueryNoMatchesReturnsEmptyNotNil(t *testing.T) {
	filter := &models.FilterSpec{PriceMin: floatPtr(10000000)}
	result := Query(testProperties(), filter, models.SortNewest)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestQuerySortOrders(t *testing.T) {
	properties := testProperties()

	assert.Equal(t, []int{2, 1, 4, 3}, resultIDs(Query(properties, nil, models.SortNewest)))
	assert.Equal(t, []int{3, 4, 1, 2}, resultIDs(Query(properties, nil, models.SortOldest)))
	assert.Equal(t, []int{2, 1, 3, 4}, resultIDs(Query(properties, nil, models.SortPriceLow)))
	assert.Equal(t, []int{4, 3, 1, 2}, resultIDs(Query(properties, nil, models.SortPriceHigh)))
	assert.Equal(t, []int{1, 4, 3, 2}, resultIDs(Query(properties, nil, models.SortSquareFeet)))
}

func TestQuerySortIsStableOnTies(t *testing.T) {
	properties := testProperties()
	properties[2].Price = properties[0].Price

	result := Query(properties, nil, models.SortPriceLow)
	assert.Equal(t, []int{2, 1, 3, 4}, resultIDs(result))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	properties := testProperties()
	original := resultIDs(properties)

	Query(properties, &models.FilterSpec{Bedrooms: intPtr(2)}, models.SortPriceHigh)

	assert.Equal(t, original, resultIDs(properties))
}

func TestMatchesNilFilter(t *testing.T) {
	p := testProperties()[0]
	assert.True(t, Matches(&p, nil))
}

func TestMatchesLocationBlankQuery(t *testing.T) {
	p := testProperties()[0]
	assert.True(t, MatchesLocation(&p, "   "))
}

func TestParseSortKeyFallsBackToNewest(t *testing.T) {
	assert.Equal(t, models.SortNewest, models.ParseSortKey("bogus"))
	assert.Equal(t, models.SortNewest, models.ParseSortKey(""))
	assert.Equal(t, models.SortPriceHigh, models.ParseSortKey("price-high"))
	assert.Equal(t, models.SortSquareFeet, models.ParseSortKey("sqft"))
}
