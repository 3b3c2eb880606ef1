package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescout-listings/internal/listing"
	"homescout-listings/internal/models"
	"homescout-listings/pkg/tablestore"
)

const tableRecordBody = `{"success":true,"data":[{"Id":1,"Name":"Austin House",` +
	`"price_c":485000,"bedrooms_c":4,"bathrooms_c":2.5,"square_feet_c":2450,` +
	`"property_type_c":"House","street_c":"1204 Bluebonnet Ln","city_c":"Austin",` +
	`"state_c":"TX","zip_code_c":"78704","listing_date_c":"2026-08-18T12:00:00Z"}]}`

func newTableTestServer(t *testing.T, payload *tablestore.FetchParams) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tableRecordBody))
	}))
}

func TestTableGetAllSendsNumericClausesOnly(t *testing.T) {
	var payload tablestore.FetchParams
	server := newTableTestServer(t, &payload)
	defer server.Close()

	repo := NewTablePropertyRepository(tablestore.NewClient(server.URL, "proj", "key"))
	minPrice := 400000.0
	spec := &models.FilterSpec{
		PriceMin:      &minPrice,
		PropertyTypes: []string{"house"},
		Location:      "austin",
	}

	properties, err := repo.GetAll(context.Background(), spec)
	require.NoError(t, err)

	require.Len(t, payload.Where, 1)
	assert.Equal(t, "price_c", payload.Where[0].FieldName)
	assert.Empty(t, payload.WhereGroups)

	require.Len(t, properties, 1)
	assert.True(t, listing.Matches(&properties[0], spec))
}

func TestTableGetAllMixedCaseTypeSurvivesRoundTrip(t *testing.T) {
	var payload tablestore.FetchParams
	server := newTableTestServer(t, &payload)
	defer server.Close()

	repo := NewTablePropertyRepository(tablestore.NewClient(server.URL, "proj", "key"))
	spec := &models.FilterSpec{PropertyTypes: []string{"HOUSE"}}

	properties, err := repo.GetAll(context.Background(), spec)
	require.NoError(t, err)
	require.Len(t, properties, 1)

	result := listing.Query(properties, spec, models.SortNewest)
	require.Len(t, result, 1)
	assert.Equal(t, "House", result[0].PropertyType)
}
