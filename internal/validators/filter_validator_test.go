package validators

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilterSpecParsesAllFields(t *testing.T) {
	v := NewFilterValidator()
	values := url.Values{
		"priceMin":      {"100000"},
		"priceMax":      {"500000"},
		"bedrooms":      {"3"},
		"bathrooms":     {"2.5"},
		"propertyTypes": {"House,Condo"},
		"location":      {" Austin "},
	}

	spec := v.BuildFilterSpec(values)

	require.NotNil(t, spec.PriceMin)
	assert.Equal(t, 100000.0, *spec.PriceMin)
	require.NotNil(t, spec.PriceMax)
	assert.Equal(t, 500000.0, *spec.PriceMax)
	require.NotNil(t, spec.Bedrooms)
	assert.Equal(t, 3, *spec.Bedrooms)
	require.NotNil(t, spec.Bathrooms)
	assert.Equal(t, 2.5, *spec.Bathrooms)
	assert.Equal(t, []string{"House", "Condo"}, spec.PropertyTypes)
	assert.Equal(t, "Austin", spec.Location)
}

func TestBuildFilterSpecEmptyQuery(t *testing.T) {
	v := NewFilterValidator()
	spec := v.BuildFilterSpec(url.Values{})
	assert.True(t, spec.IsEmpty())
}

func TestBuildFilterSpecMalformedNumbersBecomeAbsent(t *testing.T) {
	v := NewFilterValidator()
	values := url.Values{
		"priceMin":  {"abc"},
		"priceMax":  {""},
		"bedrooms":  {"2.5"},
		"bathrooms": {"two"},
	}

	spec := v.BuildFilterSpec(values)

	assert.Nil(t, spec.PriceMin)
	assert.Nil(t, spec.PriceMax)
	assert.Nil(t, spec.Bedrooms)
	assert.Nil(t, spec.Bathrooms)
	assert.True(t, spec.IsEmpty())
}

func TestBuildFilterSpecNegativeBoundsDropped(t *testing.T) {
	v := NewFilterValidator()
	values := url.Values{
		"priceMin": {"-100"},
		"bedrooms": {"-2"},
	}

	spec := v.BuildFilterSpec(values)

	assert.Nil(t, spec.PriceMin)
	assert.Nil(t, spec.Bedrooms)
}

func TestBuildFilterSpecPropertyTypesTrimmed(t *testing.T) {
	v := NewFilterValidator()
	values := url.Values{
		"propertyTypes": {" House , , Townhouse ", "Condo"},
	}

	spec := v.BuildFilterSpec(values)
	assert.Equal(t, []string{"House", "Townhouse", "Condo"}, spec.PropertyTypes)
}
