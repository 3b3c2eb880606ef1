package validators

import (
	"net/url"
	"strings"

	"homescout-listings/internal/models"
	"homescout-listings/internal/utils"
)

type filterValidator struct{}

func NewFilterValidator() FilterValidator {
	return &filterValidator{}
}

// BuildFilterSpec parses the browse query parameters. Empty strings and
// unparseable numbers leave the corresponding constraint absent, so a bad
// field degrades to "no filter" instead of failing the request.
func (v *filterValidator) BuildFilterSpec(values url.Values) *models.FilterSpec {
	spec := &models.FilterSpec{
		PriceMin:  utils.ParseOptionalFloat(values.Get("priceMin")),
		PriceMax:  utils.ParseOptionalFloat(values.Get("priceMax")),
		Bedrooms:  utils.ParseOptionalInt(values.Get("bedrooms")),
		Bathrooms: utils.ParseOptionalFloat(values.Get("bathrooms")),
		Location:  strings.TrimSpace(values.Get("location")),
	}

	for _, raw := range values["propertyTypes"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				spec.PropertyTypes = append(spec.PropertyTypes, t)
			}
		}
	}

	// Negative bounds make no sense for listings; drop them like any other
	// malformed value.
	if spec.PriceMin != nil && *spec.PriceMin < 0 {
		spec.PriceMin = nil
	}
	if spec.PriceMax != nil && *spec.PriceMax < 0 {
		spec.PriceMax = nil
	}
	if spec.Bedrooms != nil && *spec.Bedrooms < 0 {
		spec.Bedrooms = nil
	}
	if spec.Bathrooms != nil && *spec.Bathrooms < 0 {
		spec.Bathrooms = nil
	}

	return spec
}
