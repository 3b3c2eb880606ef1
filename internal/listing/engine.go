// Package listing implements the listing query engine: pure filtering and
// sorting over an in-memory collection of property records, plus location
// suggestions. Both the browse view and the map view consume it, and the
// repositories may pre-filter server-side, so the rules here are the single
// source of truth for what a filter means.
package listing

import (
	"sort"
	"strings"

	"homescout-listings/internal/models"
)

// Query returns the ordered subset of properties matching the filter. The
// input slice is never mutated; ties keep their original insertion order.
// A nil or empty filter matches every record.
func Query(properties []models.Property, filter *models.FilterSpec, key models.SortKey) []models.Property {
	result := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if Matches(&p, filter) {
			result = append(result, p)
		}
	}
	sortProperties(result, key)
	return result
}

// Matches reports whether a single record satisfies every present
// constraint. Absent fields never exclude anything.
func Matches(p *models.Property, filter *models.FilterSpec) bool {
	if filter == nil {
		return true
	}
	if filter.PriceMin != nil && p.Price < *filter.PriceMin {
		return false
	}
	if filter.PriceMax != nil && p.Price > *filter.PriceMax {
		return false
	}
	if filter.Bedrooms != nil && p.Bedrooms < *filter.Bedrooms {
		return false
	}
	if filter.Bathrooms != nil && p.Bathrooms < *filter.Bathrooms {
		return false
	}
	if len(filter.PropertyTypes) > 0 && !containsFold(filter.PropertyTypes, p.PropertyType) {
		return false
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" && !MatchesLocation(p, loc) {
		return false
	}
	return true
}

// MatchesLocation applies the case-insensitive substring rule across city,
// state, zip code and street.
func MatchesLocation(p *models.Property, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Address.City), q) ||
		strings.Contains(strings.ToLower(p.Address.State), q) ||
		strings.Contains(strings.ToLower(p.Address.ZipCode), q) ||
		strings.Contains(strings.ToLower(p.Address.Street), q)
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func sortProperties(properties []models.Property, key models.SortKey) {
	switch key {
	case models.SortOldest:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].ListingDate.Before(properties[j].ListingDate)
		})
	case models.SortPriceLow:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price < properties[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price > properties[j].Price
		})
	case models.SortSquareFeet:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].SquareFeet > properties[j].SquareFeet
		})
	default: // newest
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].ListingDate.After(properties[j].ListingDate)
		})
	}
}
