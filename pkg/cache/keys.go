package cache

import (
	"fmt"
	"sort"
	"strings"

	"homescout-listings/internal/models"
)

// cache key for a specific property.
func PropertyKey(id int) string {
	return fmt.Sprintf("property:%d", id)
}

// ListingQueryKey builds a deterministic cache key for a filter/sort
// combination. Equivalent specs produce identical keys; absent fields are
// omitted so an empty spec shares a key with a nil one.
func ListingQueryKey(filter *models.FilterSpec, key models.SortKey) string {
	parts := []string{"listings:query"}
	if filter != nil {
		if filter.PriceMin != nil {
			parts = append(parts, fmt.Sprintf("pmin:%g", *filter.PriceMin))
		}
		if filter.PriceMax != nil {
			parts = append(parts, fmt.Sprintf("pmax:%g", *filter.PriceMax))
		}
		if filter.Bedrooms != nil {
			parts = append(parts, fmt.Sprintf("beds:%d", *filter.Bedrooms))
		}
		if filter.Bathrooms != nil {
			parts = append(parts, fmt.Sprintf("baths:%g", *filter.Bathrooms))
		}
		if len(filter.PropertyTypes) > 0 {
			types := make([]string, len(filter.PropertyTypes))
			for i, t := range filter.PropertyTypes {
				types[i] = strings.ToLower(t)
			}
			sort.Strings(types)
			parts = append(parts, "types:"+strings.Join(types, ","))
		}
		if loc := strings.ToLower(strings.TrimSpace(filter.Location)); loc != "" {
			parts = append(parts, "loc:"+loc)
		}
	}
	parts = append(parts, "sort:"+string(key))
	return strings.Join(parts, ":")
}

// cache key for location suggestions on a normalized query.
func SuggestionKey(normalizedQuery string) string {
	return fmt.Sprintf("suggestions:%s", normalizedQuery)
}

// cache key for the saved-property list.
func SavedListKey() string {
	return "saved:list"
}
