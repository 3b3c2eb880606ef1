package models

// FilterSpec narrows a listing collection. All fields are optional: a nil
// pointer (or empty slice/string) never excludes any record, so an empty
// spec matches everything. Constraints are combined with AND; the location
// substring matches city OR state OR zip OR street.
type FilterSpec struct {
	PriceMin      *float64 `json:"priceMin,omitempty"`
	PriceMax      *float64 `json:"priceMax,omitempty"`
	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *float64 `json:"bathrooms,omitempty"`
	PropertyTypes []string `json:"propertyTypes,omitempty"`
	Location      string   `json:"location,omitempty"`
}

// IsEmpty reports whether the spec applies no constraint at all.
func (f *FilterSpec) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.PriceMin == nil && f.PriceMax == nil &&
		f.Bedrooms == nil && f.Bathrooms == nil &&
		len(f.PropertyTypes) == 0 && f.Location == ""
}

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortSquareFeet SortKey = "sqft"
)

// ParseSortKey maps a raw sort parameter to a SortKey, falling back to
// newest for anything unrecognized.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortOldest, SortPriceLow, SortPriceHigh, SortSquareFeet:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// ListingsResponse is the browse payload returned to UI consumers.
type ListingsResponse struct {
	Data  []Property `json:"data"`
	Total int        `json:"total"`
}

// SuggestionsResponse carries location suggestions for a partial query.
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
