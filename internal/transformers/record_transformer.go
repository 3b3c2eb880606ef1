package transformers

import (
	"fmt"
	"strings"
	"time"

	"homescout-listings/internal/models"
)

type recordTransformer struct {
	addr AddressTransformer
}

func NewRecordTransformer() RecordTransformer {
	return &recordTransformer{addr: NewAddressTransformer()}
}

// TransformRecord maps a hosted table-API record (the backing table uses
// "_c" suffixed column names) onto a Property. Missing or mistyped fields
// default to zero values; only a missing record ID is an error, because the
// ID is the one field nothing downstream can tolerate losing.
func (t *recordTransformer) TransformRecord(record map[string]interface{}) (*models.Property, error) {
	id := getInt(record, "Id")
	if id == 0 {
		return nil, fmt.Errorf("record has no Id field")
	}

	property := &models.Property{
		ID:           id,
		Title:        getString(record, "title_c"),
		Description:  getString(record, "description_c"),
		Price:        getFloat64(record, "price_c"),
		Bedrooms:     getInt(record, "bedrooms_c"),
		Bathrooms:    getFloat64(record, "bathrooms_c"),
		SquareFeet:   getInt(record, "square_feet_c"),
		PropertyType: getString(record, "property_type_c"),
		Images:       splitList(getString(record, "images_c")),
		Features:     splitList(getString(record, "features_c")),
		Address: models.Address{
			Street:  getString(record, "street_c"),
			City:    getString(record, "city_c"),
			State:   getString(record, "state_c"),
			ZipCode: getString(record, "zip_code_c"),
			Full:    getString(record, "full_c"),
		},
		Coordinates: models.Coordinates{
			Lat: getFloat64(record, "lat_c"),
			Lng: getFloat64(record, "lng_c"),
		},
	}

	if property.Title == "" {
		property.Title = getString(record, "Name")
	}
	if property.Address.Full == "" {
		property.Address.Full = t.addr.FullAddress(property.Address)
	}

	if raw := getString(record, "listing_date_c"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			property.ListingDate = ts
		}
	}
	if property.ListingDate.IsZero() {
		property.ListingDate = time.Now().UTC()
	}

	return property, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// Helper functions to safely extract values
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", val)
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return 0
}

func getFloat64(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}
