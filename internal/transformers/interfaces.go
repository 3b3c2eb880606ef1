package transformers

import "homescout-listings/internal/models"

// RecordTransformer maps a raw table-API record onto a Property.
type RecordTransformer interface {
	TransformRecord(record map[string]interface{}) (*models.Property, error)
}

// AddressTransformer derives and normalizes address display strings.
type AddressTransformer interface {
	FullAddress(addr models.Address) string
	NormalizeLocationQuery(query string) string
}
