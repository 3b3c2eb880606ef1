package transformers

import (
	"fmt"
	"strings"

	"homescout-listings/internal/models"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// FullAddress builds the display string "street, city, state zip" from the
// structured components, skipping whichever are empty.
func (t *addressTransformer) FullAddress(addr models.Address) string {
	var parts []string
	if addr.Street != "" {
		parts = append(parts, addr.Street)
	}
	if addr.City != "" {
		parts = append(parts, addr.City)
	}
	tail := strings.TrimSpace(fmt.Sprintf("%s %s", addr.State, addr.ZipCode))
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// NormalizeLocationQuery lowercases and trims a free-text location query so
// equivalent queries share one cache key.
func (t *addressTransformer) NormalizeLocationQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
