package validators

import (
	"net/url"

	"homescout-listings/internal/models"
)

// FilterValidator coerces raw query values into a FilterSpec. Malformed
// numeric input is treated as absent, never as an error.
type FilterValidator interface {
	BuildFilterSpec(values url.Values) *models.FilterSpec
}

// LoanValidator normalizes raw loan input before calculation.
type LoanValidator interface {
	NormalizeLoanInput(in models.LoanInput) models.LoanInput
}
