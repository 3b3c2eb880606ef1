package services

import (
	"time"

	"homescout-listings/internal/models"
	"homescout-listings/internal/mortgage"
	"homescout-listings/internal/validators"
	"homescout-listings/pkg/metrics"
)

// MortgageService fronts the amortization calculator. Raw payloads are
// normalized (malformed figures become zero, the down-payment duality is
// reconciled by input mode) before the formula runs; no input is ever
// rejected.
type MortgageService struct {
	validator validators.LoanValidator
	recalc    *mortgage.Recalculator
}

func NewMortgageService(validator validators.LoanValidator, pacing time.Duration) *MortgageService {
	return &MortgageService{
		validator: validator,
		recalc:    mortgage.NewRecalculator(pacing),
	}
}

// Calculate normalizes the input and runs the amortization formula. The
// returned input echoes the reconciled values so the UI can display both
// down-payment views.
func (s *MortgageService) Calculate(in models.LoanInput) (models.LoanInput, models.LoanResult) {
	metrics.MortgageCalculationsTotal.Inc()
	normalized := s.validator.NormalizeLoanInput(in)
	return normalized, mortgage.Calculate(normalized)
}

// CalculateAsync schedules a paced recalculation for interactive consumers.
// Bursts of requests collapse to the latest one; apply never runs for a
// superseded input.
func (s *MortgageService) CalculateAsync(in models.LoanInput, apply func(models.LoanResult)) {
	metrics.MortgageCalculationsTotal.Inc()
	s.recalc.Request(s.validator.NormalizeLoanInput(in), apply)
}
