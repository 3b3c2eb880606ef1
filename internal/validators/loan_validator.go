package validators

import (
	"homescout-listings/internal/models"
	"homescout-listings/internal/mortgage"
)

type loanValidator struct{}

func NewLoanValidator() LoanValidator {
	return &loanValidator{}
}

// NormalizeLoanInput cleans a raw loan payload: negative figures become
// zero, unsupported terms fall back to the default, and the down-payment
// duality is reconciled according to the input mode. The calculator itself
// never rejects a value; it degrades to the zero result instead.
func (v *loanValidator) NormalizeLoanInput(in models.LoanInput) models.LoanInput {
	if in.HomePrice < 0 {
		in.HomePrice = 0
	}
	if in.DownPayment < 0 {
		in.DownPayment = 0
	}
	if in.DownPaymentPercent < 0 {
		in.DownPaymentPercent = 0
	}
	if in.InterestRate < 0 {
		in.InterestRate = 0
	}
	return mortgage.NormalizeInput(in)
}
