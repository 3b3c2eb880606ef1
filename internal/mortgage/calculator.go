// Package mortgage implements the amortization calculator and the loan
// input session that keeps the two down-payment representations consistent.
package mortgage

import (
	"math"

	"homescout-listings/internal/models"
)

// Default loan parameters applied on reset.
const (
	DefaultDownPaymentPercent = 20.0
	DefaultInterestRate       = 6.5
	DefaultLoanTermYears      = 30
)

// LoanTermOptions are the supported terms in years.
var LoanTermOptions = []int{15, 20, 25, 30}

// ValidTerm reports whether years is a supported loan term.
func ValidTerm(years int) bool {
	for _, t := range LoanTermOptions {
		if t == years {
			return true
		}
	}
	return false
}

// Calculate derives the monthly payment, its principal/interest split and
// loan totals from the input. Principal <= 0 (fully paid in cash or invalid
// input) is a defined all-zero result, not an error. A 0% rate uses
// straight-line division instead of the closed-form formula.
func Calculate(in models.LoanInput) models.LoanResult {
	principal := in.HomePrice - in.DownPayment
	if principal <= 0 {
		return models.LoanResult{}
	}

	termYears := in.LoanTermYears
	if !ValidTerm(termYears) {
		termYears = DefaultLoanTermYears
	}
	monthlyRate := in.InterestRate / 100 / 12
	numPayments := float64(termYears * 12)

	var monthlyPayment float64
	if monthlyRate > 0 {
		growth := math.Pow(1+monthlyRate, numPayments)
		monthlyPayment = principal * (monthlyRate * growth) / (growth - 1)
	} else {
		monthlyPayment = principal / numPayments
	}

	totalPaid := monthlyPayment * numPayments
	monthlyInterest := principal * monthlyRate

	return models.LoanResult{
		MonthlyPayment:   monthlyPayment,
		MonthlyPrincipal: monthlyPayment - monthlyInterest,
		MonthlyInterest:  monthlyInterest,
		TotalLoanAmount:  principal,
		TotalInterest:    totalPaid - principal,
	}
}
