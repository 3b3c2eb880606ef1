package models

// InputMode selects which down-payment representation drives recomputation.
type InputMode string

const (
	InputModePercent InputMode = "percent"
	InputModeAmount  InputMode = "amount"
)

// LoanInput holds the editable mortgage parameters. DownPayment and
// DownPaymentPercent are two views of the same quantity; InputMode says
// which one the user last controlled.
type LoanInput struct {
	HomePrice          float64   `json:"homePrice"`
	DownPayment        float64   `json:"downPayment"`
	DownPaymentPercent float64   `json:"downPaymentPercent"`
	InterestRate       float64   `json:"interestRate"`
	LoanTermYears      int       `json:"loanTermYears"`
	InputMode          InputMode `json:"inputMode"`
}

// LoanResult is derived purely from LoanInput and is never persisted.
type LoanResult struct {
	MonthlyPayment   float64 `json:"monthlyPayment"`
	MonthlyPrincipal float64 `json:"monthlyPrincipal"`
	MonthlyInterest  float64 `json:"monthlyInterest"`
	TotalLoanAmount  float64 `json:"totalLoanAmount"`
	TotalInterest    float64 `json:"totalInterest"`
}

// IsZero reports whether the result is the all-zero degenerate output.
func (r LoanResult) IsZero() bool {
	return r.MonthlyPayment == 0 && r.MonthlyPrincipal == 0 &&
		r.MonthlyInterest == 0 && r.TotalLoanAmount == 0 && r.TotalInterest == 0
}
