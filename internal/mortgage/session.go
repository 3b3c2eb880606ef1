package mortgage

import "homescout-listings/internal/models"

// Session holds the editable loan parameters for one property. Only the
// representation selected by the input mode is stored as authoritative; the
// other is derived on read, so the two views cannot drift apart. The
// invariant downPayment == homePrice * percent / 100 holds after every
// setter, regardless of which side was edited last.
type Session struct {
	homePrice    float64
	interestRate float64
	termYears    int
	mode         models.InputMode

	// Authoritative down-payment value for the current mode: percent when
	// mode is percent, amount when mode is amount.
	percent float64
	amount  float64
}

// NewSession seeds a session from a property price with the default loan
// parameters.
func NewSession(propertyPrice float64) *Session {
	s := &Session{}
	s.Reset(propertyPrice)
	return s
}

// Reset restores the defaults: the property price (or 0), a 20% down
// payment, 6.5% interest and a 30 year term, driven by percent mode.
func (s *Session) Reset(propertyPrice float64) {
	s.homePrice = propertyPrice
	s.interestRate = DefaultInterestRate
	s.termYears = DefaultLoanTermYears
	s.mode = models.InputModePercent
	s.percent = DefaultDownPaymentPercent
	s.amount = 0
}

// HomePrice returns the current home price.
func (s *Session) HomePrice() float64 { return s.homePrice }

// Mode returns the current input mode.
func (s *Session) Mode() models.InputMode { return s.mode }

// DownPayment returns the down payment amount. In percent mode it is
// derived from the percent view.
func (s *Session) DownPayment() float64 {
	if s.mode == models.InputModePercent {
		return s.homePrice * s.percent / 100
	}
	return s.amount
}

// DownPaymentPercent returns the down payment as a percentage of the home
// price. In amount mode it is derived, with 0 for a zero home price.
func (s *Session) DownPaymentPercent() float64 {
	if s.mode == models.InputModePercent {
		return s.percent
	}
	if s.homePrice == 0 {
		return 0
	}
	return s.amount / s.homePrice * 100
}

// SetHomePrice updates the price. The driving down-payment representation
// is untouched; the derived one follows automatically.
func (s *Session) SetHomePrice(price float64) { s.homePrice = price }

// SetDownPayment sets the amount view. It only drives recomputation while
// in amount mode.
func (s *Session) SetDownPayment(amount float64) { s.amount = amount }

// SetDownPaymentPercent sets the percent view. It only drives recomputation
// while in percent mode.
func (s *Session) SetDownPaymentPercent(percent float64) { s.percent = percent }

// SetInterestRate updates the annual rate. Values outside the UI range are
// accepted; the calculator never hard-fails on them.
func (s *Session) SetInterestRate(rate float64) { s.interestRate = rate }

// SetLoanTermYears updates the term, normalizing unsupported values to the
// default.
func (s *Session) SetLoanTermYears(years int) {
	if !ValidTerm(years) {
		years = DefaultLoanTermYears
	}
	s.termYears = years
}

// SetMode switches which representation drives future edits. The switch
// itself changes neither value: both views are materialized from the
// current state before the authoritative side flips.
func (s *Session) SetMode(mode models.InputMode) {
	if mode == s.mode {
		return
	}
	s.amount = s.DownPayment()
	s.percent = s.DownPaymentPercent()
	s.mode = mode
}

// Input snapshots the session as a LoanInput with both down-payment views
// populated and consistent.
func (s *Session) Input() models.LoanInput {
	return models.LoanInput{
		HomePrice:          s.homePrice,
		DownPayment:        s.DownPayment(),
		DownPaymentPercent: s.DownPaymentPercent(),
		InterestRate:       s.interestRate,
		LoanTermYears:      s.termYears,
		InputMode:          s.mode,
	}
}

// Calculate runs the amortization formula over the session snapshot.
func (s *Session) Calculate() models.LoanResult {
	return Calculate(s.Input())
}

// NormalizeInput reconciles a raw LoanInput the way a session would: the
// representation named by InputMode drives, the other is recomputed from
// it. An unset mode defaults to percent.
func NormalizeInput(in models.LoanInput) models.LoanInput {
	switch in.InputMode {
	case models.InputModeAmount:
		if in.HomePrice > 0 {
			in.DownPaymentPercent = in.DownPayment / in.HomePrice * 100
		} else {
			in.DownPaymentPercent = 0
		}
	default:
		in.InputMode = models.InputModePercent
		in.DownPayment = in.HomePrice * in.DownPaymentPercent / 100
	}
	if !ValidTerm(in.LoanTermYears) {
		in.LoanTermYears = DefaultLoanTermYears
	}
	return in
}
