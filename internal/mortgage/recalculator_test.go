package mortgage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescout-listings/internal/models"
)

type resultRecorder struct {
	mu      sync.Mutex
	results []models.LoanResult
}

func (r *resultRecorder) apply(result models.LoanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *resultRecorder) snapshot() []models.LoanResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LoanResult, len(r.results))
	copy(out, r.results)
	return out
}

func TestRecalculatorDeliversResult(t *testing.T) {
	rc := NewRecalculator(10 * time.Millisecond)
	rec := &resultRecorder{}

	done := make(chan struct{})
	rc.Request(models.LoanInput{
		HomePrice:     300000,
		DownPayment:   60000,
		InterestRate:  6.5,
		LoanTermYears: 30,
	}, func(result models.LoanResult) {
		rec.apply(result)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recalculation never delivered")
	}

	results := rec.snapshot()
	require.Len(t, results, 1)
	assert.InDelta(t, 1516.96, results[0].MonthlyPayment, 1.0)
}

func TestRecalculatorLastRequestWins(t *testing.T) {
	rc := NewRecalculator(20 * time.Millisecond)
	rec := &resultRecorder{}

	stale := models.LoanInput{HomePrice: 100000, InterestRate: 6.5, LoanTermYears: 30}
	fresh := models.LoanInput{HomePrice: 900000, InterestRate: 6.5, LoanTermYears: 30}

	done := make(chan struct{})
	rc.Request(stale, rec.apply)
	rc.Request(fresh, func(result models.LoanResult) {
		rec.apply(result)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recalculation never delivered")
	}

	results := rec.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, 900000.0, results[0].TotalLoanAmount)
}

func TestRecalculatorZeroPacing(t *testing.T) {
	rc := NewRecalculator(0)
	rec := &resultRecorder{}

	done := make(chan struct{})
	rc.Request(models.LoanInput{HomePrice: 100000, InterestRate: 5, LoanTermYears: 15}, func(result models.LoanResult) {
		rec.apply(result)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recalculation never delivered")
	}
	assert.Len(t, rec.snapshot(), 1)
}
