package mortgage

import (
	"sync"
	"time"

	"homescout-listings/internal/models"
)

// DefaultPacing is the recompute delay used to smooth perceived UI
// responsiveness. It is not a correctness requirement; zero is valid.
const DefaultPacing = 300 * time.Millisecond

// Recalculator decouples calculation from input events with a fixed pacing
// delay. Each request carries a sequence number; a result is applied only
// if it belongs to the latest request issued, so superseded recomputes are
// discarded rather than interrupted.
type Recalculator struct {
	mu     sync.Mutex
	pacing time.Duration
	seq    uint64
}

// NewRecalculator creates a recalculator with the given pacing delay.
func NewRecalculator(pacing time.Duration) *Recalculator {
	return &Recalculator{pacing: pacing}
}

// Request schedules a calculation over the input snapshot and delivers the
// result to apply unless a newer request supersedes it first.
func (r *Recalculator) Request(in models.LoanInput, apply func(models.LoanResult)) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	time.AfterFunc(r.pacing, func() {
		result := Calculate(in)
		r.mu.Lock()
		latest := r.seq == seq
		r.mu.Unlock()
		if latest {
			apply(result)
		}
	})
}
