package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applyRecorder struct {
	mu      sync.Mutex
	applied [][]string
}

func (r *applyRecorder) apply(result []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, result)
}

func (r *applyRecorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.applied))
	copy(out, r.applied)
	return out
}

func TestDebouncerAppliesAfterDelay(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	rec := &applyRecorder{}

	done := make(chan struct{})
	d.Do(func() []string { return []string{"Austin, TX"} }, func(result []string) {
		rec.apply(result)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced computation never applied")
	}
	require.Len(t, rec.snapshot(), 1)
	assert.Equal(t, []string{"Austin, TX"}, rec.snapshot()[0])
}

func TestDebouncerLastRequestWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	rec := &applyRecorder{}

	done := make(chan struct{})
	d.Do(func() []string { return []string{"stale"} }, rec.apply)
	d.Do(func() []string { return []string{"fresh"} }, func(result []string) {
		rec.apply(result)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced computation never applied")
	}

	applied := rec.snapshot()
	require.Len(t, applied, 1)
	assert.Equal(t, []string{"fresh"}, applied[0])
}

func TestDebouncerZeroDelayStillLastWriterWins(t *testing.T) {
	d := NewDebouncer(0)
	rec := &applyRecorder{}

	for i := 0; i < 5; i++ {
		d.Do(func() []string { return []string{"result"} }, rec.apply)
	}

	time.Sleep(50 * time.Millisecond)
	applied := rec.snapshot()
	assert.LessOrEqual(t, len(applied), 5)
	for _, r := range applied {
		assert.Equal(t, []string{"result"}, r)
	}
}

func TestDebouncerCancelDiscardsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	rec := &applyRecorder{}

	d.Do(func() []string { return []string{"pending"} }, rec.apply)
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
