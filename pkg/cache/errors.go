package cache

import (
	"fmt"
)

// CacheError wraps a failed redis operation against the listing cache.
// Retryable marks transient failures (timeouts, broken connections) that a
// later read of the same key may survive; callers treat either kind as a
// miss and fall through to the Property Store.
type CacheError struct {
	Operation string
	Err       error
	Retryable bool
}

func NewCacheError(operation string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Err:       err,
		Retryable: retryable,
	}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache operation %s failed: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
