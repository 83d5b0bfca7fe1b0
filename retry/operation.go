// Package retry provides bounded retrying of fallible operations with
// pluggable backoff strategies. RPC reads, receipt polling and dialing all
// route through Do so that transient node failures do not surface to callers.
package retry

import (
	"context"
	"fmt"
	"time"
)

// ErrFailedPermanently is an error raised by Do when the number of retries
// is exhausted without a successful attempt.
type ErrFailedPermanently struct {
	attempts int
	LastErr  error
}

func (e *ErrFailedPermanently) Error() string {
	return fmt.Sprintf("operation failed permanently after %d attempts: %v", e.attempts, e.LastErr)
}

func (e *ErrFailedPermanently) Unwrap() error {
	return e.LastErr
}

// Do performs the provided function up to maxAttempts times, with delays in
// between each retry according to the provided Strategy. The operation is
// aborted as soon as ctx is done, returning the context error.
func Do[T any](ctx context.Context, maxAttempts int, strategy Strategy, op func() (T, error)) (T, error) {
	var empty, ret T
	var err error
	if maxAttempts < 1 {
		return empty, fmt.Errorf("need at least 1 attempt to run op, but have %d max attempts", maxAttempts)
	}

	for i := 0; i < maxAttempts; i++ {
		if ctx.Err() != nil {
			return empty, ctx.Err()
		}
		ret, err = op()
		if err == nil {
			return ret, nil
		}

		if i != maxAttempts-1 {
			timer := time.NewTimer(strategy.Duration(i))
			select {
			case <-ctx.Done():
				timer.Stop()
				return empty, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return empty, &ErrFailedPermanently{
		attempts: maxAttempts,
		LastErr:  err,
	}
}

// Do0 is for operations that only return an error.
func Do0(ctx context.Context, maxAttempts int, strategy Strategy, op func() error) error {
	f := func() (struct{}, error) {
		return struct{}{}, op()
	}
	_, err := Do(ctx, maxAttempts, strategy, f)
	return err
}
