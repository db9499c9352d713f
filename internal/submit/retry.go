package submit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy controls how often an upload is attempted.
type RetryPolicy struct {
	Attempts   int
	Delay      time.Duration
	MaxDelay   time.Duration
	Multiplier float64
}

// DefaultRetryPolicy tries an upload three times with exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:   3,
		Delay:      500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
	}
}

// permanentError marks an error that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// permanentCause returns the error wrapped by permanent, or nil.
func permanentCause(err error) error {
	var p *permanentError
	if errors.As(err, &p) {
		return p.err
	}
	return nil
}

// do runs op until it succeeds, fails permanently, or attempts run out.
func (p RetryPolicy) do(ctx context.Context, op func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if cause := permanentCause(err); cause != nil {
			return cause
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("upload cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(delay):
		}
		if p.Multiplier > 1 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("upload failed after %d attempts: %w", attempts, lastErr)
}
