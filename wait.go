package vsts

import (
	"context"
	"time"
)

// ExistenceProbe reports whether the awaited resource currently exists.
// Returning an error aborts the poll immediately.
type ExistenceProbe func(ctx context.Context) (bool, error)

// WaitFor polls probe at a fixed interval until its result matches
// wantPresent, the attempt budget runs out, or ctx is cancelled. condition
// names what is being awaited, for logs and the timeout error.
//
// The service applies most effects asynchronously, so the delay comes before
// every probe, the first one included: probing immediately after the
// triggering call would only observe stale state.
//
// The budget counts retries after the initial probe. With WithMaxAttempts(n)
// the probe runs at most n+1 times before a *TimeoutError (matching
// ErrWaitTimeout) is returned. A finished poll is never resumed; start a new
// WaitFor to keep waiting.
func (c *Client) WaitFor(ctx context.Context, condition string, wantPresent bool, probe ExistenceProbe, opts ...WaitOption) error {
	cfg := &waitConfig{
		pollInterval: defaultPollInterval,
		maxAttempts:  defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	attempts := 0
	for {
		if err := sleep(ctx, cfg.pollInterval); err != nil {
			return err
		}

		present, err := probe(ctx)
		if err != nil {
			return err
		}

		c.logger.Debug("polled condition",
			"condition", condition, "present", present, "want", wantPresent, "attempt", attempts+1)

		if present == wantPresent {
			return nil
		}

		attempts++
		if attempts > cfg.maxAttempts {
			return &TimeoutError{
				Condition: condition,
				Attempts:  attempts,
				Interval:  cfg.pollInterval,
			}
		}
	}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
