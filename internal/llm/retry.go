package llm

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryConfig controls the transport-level retry decorator. This layer only
// retries transient failures (rate limits, provider outages); semantically
// bad output is handed back to the generation loop, which owns its own
// retry budget.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig returns the retry policy used in production.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// RetryProvider is a decorator that retries transient failures with
// exponential backoff and jitter.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
	sleep func(context.Context, time.Duration) error // overridable in tests
}

// WithRetry wraps a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg, sleep: sleepContext}
}

// sleepContext waits for the delay or until the context is cancelled,
// whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := r.sleep(ctx, r.backoff(attempt, lastErr)); err != nil {
				return nil, err
			}
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// backoff computes the delay before the given attempt. A rate-limit error
// with a server-supplied Retry-After wins over the exponential schedule.
func (r *RetryProvider) backoff(attempt int, lastErr error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(lastErr, &rl) && rl.RetryAfter > 0 {
		return time.Duration(rl.RetryAfter) * time.Second
	}

	delay := r.cfg.BaseDelay * time.Duration(1<<(attempt-1))
	if delay > r.cfg.MaxDelay {
		delay = r.cfg.MaxDelay
	}
	// full jitter
	return time.Duration(rand.Int63n(int64(delay) + 1))
}

func retryable(err error) bool {
	var rl *ErrRateLimit
	var pu *ErrProviderUnavailable
	return errors.As(err, &rl) || errors.As(err, &pu)
}
