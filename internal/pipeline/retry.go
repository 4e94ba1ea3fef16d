package pipeline

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// RetryConfig defines the backoff used when fetching a remote source
type RetryConfig struct {
	MaxAttempts       int           `json:"max_attempts"`
	InitialDelay      time.Duration `json:"initial_delay"`
	MaxDelay          time.Duration `json:"max_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`
}

// DefaultRetryConfig is the ingestion retry policy
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:       3,
	InitialDelay:      500 * time.Millisecond,
	MaxDelay:          5 * time.Second,
	BackoffMultiplier: 2.0,
}

// permanentError stops the retry loop
type permanentError struct{ err error }

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// permanent marks err as not worth retrying
func permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// delay returns the wait before the given retry (1-based)
func (c RetryConfig) delay(retry int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.BackoffMultiplier, float64(retry-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		return c.MaxDelay
	}
	return time.Duration(d)
}

// withRetry runs op until it succeeds, returns a permanent error, the
// attempts run out or ctx is done.
func withRetry(ctx context.Context, cfg RetryConfig, name string, op func() error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if attempt == attempts {
			break
		}

		wait := cfg.delay(attempt)
		log.Warn().Err(err).Str("operation", name).Int("attempt", attempt).Dur("retry_in", wait).Msg("🔁 Retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}
