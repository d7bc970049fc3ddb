package client

import (
	"math/rand"
	"time"
)

// Retry defaults.
const (
	// DefaultRetryInitial is the initial retry delay.
	DefaultRetryInitial = 500 * time.Millisecond

	// DefaultRetryMax is the maximum delay between attempts.
	DefaultRetryMax = 30 * time.Second

	// DefaultRetryMultiplier is the factor by which the delay grows.
	DefaultRetryMultiplier = 2.0

	// DefaultRetryJitter is the maximum jitter as a fraction of the delay.
	DefaultRetryJitter = 0.25

	// DefaultRetryAttempts is the number of tries per idempotent request.
	DefaultRetryAttempts = 4
)

// RetryConfig controls retries of idempotent requests.
type RetryConfig struct {
	// Attempts is the total number of tries; 1 disables retries.
	Attempts int

	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

// DefaultRetryConfig returns the default retry settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:   DefaultRetryAttempts,
		Initial:    DefaultRetryInitial,
		Max:        DefaultRetryMax,
		Multiplier: DefaultRetryMultiplier,
		Jitter:     DefaultRetryJitter,
	}
}

// backoff produces the delay sequence for one request's retries.
// It is not safe for concurrent use; each request gets its own.
type backoff struct {
	cfg     RetryConfig
	current time.Duration
	rng     *rand.Rand
}

func newBackoff(cfg RetryConfig) *backoff {
	if cfg.Initial <= 0 {
		cfg.Initial = DefaultRetryInitial
	}
	if cfg.Max <= 0 {
		cfg.Max = DefaultRetryMax
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = DefaultRetryMultiplier
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	return &backoff{
		cfg:     cfg,
		current: cfg.Initial,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// next returns the jittered delay before the next attempt and advances.
func (b *backoff) next() time.Duration {
	delay := b.current
	if b.cfg.Jitter > 0 {
		span := float64(delay) * b.cfg.Jitter
		delay += time.Duration((b.rng.Float64()*2 - 1) * span)
	}
	if delay < 0 {
		delay = 0
	}

	grown := time.Duration(float64(b.current) * b.cfg.Multiplier)
	if grown > b.cfg.Max {
		grown = b.cfg.Max
	}
	b.current = grown

	return delay
}
