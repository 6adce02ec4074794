package quota

import (
	"errors"
	"math/rand"
	"time"
)

// RetryState enumerates the states of the retry machine so attempt counting
// and delay computation stay inspectable without touching the network.
type RetryState int

const (
	Attempting RetryState = iota
	Backoff
	FailedRecoverable
	FailedFatal
	FailedQuota
	Succeeded
)

const (
	maxAttempts  = 3
	baseDelay    = 1 * time.Second
	maxDelay     = 30 * time.Second
	jitterWindow = 500 * time.Millisecond
)

// BackoffDelay computes the delay before the given retry attempt (1-based):
// base doubling per attempt, capped at 30s, plus a small random jitter to
// avoid synchronized retries across workers.
func BackoffDelay(attempt int, jitter func() time.Duration) time.Duration {
	d := baseDelay << attempt
	if d > maxDelay || d <= 0 {
		d = maxDelay
	}
	if jitter != nil {
		d += jitter()
	}
	return d
}

func defaultJitter() time.Duration {
	return time.Duration(rand.Int63n(int64(jitterWindow)))
}

// retryMachine decides the next state after an attempt result.
type retryMachine struct {
	attempt int
}

// next classifies the outcome of one attempt. err == nil means success.
func (m *retryMachine) next(err error) RetryState {
	if err == nil {
		return Succeeded
	}
	if errors.Is(err, ErrDailyQuota) {
		return FailedQuota
	}
	if IsFatal(err) {
		return FailedFatal
	}
	if IsTransient(err) {
		if m.attempt < maxAttempts {
			m.attempt++
			return Backoff
		}
		return FailedRecoverable
	}
	// unknown errors are not worth retrying; skip the task
	return FailedRecoverable
}
