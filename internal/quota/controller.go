// Wraps remote query calls with retry-on-transient, daily-budget accounting
// and a distinguished hard-stop signal for the per-day cap.

package quota

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Controller owns the shared remaining-budget counter and the retry policy.
// It is safe for concurrent use by all scheduler workers.
type Controller struct {
	remaining atomic.Int64
	spent     atomic.Int64

	// test seams; nil means real time and real randomness
	sleep  func(context.Context, time.Duration)
	jitter func() time.Duration
}

// NewController creates a controller with the given remaining daily budget.
func NewController(budget int) *Controller {
	c := &Controller{
		sleep:  sleepContext,
		jitter: defaultJitter,
	}
	if budget < 0 {
		budget = 0
	}
	c.remaining.Store(int64(budget))
	return c
}

// Remaining reports the budget left. The counter is a soft cap: a racy
// double-spend of one or two is tolerable, going permanently negative or
// sticking above zero after exhaustion is not.
func (c *Controller) Remaining() int {
	n := c.remaining.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Spent reports how many calls succeeded. Unlike Remaining it is unaffected
// by Exhaust, so it is what the persisted quota ledger records.
func (c *Controller) Spent() int {
	return int(c.spent.Load())
}

// Exhaust forces the budget to zero. Used to fan the daily-quota stop out to
// every worker, not just the one that observed the signal.
func (c *Controller) Exhaust() {
	c.remaining.Store(0)
}

// sleepContext waits out the delay but returns as soon as the context is
// cancelled, so a shutdown never blocks on a 30s backoff.
func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (c *Controller) spend() {
	c.spent.Add(1)
	if c.remaining.Add(-1) < 0 {
		c.remaining.Store(0)
	}
}

// Execute runs one remote call under the retry policy. Transient failures are
// retried with exponential backoff up to the attempt ceiling, the daily-quota
// signal and auth errors propagate immediately, and every successful call
// spends exactly one unit of budget regardless of how many items it returned.
func (c *Controller) Execute(ctx context.Context, call func(context.Context) error) error {
	m := &retryMachine{}
	for {
		err := call(ctx)
		switch m.next(err) {
		case Succeeded:
			c.spend()
			return nil
		case FailedQuota:
			c.Exhaust()
			return ErrDailyQuota
		case FailedFatal:
			return err
		case FailedRecoverable:
			return err
		case Backoff:
			delay := BackoffDelay(m.attempt, c.jitter)
			log.Printf("⚠️ %v — retrying in %s (attempt %d)", err, delay.Round(time.Second), m.attempt)
			c.sleep(ctx, delay)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
