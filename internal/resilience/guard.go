// Package resilience wraps external service calls with bounded retry and a
// consecutive-failure circuit breaker.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/sethvargo/go-retry"
)

// ServiceName labels errors raised by the guard itself.
const ServiceName = "guard"

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit open: too many consecutive service failures")

// Policy configures a Guard. MaxAttempts of 1 disables retrying and a
// BreakerThreshold of 0 disables the breaker.
type Policy struct {
	MaxAttempts      int
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// NoRetry performs every call exactly once.
var NoRetry = Policy{MaxAttempts: 1}

// Guard runs operations under a Policy. It is safe for concurrent use.
type Guard struct {
	policy Policy
	logger logger.Logger
	now    func() time.Time

	mu        sync.Mutex
	failures  int
	openUntil time.Time
}

// NewGuard creates a Guard for policy.
func NewGuard(policy Policy, log logger.Logger) *Guard {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.InitialBackoff <= 0 {
		policy.InitialBackoff = time.Second
	}
	if policy.MaxBackoff < policy.InitialBackoff {
		policy.MaxBackoff = policy.InitialBackoff
	}
	return &Guard{policy: policy, logger: log, now: time.Now}
}

// Do runs fn, retrying errors that models.IsRetryable accepts. Non-retryable
// errors and context cancellation are returned immediately.
func (g *Guard) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if err := g.allow(); err != nil {
		return &models.ServiceError{Service: ServiceName, Op: op, Err: err}
	}

	attempt := 0
	err := retry.Do(ctx, g.backoff(), func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if models.IsRetryable(err) && attempt < g.policy.MaxAttempts {
			g.logger.Warn(ctx, "%s failed (attempt %d/%d), retrying: %v", op, attempt, g.policy.MaxAttempts, err)
			return retry.RetryableError(err)
		}
		return err
	})

	g.record(err)
	return err
}

func (g *Guard) backoff() retry.Backoff {
	b := retry.NewExponential(g.policy.InitialBackoff)
	b = retry.WithJitterPercent(10, b)
	b = retry.WithCappedDuration(g.policy.MaxBackoff, b)
	return retry.WithMaxRetries(uint64(g.policy.MaxAttempts-1), b)
}

func (g *Guard) allow() error {
	if g.policy.BreakerThreshold <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failures >= g.policy.BreakerThreshold {
		if g.now().Before(g.openUntil) {
			return ErrCircuitOpen
		}
		// half-open: let one call through, a failure reopens immediately
		g.failures = g.policy.BreakerThreshold - 1
	}
	return nil
}

func (g *Guard) record(err error) {
	if g.policy.BreakerThreshold <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err == nil {
		g.failures = 0
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	g.failures++
	if g.failures >= g.policy.BreakerThreshold {
		g.openUntil = g.now().Add(g.policy.BreakerCooldown)
	}
}
