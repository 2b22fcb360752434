package retry

import (
	"context"
	"log/slog"
	"time"
)

// Executor reruns a fallible operation with exponential backoff:
// BaseDelay * 2^attempt between tries, no jitter. On exhaustion the
// last error is returned unmodified so callers can still distinguish
// transient faults from terminal ones by type.
type Executor struct {
	MaxAttempts int
	BaseDelay   time.Duration

	sleep func(ctx context.Context, d time.Duration) bool
}

func NewExecutor(maxAttempts int, baseDelay time.Duration) *Executor {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &Executor{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		sleep:       sleepCtx,
	}
}

// Do runs fn up to MaxAttempts times. op names the operation in logs.
// A context canceled during a backoff wait stops further attempts; the
// last operation error is still the one returned.
func (e *Executor) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	sleep := e.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 0; attempt < e.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		slog.Warn("attempt failed",
			"op", op,
			"attempt", attempt+1,
			"max_attempts", e.MaxAttempts,
			"error", lastErr.Error(),
		)
		if attempt == e.MaxAttempts-1 {
			break
		}
		if !sleep(ctx, e.BaseDelay<<attempt) {
			slog.Warn("retry wait canceled", "op", op, "cause", ctx.Err())
			break
		}
	}
	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
