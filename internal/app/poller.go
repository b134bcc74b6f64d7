package app

import (
	"context"
	"log"
	"time"

	"github.com/voyago/voyago/internal/santsg"
	"github.com/voyago/voyago/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 60 * time.Second
)

// StartPoller launches a background goroutine that pings /health at a
// fixed cadence, slowing down exponentially while the API stays
// unreachable. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client *santsg.Client, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			check(ctx, store, client)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}
	}()
}

func check(ctx context.Context, store *state.Store, client *santsg.Client) {
	err := client.CheckHealth(ctx)
	store.Update(err)
	if err != nil && ctx.Err() == nil {
		log.Printf("health check failed: %v", err)
	}
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 10 {
		failures = 10
	}
	backoff := base << uint(failures)
	if backoff <= 0 || backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
