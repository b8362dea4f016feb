package registry

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"forbidden-domains/internal/domain"
)

type Fetcher interface {
	FetchRegistry(ctx context.Context) (*domain.Registry, error)
}

type Config struct {
	Interval       time.Duration // refresh interval; <= 0 stops after the first successful load
	InitialBackoff time.Duration // initial backoff delay
	MaxBackoff     time.Duration // maximum backoff delay
	FetchTimeout   time.Duration // per-attempt limit

	// OnUpdate, when set, is called after every published snapshot.
	OnUpdate func(reg *domain.Registry)
}

// Start loads the blocklist and keeps refreshing it until the context stops.
// A failed refresh keeps serving the previous snapshot and is retried with
// exponential backoff.
func Start(ctx context.Context, cfg Config, src Fetcher, holder *Holder) error {
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 30 * time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Minute
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 2 * time.Minute
	}

	var consecutiveFailures int

	// The first update runs immediately on startup. A failure is retried
	// after the backoff; the regular interval resumes once a fetch succeeds.
	for {
		var wait time.Duration

		if err := updateOnce(ctx, cfg, src, holder); err != nil {
			consecutiveFailures++
			wait = calcBackoff(cfg.InitialBackoff, cfg.MaxBackoff, consecutiveFailures)

			log.Printf("registry: update failed (attempt #%d), retry in %s: %v",
				consecutiveFailures, wait, err)
		} else {
			if consecutiveFailures > 0 {
				log.Printf("registry: update recovered after %d failures", consecutiveFailures)
			} else {
				log.Printf("registry: update succeeded")
			}
			consecutiveFailures = 0

			if cfg.Interval <= 0 {
				log.Printf("registry: periodic refresh disabled")
				return nil
			}
			wait = cfg.Interval
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("registry: updater stopped: %v", ctx.Err())
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func calcBackoff(initial, max time.Duration, failures int) time.Duration {
	pow := math.Pow(2, float64(failures-1))
	backoff := time.Duration(float64(initial) * pow)
	if backoff > max {
		backoff = max
	}

	// Add jitter to avoid synchronized retries
	jitterFrac := 0.2
	jitter := time.Duration(rand.Float64()*2*jitterFrac*float64(backoff)) -
		time.Duration(jitterFrac*float64(backoff))

	return backoff + jitter
}

// updateOnce fetches a snapshot and publishes it.
func updateOnce(ctx context.Context, cfg Config, src Fetcher, holder *Holder) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	reg, err := src.FetchRegistry(ctx)
	if err != nil {
		return err
	}

	holder.Set(reg)
	if cfg.OnUpdate != nil {
		cfg.OnUpdate(reg)
	}
	return nil
}
