package api

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// WaitForBackend pings the backend until it answers or maxElapsed passes.
// It is only meant for process start; regular calls never retry.
func WaitForBackend(ctx context.Context, c *Client, maxElapsed time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxElapsed

	attempt := 0
	ping := func() error {
		attempt++
		_, err := c.Ping(ctx)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Str("base_url", c.BaseURL()).
			Msg("backend not ready")
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("backend at %s not reachable: %w", c.BaseURL(), err)
	}

	log.Info().Int("attempts", attempt).Str("base_url", c.BaseURL()).Msg("backend ready")
	return nil
}
