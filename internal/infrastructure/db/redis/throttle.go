package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	defaultWindow      = 15 * time.Minute
)

// Throttle counts failed login attempts per username in Redis.
// Key format: login_failures:<username>, expiring after the window.
type Throttle struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

// NewThrottle creates a Throttle. Non-positive limits fall back to defaults.
func NewThrottle(client *redis.Client, maxFailures int, window time.Duration) *Throttle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &Throttle{client: client, maxFailures: maxFailures, window: window}
}

// TooManyFailures reports whether the username has reached the failure limit
// within the current window.
func (t *Throttle) TooManyFailures(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle get: %w", err)
	}
	return n >= int64(t.maxFailures), nil
}

// RecordFailure counts one failed attempt. The expiry is set on the first
// failure only, so the window is anchored at the start of a failure streak.
func (t *Throttle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *Throttle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *Throttle) key(username string) string {
	return "login_failures:" + username
}
