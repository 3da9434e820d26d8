// Package ratelimit counts requests per key in Redis.
package ratelimit

import (
	"context"
	"time"
)

// Limit is a maximum number of requests inside a sliding window. A zero
// Requests disables the window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow records one request for key and reports whether every limit
	// still holds.
	Allow(ctx context.Context, key string, limits ...Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
