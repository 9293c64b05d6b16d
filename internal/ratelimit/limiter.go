package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

//go:generate mockgen -destination=mocks/mock_limiter.go -package=mocks . Limiter

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
