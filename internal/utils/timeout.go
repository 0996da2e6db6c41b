package utils

import (
	"context"
	"time"
)

// StoreTimeout bounds every repository call.
const StoreTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, StoreTimeout)
}

// Detached keeps ctx values (logger, trace span) but not its cancellation, and
// applies a fresh timeout. For work that must outlive the request.
func Detached(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
