package platform

import (
	"errors"
	"fmt"
	"time"
)

// ErrSignedOut is returned by operations that require authentication.
var ErrSignedOut = errors.New("not signed in")

// InsufficientBalanceError indicates the account cannot cover the requested
// invocation. It deliberately carries no retry hint; topping up is a user
// action, not a backoff.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %.2f credits, have %.2f", e.Required, e.Available)
}

// RateLimitError indicates the platform rejected an invocation for rate
// limiting. RetryAfter is how long the caller should wait before trying
// again; zero means the platform gave no hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limit exceeded, retry after %v", e.RetryAfter)
	}
	return "rate limit exceeded"
}

// IsRateLimited reports whether err is a rate-limit rejection, and the
// retry delay if so.
func IsRateLimited(err error) (time.Duration, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}

// IsInsufficientBalance reports whether err is a balance rejection.
func IsInsufficientBalance(err error) bool {
	var ib *InsufficientBalanceError
	return errors.As(err, &ib)
}
