package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitError(t *testing.T) {
	err := fmt.Errorf("invoke failed: %w", &RateLimitError{RetryAfter: 3 * time.Second})

	retry, ok := IsRateLimited(err)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, retry)
	assert.Contains(t, err.Error(), "retry after 3s")

	bare := &RateLimitError{}
	assert.Equal(t, "rate limit exceeded", bare.Error())
}

func TestInsufficientBalanceError(t *testing.T) {
	err := fmt.Errorf("invoke failed: %w", &InsufficientBalanceError{Required: 1, Available: 0.25})

	assert.True(t, IsInsufficientBalance(err))
	assert.Contains(t, err.Error(), "need 1.00 credits, have 0.25")

	_, limited := IsRateLimited(err)
	assert.False(t, limited)
}

func TestSyncStatusString(t *testing.T) {
	assert.Equal(t, "local", SyncLocal.String())
	assert.Equal(t, "syncing", SyncSyncing.String())
	assert.Equal(t, "synced", SyncSynced.String())
	assert.Equal(t, "error", SyncError.String())
	assert.Equal(t, "unknown", SyncStatus(42).String())
}
