package platform

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"clockface/internal/clock"
)

const (
	memoryStartingCredits = 100
	memoryInvokeCost      = 1
	memoryInvokeCooldown  = time.Second
	memorySyncDelay       = 2 * time.Second
)

// Memory is an in-process Client. It enforces the same gate, balance and
// rate-limit semantics the hosted platform documents, so the account page
// and tests exercise real error paths without a network.
type Memory struct {
	user   string
	clock  clock.Clock
	logger *zap.Logger

	// Concurrent snapshot refreshes collapse into one computation.
	snapshots singleflight.Group

	mu          sync.Mutex
	signedIn    bool
	creditsUsed float64
	credits     float64
	plan        string
	lastInvoke  time.Time
	store       map[string]*memoryItem
	periodEnd   time.Time
	renewsAt    time.Time
}

// NewMemory creates a signed-out in-memory client for the named user.
func NewMemory(user string, c clock.Clock, logger *zap.Logger) *Memory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = clock.System()
	}
	return &Memory{
		user:    user,
		clock:   c,
		logger:  logger,
		credits: memoryStartingCredits,
		plan:    "starter",
		store:   make(map[string]*memoryItem),
	}
}

func (m *Memory) SignedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedIn
}

// SignIn opens the gate. Signing in twice is a no-op.
func (m *Memory) SignIn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.signedIn {
		return nil
	}
	now := m.clock.Now()
	m.signedIn = true
	m.periodEnd = now.AddDate(0, 1, 0)
	m.renewsAt = m.periodEnd
	m.logger.Info("signed in", zap.String("user", m.user))
	return nil
}

// SignOut closes the gate. Stored values survive for the next session but
// become unreachable until SignIn.
func (m *Memory) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.signedIn {
		return nil
	}
	m.signedIn = false
	m.logger.Info("signed out", zap.String("user", m.user))
	return nil
}

// Invoke runs a model invocation. Signed-out callers are rejected with
// ErrSignedOut; an exhausted balance yields *InsufficientBalanceError and
// invoking again inside the cooldown window yields *RateLimitError with the
// remaining wait. The caller decides whether and when to retry.
func (m *Memory) Invoke(ctx context.Context, req InvokeRequest) ([]Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Model == "" {
		return nil, fmt.Errorf("invoke: model identifier required")
	}
	if req.Prompt == "" && len(req.Messages) == 0 {
		return nil, fmt.Errorf("invoke: prompt or messages required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.signedIn {
		return nil, ErrSignedOut
	}

	now := m.clock.Now()
	if !m.lastInvoke.IsZero() {
		if wait := memoryInvokeCooldown - now.Sub(m.lastInvoke); wait > 0 {
			return nil, &RateLimitError{RetryAfter: wait}
		}
	}
	if m.credits < memoryInvokeCost {
		return nil, &InsufficientBalanceError{Required: memoryInvokeCost, Available: m.credits}
	}

	m.lastInvoke = now
	m.credits -= memoryInvokeCost
	m.creditsUsed += memoryInvokeCost

	requestID := uuid.NewString()
	m.logger.Info("model invocation",
		zap.String("request_id", requestID),
		zap.String("model", req.Model),
		zap.Int("messages", len(req.Messages)),
		zap.Int("media", len(req.Media)),
	)

	prompt := req.Prompt
	if prompt == "" {
		prompt = req.Messages[len(req.Messages)-1].Content
	}
	out := Output{Text: fmt.Sprintf("[%s] %s", req.Model, strings.TrimSpace(prompt))}
	if len(req.Schema) > 0 {
		out = Output{Object: map[string]any{
			"request_id": requestID,
			"model":      req.Model,
			"echo":       strings.TrimSpace(prompt),
		}}
	}
	return []Output{out}, nil
}

// Usage returns the credit snapshot, or nil while signed out. Concurrent
// refreshes share a single read.
func (m *Memory) Usage(ctx context.Context) (*UsageSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err, _ := m.snapshots.Do("usage", func() (any, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !m.signedIn {
			return (*UsageSnapshot)(nil), nil
		}
		return &UsageSnapshot{
			CreditsUsed:      m.creditsUsed,
			CreditsRemaining: m.credits,
			PeriodEnd:        m.periodEnd,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*UsageSnapshot), nil
}

// Subscription returns the plan snapshot, or nil while signed out.
func (m *Memory) Subscription(ctx context.Context) (*SubscriptionStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err, _ := m.snapshots.Do("subscription", func() (any, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !m.signedIn {
			return (*SubscriptionStatus)(nil), nil
		}
		return &SubscriptionStatus{
			Plan:     m.plan,
			Active:   true,
			RenewsAt: m.renewsAt,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SubscriptionStatus), nil
}

// Store returns the item for key. Only available while signed in.
func (m *Memory) Store(key string) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.signedIn {
		return nil, ErrSignedOut
	}
	if key == "" {
		return nil, fmt.Errorf("store: key required")
	}
	item, ok := m.store[key]
	if !ok {
		item = &memoryItem{clock: m.clock, status: SyncLocal}
		m.store[key] = item
	}
	return item, nil
}

// memoryItem transitions local -> syncing -> synced on a fixed delay after
// each Set, driven by the shared clock so tests stay deterministic.
type memoryItem struct {
	clock clock.Clock

	mu     sync.Mutex
	value  string
	set    bool
	status SyncStatus
	syncAt time.Time
}

func (i *memoryItem) Get() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value, i.set
}

func (i *memoryItem) Set(value string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = value
	i.set = true
	i.status = SyncSyncing
	i.syncAt = i.clock.Now().Add(memorySyncDelay)
	return nil
}

func (i *memoryItem) Status() SyncStatus {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.status == SyncSyncing && !i.clock.Now().Before(i.syncAt) {
		i.status = SyncSynced
	}
	return i.status
}
