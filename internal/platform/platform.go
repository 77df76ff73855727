// Package platform defines the hosted-platform client surface the clock app
// renders against: an authentication gate, model invocation, usage and
// subscription snapshots, and a per-key synced value store. The hosted
// provider itself is operated elsewhere; this package carries the contract
// plus an in-memory implementation used by the account page and tests.
package platform

import (
	"context"
	"encoding/json"
	"time"
)

// SyncStatus reports where a stored value currently lives relative to the
// hosted store.
type SyncStatus int

const (
	SyncLocal SyncStatus = iota
	SyncSyncing
	SyncSynced
	SyncError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncLocal:
		return "local"
	case SyncSyncing:
		return "syncing"
	case SyncSynced:
		return "synced"
	case SyncError:
		return "error"
	default:
		return "unknown"
	}
}

// UsageSnapshot is a point-in-time view of the account's credit balance.
type UsageSnapshot struct {
	CreditsUsed      float64
	CreditsRemaining float64
	PeriodEnd        time.Time
}

// SubscriptionStatus is a point-in-time view of the account's plan.
type SubscriptionStatus struct {
	Plan     string
	Active   bool
	RenewsAt time.Time
}

// Message is one turn of a conversational invocation input.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Media is an optional binary attachment to an invocation.
type Media struct {
	MIME string
	Data []byte
}

// InvokeRequest is the structured input payload for a model invocation.
// Exactly one of Prompt or Messages should be set; Media and Schema are
// optional.
type InvokeRequest struct {
	Model    string
	Prompt   string
	Messages []Message
	Media    []Media
	// Schema constrains the shape of structured outputs (JSON schema).
	Schema json.RawMessage
}

// Output is one element of an invocation result: plain text or a structured
// object, never both.
type Output struct {
	Text   string
	Object map[string]any
}

// Item is one per-key value in the synced store.
type Item interface {
	// Get returns the current value and whether one has been set.
	Get() (string, bool)
	// Set replaces the value and starts a sync to the hosted store.
	Set(value string) error
	// Status reports the value's current sync state.
	Status() SyncStatus
}

// Client is the hosted-platform contract. Usage and Subscription return nil
// snapshots (without error) until SignIn succeeds; Store is unavailable
// signed out. Invocation errors are surfaced to the caller for presentation
// and are never retried here.
type Client interface {
	SignedIn() bool
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error

	Invoke(ctx context.Context, req InvokeRequest) ([]Output, error)

	Usage(ctx context.Context) (*UsageSnapshot, error)
	Subscription(ctx context.Context) (*SubscriptionStatus, error)

	Store(key string) (Item, error)
}
