package clock

import (
	"context"
	"sync"
	"time"
)

// State of a Unit.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// DefaultInterval is the refresh period of the display.
const DefaultInterval = time.Second

// Unit owns the periodic wall-clock refresh. Start reads the clock once
// immediately and then once per interval, handing every reading to the
// callback. All callback invocations happen on a single goroutine, so they
// never overlap; a slow callback delays the next reading rather than
// dropping or reordering it.
type Unit struct {
	clock    Clock
	interval time.Duration
	onTick   func(time.Time)

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// NewUnit creates a stopped Unit. onTick must not be nil. A non-positive
// interval falls back to DefaultInterval.
func NewUnit(c Clock, interval time.Duration, onTick func(time.Time)) *Unit {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Unit{
		clock:    c,
		interval: interval,
		onTick:   onTick,
	}
}

// Start moves the unit to Running. The first reading is delivered
// synchronously before Start returns, then a tick goroutine delivers one
// reading per interval until Stop is called or ctx is cancelled. Starting a
// running unit is a no-op.
func (u *Unit) Start(ctx context.Context) {
	u.mu.Lock()
	if u.state == StateRunning {
		u.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	u.cancel = cancel
	u.done = make(chan struct{})
	u.state = StateRunning
	done := u.done
	u.mu.Unlock()

	u.onTick(u.clock.Now())

	go func() {
		defer close(done)
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				u.onTick(u.clock.Now())
			}
		}
	}()
}

// Stop cancels the periodic trigger and waits for the tick goroutine to
// exit. No callback fires after Stop returns. Idempotent.
func (u *Unit) Stop() {
	u.mu.Lock()
	if u.state != StateRunning {
		u.mu.Unlock()
		return
	}
	u.cancel()
	done := u.done
	u.state = StateStopped
	u.mu.Unlock()

	<-done
}

// State reports whether the unit is currently Running or Stopped.
func (u *Unit) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}
