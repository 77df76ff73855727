// Package clock implements the wall-clock display core: a time source
// abstraction, 12/24-hour formatting, and the tick-driven refresh unit.
package clock

import "time"

// Clock provides the current wall-clock reading. The refresh unit and the
// TUI read time through this interface so tests can drive them with a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the host's real-time clock.
func System() Clock { return systemClock{} }
