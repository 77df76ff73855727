package clock

import (
	"fmt"
	"time"
)

// Mode selects between 12-hour (AM/PM) and 24-hour time display.
type Mode int

const (
	Mode12 Mode = iota
	Mode24
)

// ParseMode parses the config representation of a mode ("12h" or "24h").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "12h":
		return Mode12, nil
	case "24h":
		return Mode24, nil
	default:
		return Mode12, fmt.Errorf("unknown clock format %q (want \"12h\" or \"24h\")", s)
	}
}

func (m Mode) String() string {
	if m == Mode24 {
		return "24h"
	}
	return "12h"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Mode12 {
		return Mode24
	}
	return Mode12
}

// ToggleLabel is the label for the mode-switch control. The control is
// always labeled with the mode it switches TO, not the active one.
func (m Mode) ToggleLabel() string {
	if m == Mode12 {
		return "24-hour"
	}
	return "12-hour"
}

// Formatted is the display-ready decomposition of a wall-clock moment.
// Hours, Minutes and Seconds are always exactly two characters, zero-padded.
// Period is "AM" or "PM" in 12-hour mode and empty in 24-hour mode.
type Formatted struct {
	Hours   string
	Minutes string
	Seconds string
	Period  string
}

// FormatTime decomposes t, read in its own location, according to mode.
// In 12-hour mode hours 0 and 12 both render as "12".
func FormatTime(t time.Time, mode Mode) Formatted {
	hour, min, sec := t.Clock()
	f := Formatted{
		Minutes: fmt.Sprintf("%02d", min),
		Seconds: fmt.Sprintf("%02d", sec),
	}
	if mode == Mode24 {
		f.Hours = fmt.Sprintf("%02d", hour)
		return f
	}
	f.Period = "AM"
	if hour >= 12 {
		f.Period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	f.Hours = fmt.Sprintf("%02d", display)
	return f
}

// Reference layout for the long-form date line, e.g. "Monday, January 15, 2024".
const dateLayout = "Monday, January 2, 2006"

// FormatDate renders t as a long-form English calendar date with the full
// weekday and month names.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
