package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clockface/internal/clock"
)

// TickMsg is the periodic refresh beat delivered through the bubbletea
// event queue.
type TickMsg time.Time

// ClockPageModel renders the wall clock: the hour and minute digit groups
// joined by a literal colon, the seconds group, the AM/PM label in 12-hour
// mode, the long-form date line and the mode toggle control.
type ClockPageModel struct {
	source   clock.Clock
	interval time.Duration
	mode     clock.Mode
	now      time.Time
	styles   Styles
	width    int
	height   int
}

// NewClockPageModel creates a clock page showing the current reading of
// source. The first refresh beat is scheduled by Init.
func NewClockPageModel(source clock.Clock, interval time.Duration, mode clock.Mode, styles Styles) ClockPageModel {
	if interval <= 0 {
		interval = clock.DefaultInterval
	}
	return ClockPageModel{
		source:   source,
		interval: interval,
		mode:     mode,
		now:      source.Now(),
		styles:   styles,
	}
}

// Init schedules the first refresh beat.
func (m ClockPageModel) Init() tea.Cmd {
	return m.tick()
}

func (m ClockPageModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update consumes refresh beats, re-reading the wall clock and scheduling
// the next beat only once this one is handled. A slow frame therefore
// delays the next reading instead of stacking beats.
func (m ClockPageModel) Update(msg tea.Msg) (ClockPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = m.source.Now()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// ToggleMode flips between 12-hour and 24-hour display.
func (m *ClockPageModel) ToggleMode() {
	m.mode = m.mode.Toggle()
}

// Mode returns the active display mode.
func (m ClockPageModel) Mode() clock.Mode {
	return m.mode
}

// SetMode replaces the display mode, e.g. after a config reload.
func (m *ClockPageModel) SetMode(mode clock.Mode) {
	m.mode = mode
}

// SetInterval replaces the refresh period. Takes effect from the next
// scheduled beat.
func (m *ClockPageModel) SetInterval(d time.Duration) {
	if d > 0 {
		m.interval = d
	}
}

// SetStyles replaces the style set, e.g. after a theme change.
func (m *ClockPageModel) SetStyles(styles Styles) {
	m.styles = styles
}

// View renders the clock face centered in the available window.
func (m ClockPageModel) View() string {
	f := clock.FormatTime(m.now, m.mode)

	timeLine := m.styles.Digits.Render(f.Hours) +
		m.styles.Colon.Render(":") +
		m.styles.Digits.Render(f.Minutes) +
		m.styles.Seconds.Render(":"+f.Seconds)
	if f.Period != "" {
		timeLine += " " + m.styles.Period.Render(f.Period)
	}

	dateLine := m.styles.Date.Render(clock.FormatDate(m.now))

	// The toggle control names the mode it switches TO.
	toggle := m.styles.Toggle.Render("[t] " + m.mode.ToggleLabel())
	hint := m.styles.Muted.Render("switch to " + m.mode.ToggleLabel() + " time")

	content := lipgloss.JoinVertical(lipgloss.Center, timeLine, dateLine, "", toggle, hint)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
