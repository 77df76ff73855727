package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clockface/internal/platform"
)

// prefKey is the per-user store slot holding the preferred display format.
const prefKey = "display_format"

// invokeModel is the model identifier used by the demo invocation.
const invokeModel = "echo-1"

type accountStateMsg struct {
	signedIn   bool
	usage      *platform.UsageSnapshot
	sub        *platform.SubscriptionStatus
	prefValue  string
	prefSet    bool
	prefStatus platform.SyncStatus
}

type accountErrMsg struct{ err error }

type invokeResultMsg struct{ text string }

// AccountPageModel renders the hosted-platform account view: the sign-in
// gate, usage and subscription snapshots, the synced display preference and
// the result of the last model invocation. Platform errors are presented,
// never swallowed and never retried from here.
type AccountPageModel struct {
	client platform.Client
	user   string
	keys   keyMap
	styles Styles

	signedIn   bool
	usage      *platform.UsageSnapshot
	sub        *platform.SubscriptionStatus
	prefValue  string
	prefSet    bool
	prefStatus platform.SyncStatus
	lastResult string
	lastErr    error

	width  int
	height int
}

// NewAccountPageModel creates the account page for the given client.
func NewAccountPageModel(client platform.Client, user string, keys keyMap, styles Styles) AccountPageModel {
	return AccountPageModel{
		client: client,
		user:   user,
		keys:   keys,
		styles: styles,
	}
}

// Refresh re-reads the account state from the client.
func (m AccountPageModel) Refresh() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		state := accountStateMsg{signedIn: client.SignedIn()}

		usage, err := client.Usage(ctx)
		if err != nil {
			return accountErrMsg{err}
		}
		state.usage = usage

		sub, err := client.Subscription(ctx)
		if err != nil {
			return accountErrMsg{err}
		}
		state.sub = sub

		if state.signedIn {
			item, err := client.Store(prefKey)
			if err != nil {
				return accountErrMsg{err}
			}
			state.prefValue, state.prefSet = item.Get()
			state.prefStatus = item.Status()
		}
		return state
	}
}

func (m AccountPageModel) toggleSignIn() tea.Cmd {
	client := m.client
	refresh := m.Refresh()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if client.SignedIn() {
			err = client.SignOut(ctx)
		} else {
			err = client.SignIn(ctx)
		}
		if err != nil {
			return accountErrMsg{err}
		}
		return refresh()
	}
}

func (m AccountPageModel) invoke() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		outs, err := client.Invoke(context.Background(), platform.InvokeRequest{
			Model:  invokeModel,
			Prompt: "What time is it?",
		})
		if err != nil {
			return accountErrMsg{err}
		}
		if len(outs) == 0 {
			return accountErrMsg{fmt.Errorf("invocation returned no outputs")}
		}
		return invokeResultMsg{text: outs[0].Text}
	}
}

// Save writes value to the synced display preference slot.
func (m AccountPageModel) Save(value string) tea.Cmd {
	client := m.client
	refresh := m.Refresh()
	return func() tea.Msg {
		item, err := client.Store(prefKey)
		if err != nil {
			return accountErrMsg{err}
		}
		if err := item.Set(value); err != nil {
			return accountErrMsg{err}
		}
		return refresh()
	}
}

// Update handles account page messages and key presses.
func (m AccountPageModel) Update(msg tea.Msg) (AccountPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case accountStateMsg:
		m.signedIn = msg.signedIn
		m.usage = msg.usage
		m.sub = msg.sub
		m.prefValue = msg.prefValue
		m.prefSet = msg.prefSet
		m.prefStatus = msg.prefStatus
		m.lastErr = nil
	case accountErrMsg:
		m.lastErr = msg.err
	case invokeResultMsg:
		m.lastResult = msg.text
		m.lastErr = nil
		return m, m.Refresh()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.SignIn):
			return m, m.toggleSignIn()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.Refresh()
		case key.Matches(msg, m.keys.Invoke):
			return m, m.invoke()
		}
	}
	return m, nil
}

// SetStyles replaces the style set, e.g. after a theme change.
func (m *AccountPageModel) SetStyles(styles Styles) {
	m.styles = styles
}

// View renders the account page.
func (m AccountPageModel) View() string {
	s := m.styles
	var lines []string

	lines = append(lines, s.Title.Render("Account"))

	if !m.signedIn {
		lines = append(lines,
			s.Body.Render("Signed out."),
			s.Muted.Render("Usage, subscription and synced preferences appear after sign-in."),
			"",
			s.Muted.Render("[s] sign in"),
		)
	} else {
		lines = append(lines, s.Success.Render("Signed in")+s.Muted.Render(" as "+m.user))

		if m.usage != nil {
			lines = append(lines, "",
				s.Body.Render(fmt.Sprintf("Credits remaining: %.0f", m.usage.CreditsRemaining)),
				s.Body.Render(fmt.Sprintf("Credits used:      %.0f", m.usage.CreditsUsed)),
				s.Muted.Render("Period ends "+m.usage.PeriodEnd.Format("January 2, 2006")),
			)
		}
		if m.sub != nil {
			state := s.Error.Render("inactive")
			if m.sub.Active {
				state = s.Success.Render("active")
			}
			lines = append(lines, "",
				s.Body.Render("Plan: ")+s.Badge.Render(m.sub.Plan)+" "+state,
			)
		}

		pref := s.Muted.Render("not set")
		if m.prefSet {
			pref = s.Body.Render(m.prefValue) + s.Muted.Render(" ("+m.prefStatus.String()+")")
		}
		lines = append(lines, "", s.Body.Render("Display preference: ")+pref)

		if m.lastResult != "" {
			lines = append(lines, "", s.Info.Render("Last invocation: ")+s.Body.Render(m.lastResult))
		}
		lines = append(lines, "", s.Muted.Render("[s] sign out  [r] refresh  [i] invoke  [w] save preference"))
	}

	if m.lastErr != nil {
		lines = append(lines, "", m.presentError(m.lastErr))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// presentError maps the platform error taxonomy to its display form.
func (m AccountPageModel) presentError(err error) string {
	s := m.styles
	if retry, ok := platform.IsRateLimited(err); ok {
		if retry > 0 {
			return s.Warning.Render(fmt.Sprintf("Rate limited — try again in %v.", retry))
		}
		return s.Warning.Render("Rate limited — try again shortly.")
	}
	if platform.IsInsufficientBalance(err) {
		return s.Error.Render("Out of credits — top up to keep invoking.")
	}
	return s.Error.Render("Error: " + err.Error())
}
