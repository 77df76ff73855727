package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clockface/internal/platform"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drive executes cmd and feeds the resulting message back into the model,
// repeating while commands keep coming.
func drive(t *testing.T, m AccountPageModel, cmd tea.Cmd) AccountPageModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func testAccountPage(t *testing.T) AccountPageModel {
	t.Helper()
	client := platform.NewMemory("tester", &fixedClock{readings: []time.Time{at(12, 0, 0)}}, nil)
	return NewAccountPageModel(client, "tester", defaultKeyMap(), DefaultStyles())
}

func TestAccountPage_SignedOutView(t *testing.T) {
	m := testAccountPage(t)
	m = drive(t, m, m.Refresh())

	view := m.View()
	if !strings.Contains(view, "Signed out.") {
		t.Errorf("expected signed-out notice:\n%s", view)
	}
	if strings.Contains(view, "Credits") {
		t.Errorf("usage must not render before sign-in:\n%s", view)
	}
}

func TestAccountPage_SignInShowsSnapshots(t *testing.T) {
	m := testAccountPage(t)

	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)

	view := m.View()
	for _, want := range []string{"Signed in", "tester", "Credits remaining: 100", "starter", "active"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q after sign-in:\n%s", want, view)
		}
	}
}

func TestAccountPage_SignOutHidesSnapshots(t *testing.T) {
	m := testAccountPage(t)

	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)
	m2, cmd = m.Update(keyRune('s'))
	m = drive(t, m2, cmd)

	if view := m.View(); !strings.Contains(view, "Signed out.") {
		t.Errorf("expected signed-out view after sign-out:\n%s", view)
	}
}

func TestAccountPage_InvokeShowsResult(t *testing.T) {
	m := testAccountPage(t)

	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)
	m2, cmd = m.Update(keyRune('i'))
	m = drive(t, m2, cmd)

	view := m.View()
	if !strings.Contains(view, "Last invocation:") || !strings.Contains(view, "[echo-1]") {
		t.Errorf("expected invocation result in view:\n%s", view)
	}
	if !strings.Contains(view, "Credits remaining: 99") {
		t.Errorf("invocation should spend a credit:\n%s", view)
	}
}

func TestAccountPage_SavePersistsPreference(t *testing.T) {
	m := testAccountPage(t)

	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)
	m = drive(t, m, m.Save("24h"))

	view := m.View()
	if !strings.Contains(view, "24h") || !strings.Contains(view, "syncing") {
		t.Errorf("expected saved preference with sync status:\n%s", view)
	}
}

func TestAccountPage_RateLimitPresentation(t *testing.T) {
	m := testAccountPage(t)
	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)

	m, _ = m.Update(accountErrMsg{&platform.RateLimitError{RetryAfter: 2 * time.Second}})
	view := m.View()
	if !strings.Contains(view, "Rate limited") || !strings.Contains(view, "2s") {
		t.Errorf("rate limit must surface the retry delay:\n%s", view)
	}
}

func TestAccountPage_BalancePresentation(t *testing.T) {
	m := testAccountPage(t)
	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)

	m, _ = m.Update(accountErrMsg{&platform.InsufficientBalanceError{Required: 1}})
	view := m.View()
	if !strings.Contains(view, "Out of credits") {
		t.Errorf("balance errors must be presented:\n%s", view)
	}
	if strings.Contains(view, "retry") {
		t.Errorf("balance errors carry no retry hint:\n%s", view)
	}
}

func TestAccountPage_ErrorClearedByRefresh(t *testing.T) {
	m := testAccountPage(t)
	m2, cmd := m.Update(keyRune('s'))
	m = drive(t, m2, cmd)

	m, _ = m.Update(accountErrMsg{&platform.RateLimitError{}})
	m2, cmd = m.Update(keyRune('r'))
	m = drive(t, m2, cmd)

	if view := m.View(); strings.Contains(view, "Rate limited") {
		t.Errorf("refresh should clear the presented error:\n%s", view)
	}
}
