package ui

import (
	_ "embed"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"clockface/internal/clock"
	"clockface/internal/config"
	"clockface/internal/platform"
)

//go:embed help.md
var helpMarkdown string

type page int

const (
	pageClock page = iota
	pageAccount
)

// ConfigReloadMsg carries a freshly reloaded configuration into the event
// loop. Sent from the config watcher via Program.Send.
type ConfigReloadMsg struct {
	Cfg config.Config
}

// App is the top-level bubbletea model: page switching between the clock
// face and the account view, the help overlay and quitting.
type App struct {
	active  page
	clock   ClockPageModel
	account AccountPageModel

	keys     keyMap
	help     help.Model
	helpDoc  string
	showHelp bool
	styles   Styles

	width  int
	height int
}

// NewApp assembles the application model.
func NewApp(source clock.Clock, interval time.Duration, mode clock.Mode, client platform.Client, user string, styles Styles) App {
	keys := defaultKeyMap()
	keys.Toggle.SetHelp("t", mode.ToggleLabel())

	helpModel := help.New()
	helpModel.Styles.ShortKey = styles.Body
	helpModel.Styles.ShortDesc = styles.Muted

	return App{
		clock:   NewClockPageModel(source, interval, mode, styles),
		account: NewAccountPageModel(client, user, keys, styles),
		keys:    keys,
		help:    helpModel,
		helpDoc: renderHelp(styles),
		styles:  styles,
	}
}

func renderHelp(styles Styles) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(72)}
	if styles.Theme.IsDark {
		opts = append(opts, glamour.WithStylePath("dark"))
	} else {
		opts = append(opts, glamour.WithStylePath("light"))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

// Init starts the periodic refresh and the initial account read.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.clock.Init(), a.account.Refresh())
}

// Update routes messages to the active page and handles the global keys.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case key.Matches(msg, a.keys.Account):
			if a.active == pageClock {
				a.active = pageAccount
			} else {
				a.active = pageClock
			}
			return a, nil
		case key.Matches(msg, a.keys.Toggle):
			a.clock.ToggleMode()
			a.keys.Toggle.SetHelp("t", a.clock.Mode().ToggleLabel())
			return a, nil
		case key.Matches(msg, a.keys.Save) && a.active == pageAccount:
			return a, a.account.Save(a.clock.Mode().String())
		}
		if a.active == pageAccount {
			var cmd tea.Cmd
			a.account, cmd = a.account.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The last line belongs to the help footer.
		inner := msg
		if inner.Height > 0 {
			inner.Height--
		}
		var clockCmd, accountCmd tea.Cmd
		a.clock, clockCmd = a.clock.Update(inner)
		a.account, accountCmd = a.account.Update(inner)
		return a, tea.Batch(clockCmd, accountCmd)

	case TickMsg:
		var cmd tea.Cmd
		a.clock, cmd = a.clock.Update(msg)
		return a, cmd

	case ConfigReloadMsg:
		return a.applyConfig(msg.Cfg), nil

	case accountStateMsg, accountErrMsg, invokeResultMsg:
		var cmd tea.Cmd
		a.account, cmd = a.account.Update(msg)
		return a, cmd
	}

	return a, nil
}

// applyConfig folds a reloaded config into the running UI. Values the
// reload cannot express (current moment, page, sign-in state) are kept.
func (a App) applyConfig(cfg config.Config) App {
	if mode, err := cfg.Mode(); err == nil {
		a.clock.SetMode(mode)
		a.keys.Toggle.SetHelp("t", mode.ToggleLabel())
	}
	if interval, err := cfg.Interval(); err == nil {
		a.clock.SetInterval(interval)
	}
	styles := NewStyles(ThemeByName(cfg.Theme))
	a.styles = styles
	a.helpDoc = renderHelp(styles)
	a.help.Styles.ShortKey = styles.Body
	a.help.Styles.ShortDesc = styles.Muted
	a.clock.SetStyles(styles)
	a.account.SetStyles(styles)
	return a
}

// View renders the active page with the short-help footer, or the help
// overlay.
func (a App) View() string {
	if a.showHelp {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.helpDoc)
		}
		return a.helpDoc
	}

	var body string
	switch a.active {
	case pageAccount:
		body = a.account.View()
	default:
		body = a.clock.View()
	}

	footer := a.styles.Footer.Render(a.help.View(a.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
