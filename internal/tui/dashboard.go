package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck/internal/client"
	"github.com/promptdeck/promptdeck/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenAuth
)

// dashboardModel is the single Bubble Tea model behind the dashboard. The
// active screen decides which update/view pair handles the frame; the command
// and favorites state always comes from the client stores, the model only
// keeps a display copy and cursor position.
type dashboardModel struct {
	ctx context.Context
	app *client.App

	screen screen
	idx    int

	commands []models.Command
	detailID string

	form formState
	auth authState

	status     string
	errMsg     string
	quitByUser bool
}

func newDashboardModel(ctx context.Context, app *client.App) dashboardModel {
	return dashboardModel{
		ctx: ctx,
		app: app,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.cmdBootstrap()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commandsLoadedMsg:
		m.syncCommands()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case commandSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.form = formState{}
		m.status = "command saved"
		m.errMsg = ""
		m.syncCommands()
		return m, nil

	case commandDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.detailID = ""
		m.status = "command deleted"
		m.errMsg = ""
		m.syncCommands()
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case authDoneMsg:
		m.auth.submitting = false
		if msg.err != nil {
			m.auth.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.auth = authState{}
		if identity := m.app.Session.Current(); identity != nil {
			m.status = "signed in as " + identity.Email
		}
		m.errMsg = ""
		return m, nil

	case noticeMsg:
		if msg.isError {
			m.errMsg = msg.text
		} else {
			m.status = msg.text
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenAuth:
			return m.updateAuth(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenForm:
		return m.updateForm(msg)
	case screenAuth:
		return m.updateAuth(msg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m dashboardModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit

	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}

	case "down", "j":
		if m.idx < len(m.commands)-1 {
			m.idx++
		}

	case "enter":
		command, ok := m.current()
		if !ok {
			m.status = "no commands yet"
			return m, nil
		}
		m.detailID = command.ID
		m.screen = screenDetail
		return m, m.cmdRecordView(command.ID)

	case "c":
		command, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopyPrompt(command)

	case "f":
		command, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleFavorite(command.ID)

	case "n":
		m.startCreateForm()
		return m, nil

	case "e":
		command, ok := m.current()
		if !ok {
			return m, nil
		}
		m.startEditForm(command)
		return m, nil

	case "ctrl+d":
		command, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(command.ID)

	case "r":
		m.status = "refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()

	case "i":
		m.startAuth(false)
		return m, nil

	case "o":
		if m.app.Session.Authenticated() {
			m.app.Logout(m.ctx)
			m.status = "signed out"
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenAuth:
		return m.viewAuth()
	default:
		return m.viewList()
	}
}

func (m dashboardModel) viewList() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if identity := m.app.Session.Current(); identity != nil {
		b.WriteString("User: " + identity.Email + "\n")
	} else {
		b.WriteString("User: anonymous (i: sign in)\n")
	}
	b.WriteString("\n")

	if m.app.Commands.Loading() && len(m.commands) == 0 {
		b.WriteString("Loading commands...\n")
		return renderPage("PROMPT COMMANDS", strings.TrimRight(b.String(), "\n"), m.listHotKeys())
	}

	if len(m.commands) == 0 {
		b.WriteString("No commands yet\n")
		return renderPage("PROMPT COMMANDS", strings.TrimRight(b.String(), "\n"), m.listHotKeys())
	}

	b.WriteString("  ★ │ Title                          │ Category        │ Level        │ Views │ Copies\n")
	b.WriteString("────┼────────────────────────────────┼─────────────────┼──────────────┼───────┼───────\n")
	for i, command := range m.commands {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		star := " "
		if m.app.Favorites.IsFavorite(command.ID) {
			star = favoriteStyle.Render("★")
		}

		b.WriteString(fmt.Sprintf(
			"%s %s │ %-30s │ %-15s │ %-12s │ %5d │ %6d\n",
			cursor,
			star,
			fitText(command.Title, 30),
			fitText(command.Category, 15),
			command.Level,
			command.Views,
			command.Copies,
		))
	}

	return renderPage("PROMPT COMMANDS", strings.TrimRight(b.String(), "\n"), m.listHotKeys())
}

func (m dashboardModel) listHotKeys() string {
	return "enter: open │ c: copy │ f: favorite │ n: new │ e: edit │ ctrl+d: delete │ r: refresh │ i/o: sign in/out │ q: quit"
}

func (m dashboardModel) current() (models.Command, bool) {
	if len(m.commands) == 0 || m.idx < 0 || m.idx >= len(m.commands) {
		return models.Command{}, false
	}
	return m.commands[m.idx], true
}

func (m *dashboardModel) syncCommands() {
	m.commands = m.app.Commands.Commands()
	if m.idx >= len(m.commands) {
		m.idx = len(m.commands) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) cmdBootstrap() tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		app.Bootstrap(ctx)
		return commandsLoadedMsg{}
	}
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		if err := app.Commands.LoadAll(ctx); err != nil {
			return commandsLoadedMsg{err: err}
		}
		err := app.Favorites.LoadForCurrentUser(ctx)
		return commandsLoadedMsg{err: err}
	}
}

func (m dashboardModel) cmdRecordView(commandID string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		app.Reporter.RecordView(ctx, commandID)
		return commandsLoadedMsg{}
	}
}

func (m dashboardModel) cmdCopyPrompt(command models.Command) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		if err := clipboard.WriteAll(command.Prompt); err != nil {
			return noticeMsg{text: "clipboard unavailable: " + err.Error(), isError: true}
		}
		app.Reporter.RecordCopy(ctx, command.ID)
		return noticeMsg{text: "prompt copied to clipboard"}
	}
}

func (m dashboardModel) cmdToggleFavorite(commandID string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		err := app.Favorites.Toggle(ctx, commandID)
		return favoriteToggledMsg{err: err}
	}
}

func (m dashboardModel) cmdDelete(commandID string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		err := app.Commands.SoftDelete(ctx, commandID)
		return commandDeletedMsg{err: err}
	}
}
