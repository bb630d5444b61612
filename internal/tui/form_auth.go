package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authState struct {
	registerMode bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func (m *dashboardModel) startAuth(registerMode bool) {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	name := textinput.New()
	name.Placeholder = "display name (optional)"
	name.Width = 40

	m.auth = authState{
		registerMode: registerMode,
		inputs:       []textinput.Model{email, password, name},
	}
	m.screen = screenAuth
	m.errMsg = ""
}

func (m dashboardModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.auth = authState{}
			return m, nil

		case "ctrl+r":
			m.startAuth(!m.auth.registerMode)
			return m, nil

		case "tab":
			m.auth.inputs[m.auth.focus].Blur()
			m.auth.focus = (m.auth.focus + 1) % m.authFieldCount()
			m.auth.inputs[m.auth.focus].Focus()
			return m, nil

		case "shift+tab":
			m.auth.inputs[m.auth.focus].Blur()
			m.auth.focus = (m.auth.focus - 1 + m.authFieldCount()) % m.authFieldCount()
			m.auth.inputs[m.auth.focus].Focus()
			return m, nil

		case "enter":
			if m.auth.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.auth.inputs[0].Value())
			password := m.auth.inputs[1].Value()
			if email == "" || password == "" {
				m.auth.errMsg = "email and password are required"
				return m, nil
			}

			m.auth.errMsg = ""
			m.auth.submitting = true
			if m.auth.registerMode {
				name := strings.TrimSpace(m.auth.inputs[2].Value())
				return m, m.cmdRegister(email, password, name)
			}
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

// authFieldCount hides the name input in login mode.
func (m dashboardModel) authFieldCount() int {
	if m.auth.registerMode {
		return 3
	}
	return 2
}

func (m dashboardModel) viewAuth() string {
	var b strings.Builder

	b.WriteString("Email    : [ " + m.auth.inputs[0].View() + " ]\n")
	b.WriteString("Password : [ " + m.auth.inputs[1].View() + " ]\n")
	if m.auth.registerMode {
		b.WriteString("Name     : [ " + m.auth.inputs[2].View() + " ]\n")
	}

	if m.auth.submitting {
		b.WriteString("\n[Submitting...]\n")
	}
	if m.auth.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.auth.errMsg))
		b.WriteString("\n")
	}

	title := "SIGN IN"
	mode := "register"
	if m.auth.registerMode {
		title = "REGISTER"
		mode = "sign in"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ ctrl+r: switch to "+mode+" │ esc: back",
	)
}

func (m dashboardModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		err := app.Login(ctx, email, password)
		return authDoneMsg{err: err}
	}
}

func (m dashboardModel) cmdRegister(email, password, name string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		err := app.Register(ctx, email, password, name)
		return authDoneMsg{err: err}
	}
}
