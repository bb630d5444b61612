package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m dashboardModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	command, ok := m.app.Commands.GetByID(m.detailID)
	if !ok {
		m.screen = screenList
		m.detailID = ""
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenList
		m.detailID = ""

	case "c":
		return m, m.cmdCopyPrompt(command)

	case "f":
		return m, m.cmdToggleFavorite(command.ID)

	case "e":
		m.startEditForm(command)

	case "ctrl+d":
		return m, m.cmdDelete(command.ID)
	}

	return m, nil
}

func (m dashboardModel) viewDetail() string {
	command, ok := m.app.Commands.GetByID(m.detailID)
	if !ok {
		return renderPage("COMMAND", "command not found", "esc: back")
	}

	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n\n")
	}

	favorite := "no"
	if m.app.Favorites.IsFavorite(command.ID) {
		favorite = favoriteStyle.Render("★ yes")
	}

	b.WriteString("Title      : " + command.Title + "\n")
	b.WriteString("Category   : " + command.Category + "\n")
	b.WriteString("Level      : " + string(command.Level) + "\n")
	b.WriteString("Tags       : " + orDash(strings.Join(command.Tags, ", ")) + "\n")
	b.WriteString("Est. time  : " + orDash(command.EstimatedTime) + "\n")
	b.WriteString("Favorite   : " + favorite + "\n")
	b.WriteString(fmt.Sprintf("Counters   : %d views, %d copies\n", command.Views, command.Copies))
	b.WriteString("\n")

	b.WriteString("[ DESCRIPTION ]\n")
	b.WriteString(command.Description + "\n\n")

	b.WriteString("[ PROMPT ]\n")
	b.WriteString(command.Prompt + "\n")

	if command.Usage != "" {
		b.WriteString("\n[ USAGE ]\n")
		b.WriteString(command.Usage + "\n")
	}

	related := m.app.Commands.Related(command.ID)
	if len(related) > 0 {
		b.WriteString("\n[ RELATED ]\n")
		for _, other := range related {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", other.Title, other.Category))
		}
	}

	return renderPage(
		"COMMAND: "+fitText(command.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"c: copy prompt │ f: favorite │ e: edit │ ctrl+d: delete │ esc: back",
	)
}
