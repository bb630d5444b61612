package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck/models"
)

// Form field order; the prompt textarea sits after the last text input.
const (
	formFieldTitle = iota
	formFieldDescription
	formFieldCategory
	formFieldLevel
	formFieldTags
	formFieldEstimatedTime
	formFieldUsage
	formFieldCount
)

type formState struct {
	editingID string
	original  models.Command

	inputs     []textinput.Model
	promptArea textarea.Model
	focus      int

	saving bool
	errMsg string
}

func newFormInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = 44
	return input
}

func newCommandForm() formState {
	inputs := []textinput.Model{
		newFormInput("title"),
		newFormInput("description"),
		newFormInput("category"),
		newFormInput("beginner / intermediate / advanced"),
		newFormInput("tags, comma separated"),
		newFormInput("estimated time, e.g. 10 min"),
		newFormInput("usage instructions (optional)"),
	}
	inputs[formFieldTitle].Focus()

	prompt := textarea.New()
	prompt.Placeholder = "prompt body"
	prompt.SetWidth(58)
	prompt.SetHeight(6)

	return formState{inputs: inputs, promptArea: prompt}
}

func (m *dashboardModel) startCreateForm() {
	if !m.app.Session.Authenticated() {
		m.errMsg = "you must be signed in to create commands"
		return
	}

	m.form = newCommandForm()
	m.screen = screenForm
	m.errMsg = ""
}

func (m *dashboardModel) startEditForm(command models.Command) {
	if !m.app.Session.Authenticated() {
		m.errMsg = "you must be signed in to edit commands"
		return
	}

	form := newCommandForm()
	form.editingID = command.ID
	form.original = command

	form.inputs[formFieldTitle].SetValue(command.Title)
	form.inputs[formFieldDescription].SetValue(command.Description)
	form.inputs[formFieldCategory].SetValue(command.Category)
	form.inputs[formFieldLevel].SetValue(string(command.Level))
	form.inputs[formFieldTags].SetValue(strings.Join(command.Tags, ", "))
	form.inputs[formFieldEstimatedTime].SetValue(command.EstimatedTime)
	form.inputs[formFieldUsage].SetValue(command.Usage)
	form.promptArea.SetValue(command.Prompt)

	m.form = form
	m.screen = screenForm
	m.errMsg = ""
}

func (m dashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.form = formState{}
			return m, nil

		case "tab":
			m.formBlur()
			m.form.focus = (m.form.focus + 1) % (formFieldCount + 1)
			m.formFocus()
			return m, nil

		case "shift+tab":
			m.formBlur()
			m.form.focus = (m.form.focus - 1 + formFieldCount + 1) % (formFieldCount + 1)
			m.formFocus()
			return m, nil

		case "ctrl+s":
			if m.form.saving {
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	if m.form.focus == formFieldCount {
		m.form.promptArea, cmd = m.form.promptArea.Update(msg)
	} else {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m *dashboardModel) formBlur() {
	if m.form.focus == formFieldCount {
		m.form.promptArea.Blur()
		return
	}
	m.form.inputs[m.form.focus].Blur()
}

func (m *dashboardModel) formFocus() {
	if m.form.focus == formFieldCount {
		m.form.promptArea.Focus()
		return
	}
	m.form.inputs[m.form.focus].Focus()
}

func (m dashboardModel) submitForm() (tea.Model, tea.Cmd) {
	if m.form.editingID == "" {
		input := models.NewCommand{
			Title:         strings.TrimSpace(m.form.inputs[formFieldTitle].Value()),
			Description:   strings.TrimSpace(m.form.inputs[formFieldDescription].Value()),
			Category:      strings.TrimSpace(m.form.inputs[formFieldCategory].Value()),
			Level:         models.Level(strings.ToLower(strings.TrimSpace(m.form.inputs[formFieldLevel].Value()))),
			Prompt:        strings.TrimSpace(m.form.promptArea.Value()),
			Usage:         strings.TrimSpace(m.form.inputs[formFieldUsage].Value()),
			Tags:          parseTags(m.form.inputs[formFieldTags].Value()),
			EstimatedTime: strings.TrimSpace(m.form.inputs[formFieldEstimatedTime].Value()),
		}

		m.form.errMsg = ""
		m.form.saving = true
		return m, m.cmdCreate(input)
	}

	patch := m.buildPatch()
	if patch.Empty() {
		m.screen = screenList
		m.form = formState{}
		m.status = "no changes"
		return m, nil
	}

	m.form.errMsg = ""
	m.form.saving = true
	return m, m.cmdUpdate(m.form.editingID, patch)
}

// buildPatch diffs the form against the original command so the update stays
// sparse: untouched fields are not sent at all.
func (m dashboardModel) buildPatch() models.CommandPatch {
	var patch models.CommandPatch
	original := m.form.original

	if v := strings.TrimSpace(m.form.inputs[formFieldTitle].Value()); v != original.Title {
		patch.Title = &v
	}
	if v := strings.TrimSpace(m.form.inputs[formFieldDescription].Value()); v != original.Description {
		patch.Description = &v
	}
	if v := strings.TrimSpace(m.form.inputs[formFieldCategory].Value()); v != original.Category {
		patch.Category = &v
	}
	if v := models.Level(strings.ToLower(strings.TrimSpace(m.form.inputs[formFieldLevel].Value()))); v != original.Level {
		patch.Level = &v
	}
	if v := strings.TrimSpace(m.form.promptArea.Value()); v != original.Prompt {
		patch.Prompt = &v
	}
	if v := strings.TrimSpace(m.form.inputs[formFieldUsage].Value()); v != original.Usage {
		patch.Usage = &v
	}
	if v := parseTags(m.form.inputs[formFieldTags].Value()); strings.Join(v, ",") != strings.Join(original.Tags, ",") {
		patch.Tags = &v
	}
	if v := strings.TrimSpace(m.form.inputs[formFieldEstimatedTime].Value()); v != original.EstimatedTime {
		patch.EstimatedTime = &v
	}

	return patch
}

func parseTags(raw string) models.Tags {
	tags := models.Tags{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (m dashboardModel) viewForm() string {
	labels := []string{
		"Title     ",
		"Descr.    ",
		"Category  ",
		"Level     ",
		"Tags      ",
		"Est. time ",
		"Usage     ",
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label + ": [ " + m.form.inputs[i].View() + " ]\n")
	}
	b.WriteString("\nPrompt:\n")
	b.WriteString(m.form.promptArea.View())
	b.WriteString("\n")

	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.form.errMsg))
		b.WriteString("\n")
	}
	if m.form.saving {
		b.WriteString("\nSaving...\n")
	}

	title := "NEW COMMAND"
	if m.form.editingID != "" {
		title = "EDIT COMMAND"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ shift+tab: previous field │ ctrl+s: save │ esc: cancel",
	)
}

func (m dashboardModel) cmdCreate(input models.NewCommand) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		_, err := app.Commands.Create(ctx, input)
		return commandSavedMsg{err: err}
	}
}

func (m dashboardModel) cmdUpdate(id string, patch models.CommandPatch) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		_, err := app.Commands.Update(ctx, id, patch)
		return commandSavedMsg{err: err}
	}
}
