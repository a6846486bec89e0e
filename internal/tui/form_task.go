// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhalitov/taskvault/models"
)

const (
	formFocusTitle = iota
	formFocusLink
	formFocusDescription
	formFocusCount
)

// formModel holds the create/edit form state. An empty taskID means the form
// creates a new task; otherwise it overwrites the task with that ID.
type formModel struct {
	active     bool
	taskID     string
	title      textinput.Model
	link       textinput.Model
	desc       textarea.Model
	today      bool
	focus      int
	submitting bool
	errMsg     string
}

func (f formModel) initCmd() tea.Cmd {
	return textinput.Blink
}

func newTaskForm() formModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 48
	title.Focus()

	link := textinput.New()
	link.Placeholder = "https:// (optional)"
	link.CharLimit = 500
	link.Width = 48

	desc := textarea.New()
	desc.Placeholder = "description (stored encrypted)"
	desc.SetWidth(54)
	desc.SetHeight(6)

	return formModel{
		active: true,
		title:  title,
		link:   link,
		desc:   desc,
	}
}

func (m *mainLoopModel) startCreate() {
	m.form = newTaskForm()
	m.errMsg = ""
}

func (m *mainLoopModel) startEdit(item models.TaskItem) {
	form := newTaskForm()
	form.taskID = item.Task.ID
	form.title.SetValue(item.Task.Title)
	if item.Task.Link != nil {
		form.link.SetValue(*item.Task.Link)
	}
	form.desc.SetValue(item.Description.Text)
	form.today = item.Task.IsToday

	m.form = form
	m.errMsg = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form.active = false
			m.form.submitting = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focusField((m.form.focus + 1) % formFocusCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusField((m.form.focus - 1 + formFocusCount) % formFocusCount)
			return m, nil
		}

		switch keyMsg.String() {
		case "ctrl+t":
			m.form.today = !m.form.today
			return m, nil
		case "ctrl+s":
			if m.form.submitting {
				return m, nil
			}

			title := strings.TrimSpace(m.form.title.Value())
			if title == "" {
				m.form.errMsg = "title is required"
				return m, nil
			}

			draft := models.TaskDraft{
				Title:       title,
				IsToday:     m.form.today,
				Description: m.form.desc.Value(),
			}
			if link := strings.TrimSpace(m.form.link.Value()); link != "" {
				draft.Link = &link
			}

			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdSaveTask(m.form.taskID, draft)
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFocusTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case formFocusLink:
		m.form.link, cmd = m.form.link.Update(msg)
	case formFocusDescription:
		m.form.desc, cmd = m.form.desc.Update(msg)
	}
	return m, cmd
}

func (f *formModel) focusField(focus int) {
	f.title.Blur()
	f.link.Blur()
	f.desc.Blur()

	f.focus = focus
	switch focus {
	case formFocusTitle:
		f.title.Focus()
	case formFocusLink:
		f.link.Focus()
	case formFocusDescription:
		f.desc.Focus()
	}
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder
	b.WriteString("Title  │ [" + m.form.title.View() + "]\n")
	b.WriteString("Link   │ [" + m.form.link.View() + "]\n")
	b.WriteString("Today  │ [" + checkbox(m.form.today) + "]  (ctrl+t to toggle)\n\n")
	b.WriteString("Description:\n")
	b.WriteString(m.form.desc.View())
	b.WriteString("\n")

	if m.form.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\nError: " + m.form.errMsg + "\n")
	}

	title := "NEW TASK"
	if m.form.taskID != "" {
		title = "EDIT TASK"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+t: today │ ctrl+s: save │ esc: cancel")
}

func checkbox(v bool) string {
	if v {
		return "x"
	}
	return " "
}

func (m mainLoopModel) cmdSaveTask(taskID string, draft models.TaskDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		if taskID == "" {
			item, err := svc.CreateTask(ctx, draft)
			return taskSavedMsg{item: item, err: err}
		}
		item, err := svc.UpdateTask(ctx, taskID, draft)
		return taskSavedMsg{item: item, err: err}
	}
}
