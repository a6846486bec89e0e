package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhalitov/taskvault/models"
)

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.detailItem

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
		m.loading = true
		return m, m.cmdLoadItems()
	case key.Matches(keyMsg, keys.up):
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entryIdx < len(item.Checklist)-1 {
			m.entryIdx++
		}
	case key.Matches(keyMsg, keys.edit):
		if item.Description.Failed {
			m.errMsg = "description cannot be decrypted, editing would discard it"
			return m, nil
		}
		m.startEdit(item)
		return m, m.form.initCmd()
	case key.Matches(keyMsg, keys.toggle):
		return m, m.cmdToggleTask(item.Task.ID)
	case key.Matches(keyMsg, keys.delete):
		return m, m.cmdDelete(item.Task.ID)
	case key.Matches(keyMsg, keys.copy):
		if item.Task.Link == nil || *item.Task.Link == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(*item.Task.Link); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Link copied"
	case key.Matches(keyMsg, keys.addStep):
		if item.Description.Failed {
			m.errMsg = "checklist is unavailable while the description is unreadable"
			return m, nil
		}
		m.startAddEntry()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.toggleStep):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleEntry(item.Task.ID, entry.Entry.ID)
	case key.Matches(keyMsg, keys.removeStep):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteEntry(item.Task.ID, entry.Entry.ID)
	case key.Matches(keyMsg, keys.moveUp):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		if entry.Entry.Position == 0 {
			return m, nil
		}
		m.entryIdx--
		return m, m.cmdReorderEntry(item.Task.ID, entry.Entry.ID, entry.Entry.Position-1)
	case key.Matches(keyMsg, keys.moveDn):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		if entry.Entry.Position >= len(item.Checklist)-1 {
			return m, nil
		}
		m.entryIdx++
		return m, m.cmdReorderEntry(item.Task.ID, entry.Entry.ID, entry.Entry.Position+1)
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	item := m.detailItem

	var b strings.Builder
	b.WriteString("[ TASK ]\n")
	b.WriteString("Title       : " + item.Task.Title + "\n")
	b.WriteString("Status      : " + string(item.Task.Status) + "\n")
	b.WriteString("Today       : " + yesNo(item.Task.IsToday) + "\n")
	b.WriteString("Link        : " + valueOrDash(item.Task.Link) + "\n")
	b.WriteString("Created     : " + item.Task.CreatedAt.Local().Format("2006-01-02 15:04") + "\n\n")

	b.WriteString("[ DESCRIPTION ]\n")
	if item.Description.Failed {
		b.WriteString(failStyle.Render(item.Description.Display()) + "\n")
	} else if item.Description.Text == "" {
		b.WriteString("(empty)\n")
	} else {
		b.WriteString(item.Description.Display() + "\n")
	}
	b.WriteString("\n")

	b.WriteString("[ CHECKLIST ]\n")
	switch {
	case item.Description.Failed:
		b.WriteString("unavailable while the description is unreadable\n")
	case len(item.Checklist) == 0:
		b.WriteString("(no steps)\n")
	default:
		for i, step := range item.Checklist {
			cursor := " "
			if i == m.entryIdx {
				cursor = ">"
			}
			mark := "[ ]"
			if step.Entry.Completed {
				mark = "[x]"
			}
			label := step.Label.Display()
			if step.Label.Failed {
				label = failStyle.Render(label)
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, label))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}

	return renderPage(
		"TASK: "+fitText(item.Task.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"a: add step │ space: toggle │ [/]: move │ backspace: remove │ e: edit │ t: toggle task │ esc: back",
	)
}

func (m mainLoopModel) currentEntry() (models.ChecklistItem, bool) {
	steps := m.detailItem.Checklist
	if len(steps) == 0 || m.entryIdx < 0 || m.entryIdx >= len(steps) {
		return models.ChecklistItem{}, false
	}
	return steps[m.entryIdx], true
}

func (m *mainLoopModel) startAddEntry() {
	input := textinput.New()
	input.Placeholder = "step"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	m.entryInput = input
	m.addingEntry = true
	m.errMsg = ""
}

func (m mainLoopModel) updateEntryInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.addingEntry = false
			return m, nil
		case "enter":
			label := strings.TrimSpace(m.entryInput.Value())
			if label == "" {
				m.errMsg = "step text is required"
				return m, nil
			}
			m.addingEntry = false
			m.errMsg = ""
			return m, m.cmdAddEntry(m.detailItem.Task.ID, label)
		}
	}

	var cmd tea.Cmd
	m.entryInput, cmd = m.entryInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewEntryInput() string {
	out := "Step  │ [" + m.entryInput.View() + "]\n"
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg + "\n"
	}
	return renderPage("ADD CHECKLIST STEP", strings.TrimRight(out, "\n"), "enter: save │ esc: cancel")
}

func (m mainLoopModel) cmdAddEntry(taskID, label string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		_, err := svc.AddEntry(ctx, taskID, label)
		return entryChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleEntry(taskID, entryID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		_, err := svc.ToggleEntry(ctx, taskID, entryID)
		return entryChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(taskID, entryID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		err := svc.DeleteEntry(ctx, taskID, entryID)
		return entryChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdReorderEntry(taskID, entryID string, position int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		err := svc.ReorderEntry(ctx, taskID, entryID, position)
		return entryChangedMsg{err: err}
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
