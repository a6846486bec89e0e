// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhalitov/taskvault/internal/service"
	"github.com/mkhalitov/taskvault/models"
)

type statusFilter int

const (
	filterAll statusFilter = iota
	filterPending
	filterCompleted
)

func (f statusFilter) label() string {
	switch f {
	case filterPending:
		return "pending"
	case filterCompleted:
		return "completed"
	default:
		return "all"
	}
}

func (f statusFilter) next() statusFilter {
	switch f {
	case filterAll:
		return filterPending
	case filterPending:
		return filterCompleted
	default:
		return filterAll
	}
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services

	items      []models.TaskItem
	idx        int
	loading    bool
	refreshing bool
	status     string
	errMsg     string

	filterStatus statusFilter
	todayOnly    bool

	detail     bool
	detailItem models.TaskItem
	entryIdx   int

	addingEntry bool
	entryInput  textinput.Model

	form formModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case detailLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detail = true
		m.detailItem = msg.item
		if m.entryIdx >= len(m.detailItem.Checklist) {
			m.entryIdx = len(m.detailItem.Checklist) - 1
		}
		if m.entryIdx < 0 {
			m.entryIdx = 0
		}
		return m, nil
	case taskSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if m.form.active {
				m.form.errMsg = humanizeBackendUnavailableError(msg.err)
			} else {
				m.errMsg = humanizeBackendUnavailableError(msg.err)
			}
			return m, nil
		}
		m.form.active = false
		m.status = "Task saved"
		m.errMsg = ""
		if m.detail {
			return m, m.cmdLoadDetail(m.detailItem.Task.ID)
		}
		m.loading = true
		return m, m.cmdLoadItems()
	case taskDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Task deleted"
		m.errMsg = ""
		m.detail = false
		m.loading = true
		return m, m.cmdLoadItems()
	case entryChangedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("checklist update failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdLoadDetail(m.detailItem.Task.ID)
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Refreshed"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form.active {
			return m.updateForm(msg)
		}
		if m.addingEntry {
			return m.updateEntryInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form.active {
		return m.updateForm(msg)
	}

	if m.addingEntry {
		return m.updateEntryInput(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.current()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		m.entryIdx = 0
		return m, m.cmdLoadDetail(item.Task.ID)
	case key.Matches(keyMsg, keys.newTask):
		m.startCreate()
		return m, m.form.initCmd()
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.current()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		if item.Description.Failed {
			m.errMsg = "description cannot be decrypted, editing would discard it"
			return m, nil
		}
		m.startEdit(item)
		return m, m.form.initCmd()
	case key.Matches(keyMsg, keys.toggle):
		item, ok := m.current()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		return m, m.cmdToggleTask(item.Task.ID)
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		return m, m.cmdDelete(item.Task.ID)
	case key.Matches(keyMsg, keys.filter):
		m.filterStatus = m.filterStatus.next()
		m.loading = true
		return m, m.cmdLoadItems()
	case key.Matches(keyMsg, keys.today):
		m.todayOnly = !m.todayOnly
		m.loading = true
		return m, m.cmdLoadItems()
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok || item.Task.Link == nil || *item.Task.Link == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(*item.Task.Link); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Link copied"
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.form.active {
		return m.viewForm()
	}
	if m.addingEntry {
		return m.viewEntryInput()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += "Loading tasks...\n"
		return renderPage("TASKS", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	out += fmt.Sprintf("Filter: %s", m.filterStatus.label())
	if m.todayOnly {
		out += " │ today only"
	}
	out += "\n\n"

	if len(m.items) == 0 {
		out += "No tasks\n"
	} else {
		out += "ID   │ Title                    │ Status    │ Today │ Link\n"
		out += "─────┼──────────────────────────┼───────────┼───────┼────────────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			today := " "
			if item.Task.IsToday {
				today = "*"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-9s │   %s   │ %s\n",
				cursor,
				i+1,
				fitText(item.Task.Title, 24),
				item.Task.Status,
				today,
				fitText(valueOrDash(item.Task.Link), 16),
			)
		}

		if item, ok := m.current(); ok {
			out += "\nDescription: " + fitText(firstLine(item.Description.Display()), 60) + "\n"
		}
	}

	return renderPage("TASKS", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "n: new │ enter: open │ e: edit │ t: toggle │ f: filter │ o: today │ s: refresh │ c: copy link │ ctrl+d: delete │ l: logout"

func (m mainLoopModel) current() (models.TaskItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.TaskItem{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) activeFilter() models.TaskFilter {
	filter := models.TaskFilter{TodayOnly: m.todayOnly}
	switch m.filterStatus {
	case filterPending:
		status := models.StatusPending
		filter.Status = &status
	case filterCompleted:
		status := models.StatusCompleted
		filter.Status = &status
	}
	return filter
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks
	filter := m.activeFilter()

	return func() tea.Msg {
		items, err := svc.ListTasks(ctx, filter)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadDetail(taskID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		item, err := svc.GetTask(ctx, taskID)
		return detailLoadedMsg{item: item, err: err}
	}
}

func (m mainLoopModel) cmdToggleTask(taskID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		item, err := svc.ToggleTask(ctx, taskID)
		return taskSavedMsg{item: item, err: err}
	}
}

func (m mainLoopModel) cmdDelete(taskID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		err := svc.DeleteTask(ctx, taskID)
		return taskDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tasks

	return func() tea.Msg {
		err := svc.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
