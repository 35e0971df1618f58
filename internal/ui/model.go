// Package ui is the interactive terminal front end. It renders the board
// and turns key presses into board requests run off the event loop.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"taskdeck/internal/board"
	"taskdeck/internal/service"
)

const emptyTitleAlert = "Please enter a task title"

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	board   *board.Board
	log     zerolog.Logger
	input   taskInput
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	focus   focusArea
	cursor  int
	prompt  *prompt
}

// New builds the root model. ctx bounds every backend request the UI starts.
func New(ctx context.Context, svc service.Service, log zerolog.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accent)

	m := Model{
		ctx:     ctx,
		board:   board.New(svc, log),
		log:     log,
		input:   newTaskInput(log),
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		focus:   focusInput,
	}
	m.input.focus()
	return m
}

// Init fetches the task list once and starts the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.request(m.board.StartLoad()), m.spinner.Tick)
}

// request runs a board request as a command; its Result comes back as a message.
func (m Model) request(req board.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return req(ctx)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.board.InitialLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case board.Result:
		return m.applyResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	return m, cmd
}

func (m Model) applyResult(r board.Result) (tea.Model, tea.Cmd) {
	err := m.board.Apply(r)
	if _, ok := r.(board.CreatedResult); ok {
		m.input.settle(err)
	}
	m.clampCursor()
	return m, m.syncInput()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.prompt != nil {
		return m.handlePrompt(msg)
	}
	if m.board.InitialLoading() {
		return m, nil
	}
	if key.Matches(msg, m.keys.Switch) {
		return m.switchFocus()
	}
	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.prompt
	m.prompt = nil
	if p.kind != promptConfirmDelete || !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}
	req := m.board.StartDelete(p.taskID)
	return m, tea.Batch(m.syncInput(), m.request(req))
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.focus()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m.switchFocus()
	}
	if !key.Matches(msg, m.keys.Submit) {
		var cmd tea.Cmd
		m.input, cmd = m.input.update(msg)
		return m, cmd
	}
	if m.board.Loading() {
		return m, nil
	}

	title, err := m.input.submit()
	if err != nil {
		m.prompt = alertPrompt(emptyTitleAlert)
		return m, nil
	}
	req, err := m.board.StartAdd(title)
	if err != nil {
		m.prompt = alertPrompt(emptyTitleAlert)
		return m, nil
	}
	return m, tea.Batch(m.syncInput(), m.request(req))
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.board.Len()-1 {
			m.cursor++
		}
		return m, nil
	}

	task, ok := m.selected()
	if !ok || m.board.Loading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		req := m.board.StartToggle(task.ID)
		return m, tea.Batch(m.syncInput(), m.request(req))
	case key.Matches(msg, m.keys.Delete):
		m.prompt = confirmDeletePrompt(task)
	}
	return m, nil
}

func (m Model) selected() (service.Task, bool) {
	if m.board.Err() != "" || m.cursor < 0 || m.cursor >= m.board.Len() {
		return service.Task{}, false
	}
	return m.board.At(m.cursor), true
}

func (m *Model) clampCursor() {
	if m.cursor >= m.board.Len() {
		m.cursor = m.board.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncInput disables the form while a mutation is in flight.
func (m *Model) syncInput() tea.Cmd {
	m.input.setDisabled(m.board.Loading())
	if m.board.Loading() || m.focus != focusInput {
		return nil
	}
	return m.input.focus()
}

func (m Model) View() string {
	if m.board.InitialLoading() {
		return "\n  " + m.spinner.View() + " Loading your tasks...\n"
	}

	var sections []string
	sections = append(sections,
		titleStyle.Render("Task Manager"),
		subtitleStyle.Render("Organize your tasks efficiently"),
	)

	form := sectionStyle.Render("Add New Task") + "\n" + m.input.view(m.board.Loading())
	if m.focus == focusInput {
		form = focusedPanel.Render(form)
	} else {
		form = panelStyle.Render(form)
	}
	sections = append(sections, form)

	sections = append(sections, renderList(
		m.board.Tasks(),
		m.board.Err(),
		m.cursor,
		m.focus == focusList,
		m.board.Loading(),
	))

	if m.prompt != nil {
		sections = append(sections, m.prompt.view())
	} else {
		sections = append(sections, m.help.View(m.keys))
	}

	return strings.Join(sections, "\n") + "\n"
}
