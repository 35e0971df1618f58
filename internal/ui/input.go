package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"taskdeck/internal/board"
)

const titleLimit = 200

// taskInput is the "Add New Task" form. It owns only the text being typed.
type taskInput struct {
	text     textinput.Model
	disabled bool
	log      zerolog.Logger
}

func newTaskInput(log zerolog.Logger) taskInput {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter your task..."
	ti.CharLimit = titleLimit
	ti.Width = 48
	ti.Cursor.SetMode(cursor.CursorStatic)
	return taskInput{
		text: ti,
		log:  log.With().Str("component", "input").Logger(),
	}
}

func (in *taskInput) focus() tea.Cmd {
	if in.disabled {
		return nil
	}
	return in.text.Focus()
}

func (in *taskInput) blur() {
	in.text.Blur()
}

// setDisabled locks the form while a request is in flight.
func (in *taskInput) setDisabled(disabled bool) {
	in.disabled = disabled
	if disabled {
		in.text.Blur()
	}
}

func (in taskInput) update(msg tea.Msg) (taskInput, tea.Cmd) {
	if in.disabled {
		return in, nil
	}
	var cmd tea.Cmd
	in.text, cmd = in.text.Update(msg)
	return in, cmd
}

// submit returns the trimmed title, or board.ErrEmptyTitle.
func (in taskInput) submit() (string, error) {
	title := strings.TrimSpace(in.text.Value())
	if title == "" {
		return "", board.ErrEmptyTitle
	}
	return title, nil
}

// settle reacts to the add flow's outcome: clear on success, keep the text
// for a retry on failure. The board shows the error, so only log it here.
func (in *taskInput) settle(err error) {
	if err != nil {
		in.log.Error().Err(err).Msg("error adding task")
		return
	}
	in.text.Reset()
}

func (in taskInput) value() string { return in.text.Value() }

func (in taskInput) view(loading bool) string {
	label := "+ Add Task"
	if loading {
		label = "Adding..."
	}
	button := buttonStyle.Render(label)
	if in.disabled || strings.TrimSpace(in.text.Value()) == "" {
		button = disabledStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, in.text.View(), "  ", button)
}
