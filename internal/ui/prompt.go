package ui

import (
	"fmt"

	"taskdeck/internal/service"
)

type promptKind int

const (
	promptAlert promptKind = iota
	promptConfirmDelete
)

// prompt is a blocking dialog: while one is open, every key goes to it.
type prompt struct {
	kind    promptKind
	message string
	taskID  int64
}

func alertPrompt(message string) *prompt {
	return &prompt{kind: promptAlert, message: message}
}

func confirmDeletePrompt(task service.Task) *prompt {
	return &prompt{
		kind:    promptConfirmDelete,
		message: fmt.Sprintf("Are you sure you want to delete this task?\n%q", task.DisplayTitle()),
		taskID:  task.ID,
	}
}

func (p *prompt) view() string {
	hint := "press any key"
	if p.kind == promptConfirmDelete {
		hint = "y: delete   any other key: cancel"
	}
	return promptStyle.Render(p.message + "\n\n" + subtitleStyle.Render(hint))
}
