package ui

import (
	"strings"

	"taskdeck/internal/service"
)

// renderRow draws one task. Toggle and delete act on the selected row and
// are delegated to the root model.
func renderRow(task service.Task, selected, disabled bool) string {
	var b strings.Builder

	if selected {
		b.WriteString(cursorStyle.Render("›"))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")

	check := "[ ]"
	if task.Completed {
		check = "[" + checkStyle.Render("✓") + "]"
	}
	if disabled {
		check = disabledStyle.Render(check)
	}
	b.WriteString(check)
	b.WriteString(" ")

	title := task.DisplayTitle()
	if task.Completed {
		b.WriteString(doneTitleStyle.Render(title))
	} else {
		b.WriteString(openTitleStyle.Render(title))
	}

	b.WriteString("  ")
	b.WriteString(statusStyle.Render("Status: " + task.Status()))
	return b.String()
}
