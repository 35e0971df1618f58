package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/board"
	"taskdeck/internal/service"
)

// renderList draws the task list section. An error hides everything else,
// so "no tasks" is never confused with "tasks unknown".
func renderList(tasks []service.Task, errMsg string, cursor int, focused, disabled bool) string {
	if errMsg != "" {
		return errorStyle.Render("Error loading tasks: " + errMsg)
	}

	var b strings.Builder
	b.WriteString(listHeader(board.Count(tasks)))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(emptyTitleStyle.Render("No tasks yet"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Add your first task to get started!"))
	} else {
		rows := make([]string, len(tasks))
		for i, t := range tasks {
			rows[i] = renderRow(t, focused && i == cursor, disabled)
		}
		b.WriteString(strings.Join(rows, "\n"))
	}

	style := panelStyle
	if focused {
		style = focusedPanel
	}
	return style.Render(b.String())
}

func listHeader(c board.Counts) string {
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		pendingCountStyle.Render(fmt.Sprintf("○ %d Pending", c.Pending)),
		"   ",
		completedCountStyle.Render(fmt.Sprintf("✓ %d Completed", c.Completed)),
		"   ",
		totalStyle.Render(fmt.Sprintf("Total: %d", c.Total)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sectionStyle.UnsetMarginTop().Render("Your Tasks"), "    ", stats)
}
