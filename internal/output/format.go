// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"

	"taskdeck/internal/board"
	"taskdeck/internal/service"
)

// FormatTask formats one task line.
// Format: "{ID:>4}  [x] {TITLE}\n", with "[ ]" for pending tasks.
func FormatTask(w io.Writer, task service.Task) {
	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", task.ID, mark, task.DisplayTitle())
}

// FormatCounts formats the summary line printed under a task listing.
func FormatCounts(w io.Writer, c board.Counts) {
	fmt.Fprintf(w, "%d pending, %d completed, %d total\n", c.Pending, c.Completed, c.Total)
}
