// Package service defines the backend-agnostic interface for task operations.
package service

import "strings"

// Task represents a single task item as the server returns it.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt,omitempty"` // display-only
}

// Status returns the human label for the task's completion state.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// DisplayTitle returns the title on a single line, or "(untitled)" when it
// is blank.
func (t Task) DisplayTitle() string {
	title := strings.ReplaceAll(t.Title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
