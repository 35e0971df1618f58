// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All REST calls go through this interface; the UI and commands never
// talk HTTP directly.
type Service interface {
	// ListTasks returns all tasks in server order (no client-side sorting).
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns it with the server-assigned fields.
	CreateTask(ctx context.Context, title string) (Task, error)

	// SetTaskCompletion sets the completed flag and returns the updated task.
	SetTaskCompletion(ctx context.Context, id int64, completed bool) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id int64) error
}
