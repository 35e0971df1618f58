// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"taskdeck/internal/service"
)

// ErrNotFound is returned when a task id is unknown.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	nextID int64

	// Error injection for testing
	ListTasksErr         error
	CreateTaskErr        error
	SetTaskCompletionErr error
	DeleteTaskErr        error

	// Call counters
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewFakeService creates an empty FakeService. IDs start at 1.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task in server order and returns it.
func (f *FakeService) AddTask(title string, completed bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := service.Task{ID: f.nextID, Title: title, Completed: completed}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t
}

// Tasks returns a copy of the server-side tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Calls returns the total number of backend calls made.
func (f *FakeService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls + f.CreateCalls + f.UpdateCalls + f.DeleteCalls
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(title) == "" {
		return service.Task{}, errors.New("title is required")
	}
	t := service.Task{ID: f.nextID, Title: title, CreatedAt: "2026-01-02T15:04:05Z"}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// SetTaskCompletion implements service.Service.
func (f *FakeService) SetTaskCompletion(ctx context.Context, id int64, completed bool) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.SetTaskCompletionErr != nil {
		return service.Task{}, f.SetTaskCompletionErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = completed
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
