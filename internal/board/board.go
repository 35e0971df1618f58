// Package board holds the controller state of the task board: the
// authoritative task collection plus the loading and error flags.
//
// A Board is not safe for concurrent use. It is mutated only from the UI
// event loop; network work happens in the Requests that Start* methods
// return, and their Results are folded back in with Apply.
package board

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"taskdeck/internal/service"
)

// ErrEmptyTitle is returned for a blank task title. No request is made.
var ErrEmptyTitle = errors.New("please enter a task title")

// Request performs one backend call off the event loop.
type Request func(ctx context.Context) Result

// Result is the outcome of a Request, applied on the event loop.
type Result interface {
	apply(b *Board) error
}

// Counts are the aggregate numbers shown above the list.
type Counts struct {
	Pending   int
	Completed int
	Total     int
}

// Count derives counts from tasks. It is recomputed on every call.
func Count(tasks []service.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}

// Board is the single state container for the task board.
type Board struct {
	svc service.Service
	log zerolog.Logger

	tasks          []service.Task
	loading        bool
	initialLoading bool
	err            string
}

// New creates a board that has not loaded yet.
func New(svc service.Service, log zerolog.Logger) *Board {
	return &Board{
		svc:            svc,
		log:            log.With().Str("component", "board").Logger(),
		initialLoading: true,
	}
}

// Tasks returns a copy of the tasks in display order.
func (b *Board) Tasks() []service.Task {
	out := make([]service.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Len returns the number of tasks held.
func (b *Board) Len() int { return len(b.tasks) }

// At returns the task at position i.
func (b *Board) At(i int) service.Task { return b.tasks[i] }

// Counts returns the aggregate counts for the current tasks.
func (b *Board) Counts() Counts { return Count(b.tasks) }

// Loading reports whether a mutation is in flight.
func (b *Board) Loading() bool { return b.loading }

// InitialLoading reports whether the first list fetch is still pending.
func (b *Board) InitialLoading() bool { return b.initialLoading }

// Err returns the latest error message, or "" when there is none.
func (b *Board) Err() string { return b.err }

// Find looks a task up by id.
func (b *Board) Find(id int64) (service.Task, bool) {
	if i := b.index(id); i >= 0 {
		return b.tasks[i], true
	}
	return service.Task{}, false
}

func (b *Board) index(id int64) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// StartLoad returns the initial list fetch.
func (b *Board) StartLoad() Request {
	svc := b.svc
	return func(ctx context.Context) Result {
		tasks, err := svc.ListTasks(ctx)
		return LoadedResult{Tasks: tasks, Err: err}
	}
}

// StartAdd validates title and returns the create request.
// A blank title returns ErrEmptyTitle and leaves the board untouched.
func (b *Board) StartAdd(title string) (Request, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	b.loading = true
	svc := b.svc
	return func(ctx context.Context) Result {
		task, err := svc.CreateTask(ctx, title)
		return CreatedResult{Title: title, Task: task, Err: err}
	}, nil
}

// StartToggle returns the request flipping the completion of task id.
// It returns nil, and changes nothing, when id is not on the board.
func (b *Board) StartToggle(id int64) Request {
	current, ok := b.Find(id)
	if !ok {
		b.log.Debug().Int64("id", id).Msg("toggle ignored: unknown task")
		return nil
	}
	b.loading = true
	svc := b.svc
	completed := !current.Completed
	return func(ctx context.Context) Result {
		task, err := svc.SetTaskCompletion(ctx, id, completed)
		return ToggledResult{ID: id, Task: task, Err: err}
	}
}

// StartDelete returns the delete request for task id. Confirmation is the
// caller's job. It returns nil when id is not on the board.
func (b *Board) StartDelete(id int64) Request {
	if _, ok := b.Find(id); !ok {
		return nil
	}
	b.loading = true
	svc := b.svc
	return func(ctx context.Context) Result {
		return DeletedResult{ID: id, Err: svc.DeleteTask(ctx, id)}
	}
}

// Apply folds a finished request into the board. Results are applied in
// arrival order, so the last response wins. The returned error is non-nil
// only for a failed add, which the input component needs to see.
func (b *Board) Apply(r Result) error {
	return r.apply(b)
}

// Run performs req synchronously and applies its result. It is the
// blocking counterpart of handing req to a tea.Cmd, for callers without an
// event loop such as tests and scripted flows. A nil req is a no-op.
func (b *Board) Run(ctx context.Context, req Request) error {
	if req == nil {
		return nil
	}
	return b.Apply(req(ctx))
}

func (b *Board) fail(err error) {
	b.err = err.Error()
	b.log.Error().Str("message", b.err).AnErr("cause", errors.Unwrap(err)).Msg("task flow failed")
}
