package board

import (
	"fmt"

	"taskdeck/internal/service"
)

// LoadedResult is the outcome of the initial list fetch.
type LoadedResult struct {
	Tasks []service.Task
	Err   error
}

func (r LoadedResult) apply(b *Board) error {
	b.initialLoading = false
	if r.Err != nil {
		b.fail(r.Err)
		return nil
	}
	b.tasks = append([]service.Task(nil), r.Tasks...)
	b.err = ""
	return nil
}

// CreatedResult is the outcome of an add flow.
type CreatedResult struct {
	Title string
	Task  service.Task
	Err   error
}

func (r CreatedResult) apply(b *Board) error {
	b.loading = false
	if r.Err != nil {
		b.fail(r.Err)
		return r.Err
	}
	if i := b.index(r.Task.ID); i >= 0 {
		// The server reused an id we already hold; keep ids unique.
		b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	}
	b.tasks = append([]service.Task{r.Task}, b.tasks...)
	b.err = ""
	return nil
}

// ToggledResult is the outcome of a toggle flow.
type ToggledResult struct {
	ID   int64
	Task service.Task
	Err  error
}

func (r ToggledResult) apply(b *Board) error {
	b.loading = false
	if r.Err == nil && r.Task.ID != r.ID {
		r.Err = service.NewOpError(service.OpUpdate, fmt.Errorf("response for task %d carries id %d", r.ID, r.Task.ID))
	}
	if r.Err != nil {
		b.fail(r.Err)
		return nil
	}
	// A task deleted meanwhile stays deleted.
	if i := b.index(r.ID); i >= 0 {
		b.tasks[i] = r.Task
	}
	b.err = ""
	return nil
}

// DeletedResult is the outcome of a delete flow.
type DeletedResult struct {
	ID  int64
	Err error
}

func (r DeletedResult) apply(b *Board) error {
	b.loading = false
	if r.Err != nil {
		b.fail(r.Err)
		return nil
	}
	if i := b.index(r.ID); i >= 0 {
		b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	}
	b.err = ""
	return nil
}
