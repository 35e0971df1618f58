package rest

import (
	"fmt"

	"taskdeck/internal/service"
)

type createRequest struct {
	Title string `json:"title"`
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

// wireTask is the response shape before validation. Pointers tell a missing
// field apart from a zero value.
type wireTask struct {
	ID        *int64  `json:"id" validate:"required,gt=0"`
	Title     *string `json:"title" validate:"required,min=1"`
	Completed *bool   `json:"completed" validate:"required"`
	CreatedAt *string `json:"createdAt"`
}

func (c *Client) decodeTask(w wireTask) (service.Task, error) {
	if err := c.validate.Struct(w); err != nil {
		return service.Task{}, fmt.Errorf("malformed task: %w", err)
	}
	t := service.Task{
		ID:        *w.ID,
		Title:     *w.Title,
		Completed: *w.Completed,
	}
	if w.CreatedAt != nil {
		t.CreatedAt = *w.CreatedAt
	}
	return t, nil
}

func (c *Client) decodeTasks(ws []wireTask) ([]service.Task, error) {
	tasks := make([]service.Task, 0, len(ws))
	seen := make(map[int64]struct{}, len(ws))
	for i, w := range ws {
		t, err := c.decodeTask(w)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id: %d", t.ID)
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
