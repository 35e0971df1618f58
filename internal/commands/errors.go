package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

var (
	// ErrTaskIDRequired is returned when no task id is given.
	ErrTaskIDRequired = errors.New("task id required")

	// ErrTitleRequired is returned for a missing or blank title.
	ErrTitleRequired = errors.New("title required")

	errDeclined = errors.New("cancelled")
)

// parseTaskID parses the single positional task id.
func parseTaskID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments: expected a single task id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// backendFailure prints a backend error and returns its exit code.
// Client failures already carry their fixed user-facing message.
func backendFailure(errOut io.Writer, err error) int {
	var opErr *service.OpError
	if errors.As(err, &opErr) {
		fmt.Fprintf(errOut, "error: %s\n", opErr.Error())
	} else {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	}
	return exitcode.BackendError
}

// findTask looks a task up by id in the current server list.
func findTask(tasks []service.Task, id int64) (service.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}
