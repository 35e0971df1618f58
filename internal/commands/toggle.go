package commands

import (
	"context"
	"flag"
	"fmt"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task's completion" }
func (c *ToggleCmd) Usage() string      { return "taskdeck toggle <id>" }
func (c *ToggleCmd) NeedsBackend() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(stdio.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// The API has no single-task read, so resolve the id from the list
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return backendFailure(stdio.ErrOut, err)
	}
	current, ok := findTask(tasks, id)
	if !ok {
		fmt.Fprintf(stdio.ErrOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	task, err := svc.SetTaskCompletion(ctx, id, !current.Completed)
	if err != nil {
		return backendFailure(stdio.ErrOut, err)
	}

	if !cfg.Quiet {
		output.FormatTask(stdio.Out, task)
	}
	return exitcode.Success
}
