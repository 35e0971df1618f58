package commands

import (
	"context"
	"flag"
	"fmt"

	"taskdeck/internal/board"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	pending bool
}

// SetPendingOnly restricts output to pending tasks (for testing).
func (c *ListCmd) SetPendingOnly(pending bool) {
	c.pending = pending
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "Print tasks with counts" }
func (c *ListCmd) Usage() string      { return "taskdeck list [--pending]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.pending, "pending", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	if len(args) > 0 {
		fmt.Fprintf(stdio.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return backendFailure(stdio.ErrOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(stdio.Out, "no tasks yet")
		}
		return exitcode.Success
	}

	for _, task := range tasks {
		if c.pending && task.Completed {
			continue
		}
		output.FormatTask(stdio.Out, task)
	}

	// Counts always cover the whole list
	if !cfg.Quiet {
		fmt.Fprintln(stdio.Out)
		output.FormatCounts(stdio.Out, board.Count(tasks))
	}
	return exitcode.Success
}
