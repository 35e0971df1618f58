package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&RmCmd{})
}

const deletePrompt = "Are you sure you want to delete this task? [y/N] "

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "taskdeck rm [--yes] <id>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(stdio.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return backendFailure(stdio.ErrOut, err)
	}
	task, ok := findTask(tasks, id)
	if !ok {
		fmt.Fprintf(stdio.ErrOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	if !c.yes {
		if err := confirm(stdio, task); err != nil {
			if errors.Is(err, errDeclined) {
				if !cfg.Quiet {
					fmt.Fprintln(stdio.Out, "cancelled")
				}
				return exitcode.Success
			}
			fmt.Fprintf(stdio.ErrOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		return backendFailure(stdio.ErrOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(stdio.Out, "ok")
	}
	return exitcode.Success
}

// confirm asks on stderr and reads the answer from stdin.
// Anything but y or yes declines, including EOF.
func confirm(stdio IO, task service.Task) error {
	if stdio.In == nil {
		return errDeclined
	}
	fmt.Fprintf(stdio.ErrOut, "%d  %s\n", task.ID, task.Title)
	fmt.Fprint(stdio.ErrOut, deletePrompt)

	line, err := bufio.NewReader(stdio.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return errDeclined
	}
}
