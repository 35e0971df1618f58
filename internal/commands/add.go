package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "taskdeck add <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	// Join args to form title
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintf(stdio.ErrOut, "error: %v\n", ErrTitleRequired)
		return exitcode.UserError
	}

	task, err := svc.CreateTask(ctx, title)
	if err != nil {
		return backendFailure(stdio.ErrOut, err)
	}

	if !cfg.Quiet {
		output.FormatTask(stdio.Out, task)
	}
	return exitcode.Success
}
