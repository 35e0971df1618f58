// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the task API.
	// help and version return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command and returns its exit code.
	// svc is nil if NeedsBackend() returns false.
	// The diagnostic logger travels in ctx (zerolog.Ctx).
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int
}

// IO bundles the standard streams a command may use.
type IO struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Interactive is implemented by commands that take over the terminal.
// The dispatcher keeps their diagnostics off the screen.
type Interactive interface {
	Interactive() bool
}
