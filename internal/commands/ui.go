package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd opens the interactive task board.
type UICmd struct {
	inline bool
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return []string{"board"} }
func (c *UICmd) Synopsis() string   { return "Open the interactive task board" }
func (c *UICmd) Usage() string      { return "taskdeck ui [--inline]" }
func (c *UICmd) NeedsBackend() bool { return true }
func (c *UICmd) Interactive() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.inline, "inline", false, "")
}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	if len(args) > 0 {
		fmt.Fprintf(stdio.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	log := zerolog.Ctx(ctx)
	log.Info().Str("base_url", cfg.BaseURL).Msg("starting task board")

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if stdio.In != nil {
		opts = append(opts, tea.WithInput(stdio.In))
	}
	if stdio.Out != nil {
		opts = append(opts, tea.WithOutput(stdio.Out))
	}
	if !c.inline {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(ui.New(ctx, svc, *log), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			log.Info().Msg("task board interrupted")
			return exitcode.Success
		}
		log.Error().Err(err).Msg("task board failed")
		fmt.Fprintf(stdio.ErrOut, "error: terminal error: %v\n", err)
		return exitcode.UserError
	}
	log.Info().Msg("task board closed")
	return exitcode.Success
}
