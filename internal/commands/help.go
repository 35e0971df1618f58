package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd returns a help command listing the commands of r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskdeck help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	writeHelp(stdio.Out, c.registry)
	return exitcode.Success
}

func writeHelp(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "  taskdeck\tOpen the interactive task board")
	if r != nil {
		for _, cmd := range r.All() {
			fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
		}
	}
	tw.Flush()

	fmt.Fprint(w, commonFlagsText)
}

const commonFlagsText = `
Common flags:
  --config <dir>     Override config directory
  --base-url <url>   Override the task API endpoint
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr (the board logs to a file)

Environment:
  TASKDECK_BASE_URL, TASKDECK_TIMEOUT, TASKDECK_LOG_LEVEL, TASKDECK_LOG_FILE
`
