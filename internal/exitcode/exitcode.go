// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty title, unknown task id).
	UserError = 1

	// ConfigError indicates an invalid configuration (base URL, timeout, log level).
	ConfigError = 2

	// BackendError indicates the task API failed or was unreachable.
	BackendError = 3
)
